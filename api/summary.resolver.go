package api

import (
	"fmt"

	"portfoliodash/internal/calculator"
	"portfoliodash/internal/domain"

	"github.com/gin-gonic/gin"
)

type summaryRequest struct {
	chartRequest
	// subset of metric keys to render; empty means all
	Metrics       []string `json:"metrics"`
	WinRatePolicy *string  `json:"winRatePolicy"`
}

type summaryResponse map[string]string

func (m ApiHandler) summaryMetrics(c *gin.Context) {
	var requestBody summaryRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	in, err := chartInputFromRequest(requestBody.chartRequest)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	policy := calculator.WinRatePolicy_AllDays
	if requestBody.WinRatePolicy != nil {
		switch calculator.WinRatePolicy(*requestBody.WinRatePolicy) {
		case calculator.WinRatePolicy_AllDays, calculator.WinRatePolicy_DecidedDays:
			policy = calculator.WinRatePolicy(*requestBody.WinRatePolicy)
		default:
			returnErrorJsonCode(fmt.Errorf("unknown win rate policy %q", *requestBody.WinRatePolicy), c, 400)
			return
		}
	}

	metrics, err := m.ChartService.GetSummary(c.Request.Context(), *in, policy)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	keys := domain.AllMetricKeys()
	if len(requestBody.Metrics) > 0 {
		keys = make([]domain.MetricKey, 0, len(requestBody.Metrics))
		for _, k := range requestBody.Metrics {
			keys = append(keys, domain.MetricKey(k))
		}
	}

	out := summaryResponse{}
	for _, k := range keys {
		formatted, err := k.Format(*metrics)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		out[string(k)] = formatted
	}

	c.JSON(200, out)
}
