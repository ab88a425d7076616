package api

import (
	"fmt"
	"time"

	"portfoliodash/internal/service"

	"github.com/gin-gonic/gin"
)

type benchmarkRequest struct {
	chartRequest
	Symbols []string `json:"symbols"`
}

type benchmarkPoint struct {
	Date     string   `json:"date"`
	Return   *float64 `json:"return"`
	Drawdown *float64 `json:"drawdown"`
}

type benchmarkOverlay struct {
	Symbol string           `json:"symbol"`
	Points []benchmarkPoint `json:"points"`
}

type benchmarkResponse struct {
	Overlays []benchmarkOverlay `json:"overlays"`
}

func (m ApiHandler) benchmark(c *gin.Context) {
	var requestBody benchmarkRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}
	if len(requestBody.Symbols) == 0 {
		returnErrorJsonCode(fmt.Errorf("at least one symbol is required"), c, 400)
		return
	}

	in, err := chartInputFromRequest(requestBody.chartRequest)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	primary, _, err := m.ChartService.LoadWindowedSeries(c.Request.Context(), *in)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	overlays, err := m.BenchmarkService.GetOverlays(c.Request.Context(), service.GetOverlaysInput{
		Symbols:     requestBody.Symbols,
		Primary:     primary,
		IncludeLive: requestBody.IncludeLive,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := benchmarkResponse{Overlays: []benchmarkOverlay{}}
	for _, overlay := range overlays {
		points := []benchmarkPoint{}
		for _, p := range overlay.Points {
			points = append(points, benchmarkPoint{
				Date:     p.Date.Format(time.DateOnly),
				Return:   p.Return,
				Drawdown: p.Drawdown,
			})
		}
		out.Overlays = append(out.Overlays, benchmarkOverlay{
			Symbol: overlay.Symbol,
			Points: points,
		})
	}

	c.JSON(200, out)
}
