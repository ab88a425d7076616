package api

import (
	"fmt"
	"time"

	"portfoliodash/internal/domain"
	"portfoliodash/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type chartRequest struct {
	Mode        string  `json:"mode"`
	Period      string  `json:"period"`
	CustomStart *string `json:"customStart"`
	CustomEnd   *string `json:"customEnd"`
	StrategyID  *string `json:"strategyID"`
	IncludeLive bool    `json:"includeLive"`
}

type chartPoint struct {
	Date           string  `json:"date"`
	Value          float64 `json:"value"`
	PortfolioValue float64 `json:"portfolioValue"`
}

type chartResponse struct {
	Points        []chartPoint `json:"points"`
	LastPointLive bool         `json:"lastPointLive"`
}

func (m ApiHandler) portfolioChart(c *gin.Context) {
	var requestBody chartRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	in, err := chartInputFromRequest(requestBody)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := m.ChartService.GetChart(c.Request.Context(), *in)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := chartResponse{
		Points:        []chartPoint{},
		LastPointLive: result.LastPointLive,
	}
	for _, p := range result.Series.Points {
		value := p.Return
		switch in.Mode {
		case domain.ChartMode_Portfolio:
			value = p.PortfolioValue
		case domain.ChartMode_Mwr:
			value = p.Mwr
		case domain.ChartMode_Drawdown:
			value = p.Drawdown
		}
		out.Points = append(out.Points, chartPoint{
			Date:           p.Date.Format(time.DateOnly),
			Value:          value,
			PortfolioValue: p.PortfolioValue,
		})
	}

	c.JSON(200, out)
}

func chartInputFromRequest(r chartRequest) (*service.GetChartInput, error) {
	mode, err := domain.ParseChartMode(r.Mode)
	if err != nil {
		return nil, err
	}
	period, err := domain.ParseChartPeriod(r.Period)
	if err != nil {
		return nil, err
	}

	in := service.GetChartInput{
		Mode:        mode,
		Period:      period,
		IncludeLive: r.IncludeLive,
	}

	if period == domain.ChartPeriod_Custom {
		if r.CustomStart != nil {
			start, err := time.Parse(time.DateOnly, *r.CustomStart)
			if err != nil {
				return nil, fmt.Errorf("invalid customStart: %w", err)
			}
			in.CustomStart = &start
		}
		if r.CustomEnd != nil {
			end, err := time.Parse(time.DateOnly, *r.CustomEnd)
			if err != nil {
				return nil, fmt.Errorf("invalid customEnd: %w", err)
			}
			in.CustomEnd = &end
		}
	}

	if r.StrategyID != nil {
		id, err := uuid.Parse(*r.StrategyID)
		if err != nil {
			return nil, fmt.Errorf("invalid strategyID: %w", err)
		}
		in.StrategyID = &id
	}

	return &in, nil
}
