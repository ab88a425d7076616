package api

import (
	"github.com/gin-gonic/gin"
)

type tradeContribution struct {
	StrategyName string `json:"strategyName"`
	Notional     string `json:"notional"`
	Quantity     string `json:"quantity"`
}

type tradeRow struct {
	Ticker        string              `json:"ticker"`
	Side          string              `json:"side"`
	Notional      string              `json:"notional"`
	Quantity      string              `json:"quantity"`
	PrevWeight    float64             `json:"prevWeight"`
	NextWeight    float64             `json:"nextWeight"`
	Contributions []tradeContribution `json:"contributions"`
}

type tradePreviewResponse struct {
	Trades []tradeRow `json:"trades"`
}

func (m ApiHandler) tradePreview(c *gin.Context) {
	rows, err := m.TradePreviewService.GetPreview(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := tradePreviewResponse{Trades: []tradeRow{}}
	for _, row := range rows {
		contributions := []tradeContribution{}
		for _, contribution := range row.Contributions {
			contributions = append(contributions, tradeContribution{
				StrategyName: contribution.StrategyName,
				Notional:     contribution.Notional.StringFixed(2),
				Quantity:     contribution.Quantity.String(),
			})
		}
		out.Trades = append(out.Trades, tradeRow{
			Ticker:        row.Ticker,
			Side:          string(row.Side),
			Notional:      row.TotalNotional.StringFixed(2),
			Quantity:      row.TotalQuantity.String(),
			PrevWeight:    row.PrevWeight,
			NextWeight:    row.NextWeight,
			Contributions: contributions,
		})
	}

	c.JSON(200, out)
}
