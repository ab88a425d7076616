package calculator

import (
	"sort"

	"portfoliodash/internal/domain"

	"github.com/shopspring/decimal"
)

// GroupTrades nets per-strategy trade candidates that share (ticker, side)
// into displayable rows. contributions from the same strategy inside a
// group merge into one breakdown entry; other strategies stay distinct.
// read-only projection for the preview modal - nothing here executes.
func GroupTrades(candidates []domain.TradeCandidate, portfolioValue decimal.Decimal) []domain.GroupedTradeRow {
	type key struct {
		ticker string
		side   domain.TradeSide
	}

	rowsByKey := map[key]*domain.GroupedTradeRow{}
	order := []key{}

	for _, c := range candidates {
		k := key{ticker: c.Ticker, side: c.Side}
		row, ok := rowsByKey[k]
		if !ok {
			row = &domain.GroupedTradeRow{
				Ticker:         c.Ticker,
				Side:           c.Side,
				TotalNotional:  decimal.Zero,
				TotalQuantity:  decimal.Zero,
				TotalPrevValue: decimal.Zero,
			}
			rowsByKey[k] = row
			order = append(order, k)
		}

		row.TotalNotional = row.TotalNotional.Add(c.Notional)
		row.TotalQuantity = row.TotalQuantity.Add(c.Quantity)
		row.TotalPrevValue = row.TotalPrevValue.Add(c.PrevValue)

		merged := false
		for i := range row.Contributions {
			if row.Contributions[i].StrategyID == c.StrategyID {
				row.Contributions[i].Notional = row.Contributions[i].Notional.Add(c.Notional)
				row.Contributions[i].Quantity = row.Contributions[i].Quantity.Add(c.Quantity)
				row.Contributions[i].PrevValue = row.Contributions[i].PrevValue.Add(c.PrevValue)
				merged = true
				break
			}
		}
		if !merged {
			row.Contributions = append(row.Contributions, c)
		}
	}

	out := make([]domain.GroupedTradeRow, 0, len(order))
	for _, k := range order {
		row := rowsByKey[k]
		if !portfolioValue.IsZero() {
			hundred := decimal.NewFromInt(100)
			row.PrevWeight = row.TotalPrevValue.Div(portfolioValue).Mul(hundred).InexactFloat64()
			row.NextWeight = row.TotalPrevValue.Add(row.TotalNotional).Div(portfolioValue).Mul(hundred).InexactFloat64()
		}
		out = append(out, *row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalNotional.Abs().GreaterThan(out[j].TotalNotional.Abs())
	})

	return out
}
