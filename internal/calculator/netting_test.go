package calculator

import (
	"testing"

	"portfoliodash/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_GroupTrades(t *testing.T) {
	strategyA := uuid.New()
	strategyB := uuid.New()

	t.Run("nets candidates sharing ticker and side", func(t *testing.T) {
		out := GroupTrades([]domain.TradeCandidate{
			{
				Ticker:     "AAPL",
				Side:       domain.TradeSide_Buy,
				StrategyID: strategyA,
				Notional:   decimal.NewFromInt(100),
				Quantity:   decimal.NewFromFloat(0.5),
			},
			{
				Ticker:     "AAPL",
				Side:       domain.TradeSide_Buy,
				StrategyID: strategyB,
				Notional:   decimal.NewFromInt(50),
				Quantity:   decimal.NewFromFloat(0.25),
			},
		}, decimal.NewFromInt(10000))

		require.Len(t, out, 1)
		require.Equal(t, "AAPL", out[0].Ticker)
		require.True(t, out[0].TotalNotional.Equal(decimal.NewFromInt(150)))
		require.True(t, out[0].TotalQuantity.Equal(decimal.NewFromFloat(0.75)))
		require.Len(t, out[0].Contributions, 2)
	})

	t.Run("same strategy contributions merge, others stay distinct", func(t *testing.T) {
		out := GroupTrades([]domain.TradeCandidate{
			{Ticker: "MSFT", Side: domain.TradeSide_Buy, StrategyID: strategyA, Notional: decimal.NewFromInt(30)},
			{Ticker: "MSFT", Side: domain.TradeSide_Buy, StrategyID: strategyA, Notional: decimal.NewFromInt(20)},
			{Ticker: "MSFT", Side: domain.TradeSide_Buy, StrategyID: strategyB, Notional: decimal.NewFromInt(10)},
		}, decimal.NewFromInt(1000))

		require.Len(t, out, 1)
		require.Len(t, out[0].Contributions, 2)
		require.True(t, out[0].Contributions[0].Notional.Equal(decimal.NewFromInt(50)))
		require.True(t, out[0].Contributions[1].Notional.Equal(decimal.NewFromInt(10)))
	})

	t.Run("contribution notionals always sum to the row total", func(t *testing.T) {
		candidates := []domain.TradeCandidate{
			{Ticker: "VTI", Side: domain.TradeSide_Buy, StrategyID: strategyA, Notional: decimal.NewFromFloat(33.333333)},
			{Ticker: "VTI", Side: domain.TradeSide_Buy, StrategyID: strategyB, Notional: decimal.NewFromFloat(66.666667)},
			{Ticker: "VTI", Side: domain.TradeSide_Sell, StrategyID: strategyA, Notional: decimal.NewFromFloat(-10.5)},
		}

		out := GroupTrades(candidates, decimal.NewFromInt(5000))

		for _, row := range out {
			sum := decimal.Zero
			for _, c := range row.Contributions {
				sum = sum.Add(c.Notional)
			}
			require.InDelta(t, row.TotalNotional.InexactFloat64(), sum.InexactFloat64(), 1e-6)
		}
	})

	t.Run("buys and sells of the same ticker stay separate rows", func(t *testing.T) {
		out := GroupTrades([]domain.TradeCandidate{
			{Ticker: "AAPL", Side: domain.TradeSide_Buy, StrategyID: strategyA, Notional: decimal.NewFromInt(100)},
			{Ticker: "AAPL", Side: domain.TradeSide_Sell, StrategyID: strategyB, Notional: decimal.NewFromInt(-40)},
		}, decimal.NewFromInt(1000))

		require.Len(t, out, 2)
	})

	t.Run("rows sorted by absolute notional descending", func(t *testing.T) {
		out := GroupTrades([]domain.TradeCandidate{
			{Ticker: "SMALL", Side: domain.TradeSide_Buy, StrategyID: strategyA, Notional: decimal.NewFromInt(10)},
			{Ticker: "BIG", Side: domain.TradeSide_Sell, StrategyID: strategyA, Notional: decimal.NewFromInt(-500)},
			{Ticker: "MID", Side: domain.TradeSide_Buy, StrategyID: strategyA, Notional: decimal.NewFromInt(200)},
		}, decimal.NewFromInt(10000))

		require.Equal(t, "BIG", out[0].Ticker)
		require.Equal(t, "MID", out[1].Ticker)
		require.Equal(t, "SMALL", out[2].Ticker)
	})

	t.Run("account level weights", func(t *testing.T) {
		out := GroupTrades([]domain.TradeCandidate{
			{
				Ticker:     "AAPL",
				Side:       domain.TradeSide_Buy,
				StrategyID: strategyA,
				Notional:   decimal.NewFromInt(500),
				PrevValue:  decimal.NewFromInt(1500),
			},
		}, decimal.NewFromInt(10000))

		require.InDelta(t, 15.0, out[0].PrevWeight, 0.0001)
		require.InDelta(t, 20.0, out[0].NextWeight, 0.0001)
	})

	t.Run("zero portfolio value guards weights to 0", func(t *testing.T) {
		out := GroupTrades([]domain.TradeCandidate{
			{Ticker: "AAPL", Side: domain.TradeSide_Buy, StrategyID: strategyA, Notional: decimal.NewFromInt(100), PrevValue: decimal.NewFromInt(50)},
		}, decimal.Zero)

		require.Equal(t, 0.0, out[0].PrevWeight)
		require.Equal(t, 0.0, out[0].NextWeight)
	})

	t.Run("empty input", func(t *testing.T) {
		out := GroupTrades(nil, decimal.NewFromInt(1000))
		require.Len(t, out, 0)
	})
}
