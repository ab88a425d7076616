package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TradeSide string

const (
	TradeSide_Buy  TradeSide = "BUY"
	TradeSide_Sell TradeSide = "SELL"
)

// TradeCandidate is a proposed trade from one sub-strategy's rebalance
// preview. ephemeral - regenerated every refresh cycle, never executed here.
type TradeCandidate struct {
	Ticker       string
	Side         TradeSide
	StrategyID   uuid.UUID
	StrategyName string
	Notional     decimal.Decimal
	Quantity     decimal.Decimal
	PrevWeight   float64
	NextWeight   float64
	PrevValue    decimal.Decimal
}

// GroupedTradeRow nets candidates that share (ticker, side) into one
// displayable order, keeping the per-strategy contributions for drill-down.
// sum of contribution notionals always equals TotalNotional.
type GroupedTradeRow struct {
	Ticker         string
	Side           TradeSide
	TotalNotional  decimal.Decimal
	TotalQuantity  decimal.Decimal
	TotalPrevValue decimal.Decimal

	// account-level weight before/after, percent of portfolio value
	PrevWeight float64
	NextWeight float64

	Contributions []TradeCandidate
}
