package domain

import (
	"time"
)

// DailySnapshot is one closed day of account or strategy state, produced
// by the upstream sync. immutable once stored. a series is ordered by date
// with no duplicate dates.
type DailySnapshot struct {
	Date                time.Time
	PortfolioValue      float64
	NetDeposits         float64
	CumulativeReturn    float64 // percent since inception
	DailyReturn         float64 // percent vs prior close
	TimeWeightedReturn  float64 // percent, compounded daily, independent of cash flow timing
	MoneyWeightedReturn float64 // percent, may be 0 when upstream never computed it
	CurrentDrawdown     float64 // percent off the running peak, <= 0
}

// BenchmarkPoint is one day of an external comparison series. the series is
// independent - it does not have to share dates with the account series.
type BenchmarkPoint struct {
	Date      time.Time
	ReturnPct float64 // cumulative percent since benchmark inception
	MwrPct    float64
}

// RebasedPoint is a point of a series re-anchored so the window's first
// point is 0%.
type RebasedPoint struct {
	Date     time.Time
	Return   float64 // percent since window start
	Drawdown float64 // percent off running peak within the window, <= 0
	Mwr      float64

	// carried through from the source snapshot for the value-mode chart
	PortfolioValue float64
}

// RebasedSeries is derived per view and never persisted.
type RebasedSeries struct {
	// growth factor of the source series at the window start. 1 when the
	// series is its own baseline.
	BaseGrowth float64
	// running max growth factor across the series, never < 1
	PeakGrowth float64
	Points     []RebasedPoint
}

func (s RebasedSeries) Last() *RebasedPoint {
	if len(s.Points) == 0 {
		return nil
	}
	return &s.Points[len(s.Points)-1]
}

// OverlayPoint is a benchmark value aligned onto the primary series' dates.
// Return is nil on dates the benchmark has no value - downstream line
// drawing decides whether to break or connect, we never fabricate one.
type OverlayPoint struct {
	Date     time.Time
	Return   *float64
	Drawdown *float64
}

type OverlaySeries struct {
	Symbol     string
	BaseGrowth float64
	PeakGrowth float64
	Points     []OverlayPoint
}
