package calculator

import (
	"math"
	"time"

	"portfoliodash/internal/domain"
)

type LivePointInput struct {
	PriorClose domain.DailySnapshot
	// live aggregate account value from the broker, books not yet closed
	LiveValue float64
	// must come from the stored account summary. summing sub-strategy
	// values instead omits cash held outside strategies and accumulates
	// rounding error that shows up as phantom deposits.
	StoredNetDeposits    float64
	HistoricalPeakGrowth float64
}

// EstimateLivePoint synthesizes a provisional snapshot for a day the books
// have not closed on, by compounding the prior close's TWR with the
// estimated same-day return. the result is display-state only and must
// never be persisted as a closed snapshot. whether it replaces the series'
// last entry or gets appended is the caller's call, decided by date
// equality.
func EstimateLivePoint(in LivePointInput, date time.Time) domain.DailySnapshot {
	dailyReturn := 0.0
	if in.PriorClose.PortfolioValue != 0 {
		dailyReturn = (in.LiveValue - in.PriorClose.PortfolioValue) / in.PriorClose.PortfolioValue * 100
	}

	cumulativeReturn := 0.0
	if in.StoredNetDeposits != 0 {
		cumulativeReturn = (in.LiveValue - in.StoredNetDeposits) / in.StoredNetDeposits * 100
	}

	liveTwr := ((1+in.PriorClose.TimeWeightedReturn/100)*(1+dailyReturn/100) - 1) * 100

	peak := math.Max(in.HistoricalPeakGrowth, 1+liveTwr/100)
	liveDrawdown := 0.0
	if peak > 0 {
		liveDrawdown = math.Min(((1+liveTwr/100)/peak-1)*100, 0)
	}

	return domain.DailySnapshot{
		Date:               date,
		PortfolioValue:     in.LiveValue,
		NetDeposits:        in.StoredNetDeposits,
		CumulativeReturn:   cumulativeReturn,
		DailyReturn:        dailyReturn,
		TimeWeightedReturn: liveTwr,
		// no intraday cash flow data, carry the prior close's MWR
		MoneyWeightedReturn: in.PriorClose.MoneyWeightedReturn,
		CurrentDrawdown:     liveDrawdown,
	}
}
