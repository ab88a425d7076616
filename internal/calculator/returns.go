package calculator

import (
	"math"
	"time"

	"portfoliodash/internal/domain"
)

// RebaseWindow re-anchors a snapshot series at the window's first point.
// the stored TWR is rebased, never recomputed from portfolio values -
// value deltas conflate market return with deposit/withdrawal timing, which
// is exactly what TWR exists to avoid. drawdown is recomputed from the
// rebased growth curve. start/end are inclusive; nil means unbounded.
func RebaseWindow(series []domain.DailySnapshot, start, end *time.Time) domain.RebasedSeries {
	out := domain.RebasedSeries{
		BaseGrowth: 1,
		PeakGrowth: 1,
	}

	window := SliceWindow(series, start, end)
	if len(window) == 0 {
		return out
	}

	twrStart := 1 + window[0].TimeWeightedReturn/100
	out.BaseGrowth = twrStart

	// the MWR series gets its own baseline. a stored MWR of exactly 0 is
	// ambiguous upstream ("no flows" vs "never computed") - we substitute
	// the rebased TWR for those points, which conflates the two cases. see
	// DESIGN.md.
	mwrStart := 1 + window[0].MoneyWeightedReturn/100
	if window[0].MoneyWeightedReturn == 0 {
		mwrStart = twrStart
	}

	peak := 1.0
	for _, s := range window {
		rebasedTwr := 0.0
		if math.Abs(twrStart) > minBaseline {
			rebasedTwr = ((1+s.TimeWeightedReturn/100)/twrStart - 1) * 100
		}

		growth := 1 + rebasedTwr/100
		peak = math.Max(peak, growth)
		drawdown := 0.0
		if peak > 0 {
			drawdown = (growth/peak - 1) * 100
		}

		mwr := rebasedTwr
		if s.MoneyWeightedReturn != 0 && math.Abs(mwrStart) > minBaseline {
			mwr = ((1+s.MoneyWeightedReturn/100)/mwrStart - 1) * 100
		}

		out.Points = append(out.Points, domain.RebasedPoint{
			Date:           s.Date,
			Return:         rebasedTwr,
			Drawdown:       drawdown,
			Mwr:            mwr,
			PortfolioValue: s.PortfolioValue,
		})
	}
	out.PeakGrowth = peak

	return out
}

// HistoricalPeakGrowth is the max growth factor the stored TWR curve ever
// reached. seeds the live point's drawdown so an intraday dip measures off
// the true all-time peak, not just today's open.
func HistoricalPeakGrowth(series []domain.DailySnapshot) float64 {
	peak := 1.0
	for _, s := range series {
		peak = math.Max(peak, 1+s.TimeWeightedReturn/100)
	}
	return peak
}

// SliceWindow keeps the snapshots inside the inclusive [start, end] range.
// nil bounds are unbounded.
func SliceWindow(series []domain.DailySnapshot, start, end *time.Time) []domain.DailySnapshot {
	out := []domain.DailySnapshot{}
	for _, s := range series {
		if start != nil && s.Date.Before(*start) {
			continue
		}
		if end != nil && s.Date.After(*end) {
			continue
		}
		out = append(out, s)
	}
	return out
}
