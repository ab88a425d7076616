package calculator

import (
	"math"
	"time"

	"portfoliodash/internal/domain"
)

// baselines this close to zero are treated as missing so we never emit
// NaN/Inf from a divide
const minBaseline = 1e-9

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// FilterTradingDays drops weekend entries. no exchange calendar here -
// upstream only produces snapshots on days it has data, so holidays never
// show up in the first place.
func FilterTradingDays(series []domain.DailySnapshot) []domain.DailySnapshot {
	out := make([]domain.DailySnapshot, 0, len(series))
	for _, s := range series {
		if !isWeekend(s.Date) {
			out = append(out, s)
		}
	}
	return out
}

func FilterBenchmarkTradingDays(series []domain.BenchmarkPoint) []domain.BenchmarkPoint {
	out := make([]domain.BenchmarkPoint, 0, len(series))
	for _, p := range series {
		if !isWeekend(p.Date) {
			out = append(out, p)
		}
	}
	return out
}

// Rebase aligns a benchmark series onto the primary series' dates and
// re-anchors it so it reads 0% on the first date both series share. with no
// overlap the benchmark stays un-rebased (baseGrowth 1) and acts as its own
// baseline. dates the benchmark is missing are emitted with nil values, not
// interpolated and not zeroed.
func Rebase(secondary []domain.BenchmarkPoint, primary []domain.DailySnapshot, symbol string) domain.OverlaySeries {
	out := domain.OverlaySeries{
		Symbol:     symbol,
		BaseGrowth: 1,
		PeakGrowth: 1,
	}
	if len(primary) == 0 {
		return out
	}

	secondaryByDate := map[string]domain.BenchmarkPoint{}
	for _, p := range secondary {
		secondaryByDate[p.Date.Format(time.DateOnly)] = p
	}

	for _, s := range primary {
		if p, ok := secondaryByDate[s.Date.Format(time.DateOnly)]; ok {
			out.BaseGrowth = 1 + p.ReturnPct/100
			break
		}
	}

	peak := 1.0
	for _, s := range primary {
		point := domain.OverlayPoint{Date: s.Date}
		if p, ok := secondaryByDate[s.Date.Format(time.DateOnly)]; ok {
			rebased := 0.0
			if math.Abs(out.BaseGrowth) > minBaseline {
				rebased = ((1+p.ReturnPct/100)/out.BaseGrowth - 1) * 100
			}
			growth := 1 + rebased/100
			peak = math.Max(peak, growth)

			drawdown := 0.0
			if peak > 0 {
				drawdown = (growth/peak - 1) * 100
			}

			point.Return = &rebased
			point.Drawdown = &drawdown
		}
		out.Points = append(out.Points, point)
	}
	out.PeakGrowth = peak

	return out
}
