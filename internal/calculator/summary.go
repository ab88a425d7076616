package calculator

import (
	"math"

	"portfoliodash/internal/domain"

	"github.com/montanaflynn/stats"
)

// WinRatePolicy picks the win rate denominator. both variants exist in the
// wild - wins over every day, or wins over decided (non-flat) days only -
// so the choice is explicit rather than baked in.
type WinRatePolicy string

const (
	WinRatePolicy_AllDays     WinRatePolicy = "allDays"
	WinRatePolicy_DecidedDays WinRatePolicy = "decidedDays"
)

const tradingDaysPerYear = 252

// Summarize reduces a rebased series to scalar metrics. a window with
// fewer than two points yields every field nil - unavailable, not zero and
// not an error.
func Summarize(series domain.RebasedSeries, policy WinRatePolicy) domain.SummaryMetrics {
	out := domain.SummaryMetrics{}
	points := series.Points
	if len(points) < 2 {
		return out
	}

	// point-to-point daily returns, in percent. the first point is the
	// window baseline and has no prior day.
	returns := make([]float64, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		prevGrowth := 1 + points[i-1].Return/100
		growth := 1 + points[i].Return/100
		r := 0.0
		if math.Abs(prevGrowth) > minBaseline {
			r = (growth/prevGrowth - 1) * 100
		}
		returns = append(returns, r)
	}
	n := float64(len(returns))

	mean, err := stats.Mean(returns)
	if err != nil {
		return out
	}
	// population stdev - the window is the whole population, not a sample
	stdev, err := stats.StandardDeviationPopulation(returns)
	if err != nil {
		return out
	}

	cumulative := series.Last().Return
	out.CumulativeReturn = &cumulative

	annualized := (math.Pow(1+cumulative/100, tradingDaysPerYear/n) - 1) * 100
	out.AnnualizedReturn = &annualized

	volatility := stdev * math.Sqrt(tradingDaysPerYear)
	out.Volatility = &volatility

	if stdev > 0 {
		sharpe := mean / stdev * math.Sqrt(tradingDaysPerYear)
		out.Sharpe = &sharpe
	}

	// downside deviation over total n, not just the losing days
	downsideSquares := 0.0
	for _, r := range returns {
		d := math.Min(r, 0)
		downsideSquares += d * d
	}
	downsideDev := math.Sqrt(downsideSquares / n)
	if downsideDev > 0 {
		sortino := mean / downsideDev * math.Sqrt(tradingDaysPerYear)
		out.Sortino = &sortino
	}

	out.WinRate = winRate(returns, policy)
	out.BestDay, out.WorstDay = bestWorstDay(points, returns)

	troughs, lengths := drawdownRuns(points)
	if len(troughs) > 0 {
		maxDd, _ := stats.Min(troughs)
		medianDd, _ := stats.Median(troughs)
		out.MaxDrawdown = &maxDd
		out.MedianDrawdown = &medianDd

		longest := 0
		for _, l := range lengths {
			if l > longest {
				longest = l
			}
		}
		lengthsF := make([]float64, len(lengths))
		for i, l := range lengths {
			lengthsF[i] = float64(l)
		}
		medianLen, _ := stats.Median(lengthsF)
		medianDays := int(math.Round(medianLen))
		out.LongestDrawdownDays = &longest
		out.MedianDrawdownDays = &medianDays
	}

	if out.MaxDrawdown != nil && *out.MaxDrawdown < 0 {
		calmar := annualized / math.Abs(*out.MaxDrawdown)
		out.Calmar = &calmar
	}

	return out
}

func winRate(returns []float64, policy WinRatePolicy) *float64 {
	wins := 0
	losses := 0
	for _, r := range returns {
		if r > 0 {
			wins++
		} else if r < 0 {
			losses++
		}
	}

	switch policy {
	case WinRatePolicy_DecidedDays:
		if wins+losses == 0 {
			return nil
		}
		rate := float64(wins) / float64(wins+losses)
		return &rate
	default:
		rate := float64(wins) / float64(len(returns))
		return &rate
	}
}

func bestWorstDay(points []domain.RebasedPoint, returns []float64) (*domain.DayReturn, *domain.DayReturn) {
	best := domain.DayReturn{Date: points[1].Date, Return: returns[0]}
	worst := best
	for i, r := range returns {
		if r > best.Return {
			best = domain.DayReturn{Date: points[i+1].Date, Return: r}
		}
		if r < worst.Return {
			worst = domain.DayReturn{Date: points[i+1].Date, Return: r}
		}
	}
	return &best, &worst
}

// drawdownRuns walks the series' drawdown values and collects each
// contiguous below-peak run's trough magnitude (percent, < 0) and length in
// trading days.
func drawdownRuns(points []domain.RebasedPoint) (troughs []float64, lengths []int) {
	inRun := false
	trough := 0.0
	length := 0

	for _, p := range points {
		if p.Drawdown < 0 {
			if !inRun {
				inRun = true
				trough = p.Drawdown
				length = 0
			}
			length++
			if p.Drawdown < trough {
				trough = p.Drawdown
			}
		} else if inRun {
			troughs = append(troughs, trough)
			lengths = append(lengths, length)
			inRun = false
		}
	}
	if inRun {
		troughs = append(troughs, trough)
		lengths = append(lengths, length)
	}

	return troughs, lengths
}
