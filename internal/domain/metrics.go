package domain

import (
	"fmt"
	"time"
)

type DayReturn struct {
	Date   time.Time
	Return float64
}

// SummaryMetrics is the scalar reduction of a return series over one
// window. nil means unavailable (series too short, zero denominator) -
// never NaN, never an error.
type SummaryMetrics struct {
	CumulativeReturn    *float64
	AnnualizedReturn    *float64
	Volatility          *float64 // annualized stdev of daily returns, percent
	Sharpe              *float64
	Sortino             *float64
	Calmar              *float64
	WinRate             *float64 // fraction in [0, 1]
	BestDay             *DayReturn
	WorstDay            *DayReturn
	MaxDrawdown         *float64 // percent, <= 0
	MedianDrawdown      *float64 // percent, <= 0
	LongestDrawdownDays *int     // trading days
	MedianDrawdownDays  *int
}

// MetricKey is the closed set of metric identifiers the presentation layer
// (and the snapshot export) may ask for. adding a metric means adding a key
// here and a case in Format - an unknown key can't silently no-op.
type MetricKey string

const (
	MetricKey_CumulativeReturn    MetricKey = "cumulativeReturn"
	MetricKey_AnnualizedReturn    MetricKey = "annualizedReturn"
	MetricKey_Volatility          MetricKey = "volatility"
	MetricKey_Sharpe              MetricKey = "sharpe"
	MetricKey_Sortino             MetricKey = "sortino"
	MetricKey_Calmar              MetricKey = "calmar"
	MetricKey_WinRate             MetricKey = "winRate"
	MetricKey_BestDay             MetricKey = "bestDay"
	MetricKey_WorstDay            MetricKey = "worstDay"
	MetricKey_MaxDrawdown         MetricKey = "maxDrawdown"
	MetricKey_MedianDrawdown      MetricKey = "medianDrawdown"
	MetricKey_LongestDrawdownDays MetricKey = "longestDrawdownDays"
	MetricKey_MedianDrawdownDays  MetricKey = "medianDrawdownDays"
)

func AllMetricKeys() []MetricKey {
	return []MetricKey{
		MetricKey_CumulativeReturn,
		MetricKey_AnnualizedReturn,
		MetricKey_Volatility,
		MetricKey_Sharpe,
		MetricKey_Sortino,
		MetricKey_Calmar,
		MetricKey_WinRate,
		MetricKey_BestDay,
		MetricKey_WorstDay,
		MetricKey_MaxDrawdown,
		MetricKey_MedianDrawdown,
		MetricKey_LongestDrawdownDays,
		MetricKey_MedianDrawdownDays,
	}
}

const notAvailable = "--"

// Format renders one metric for display. keys map to formatters
// exhaustively, so a new key without a formatter fails loudly instead of
// falling through to a blank cell.
func (k MetricKey) Format(m SummaryMetrics) (string, error) {
	switch k {
	case MetricKey_CumulativeReturn:
		return formatPct(m.CumulativeReturn), nil
	case MetricKey_AnnualizedReturn:
		return formatPct(m.AnnualizedReturn), nil
	case MetricKey_Volatility:
		return formatPct(m.Volatility), nil
	case MetricKey_Sharpe:
		return formatRatio(m.Sharpe), nil
	case MetricKey_Sortino:
		return formatRatio(m.Sortino), nil
	case MetricKey_Calmar:
		return formatRatio(m.Calmar), nil
	case MetricKey_WinRate:
		if m.WinRate == nil {
			return notAvailable, nil
		}
		return fmt.Sprintf("%.1f%%", *m.WinRate*100), nil
	case MetricKey_BestDay:
		return formatDayReturn(m.BestDay), nil
	case MetricKey_WorstDay:
		return formatDayReturn(m.WorstDay), nil
	case MetricKey_MaxDrawdown:
		return formatPct(m.MaxDrawdown), nil
	case MetricKey_MedianDrawdown:
		return formatPct(m.MedianDrawdown), nil
	case MetricKey_LongestDrawdownDays:
		return formatDays(m.LongestDrawdownDays), nil
	case MetricKey_MedianDrawdownDays:
		return formatDays(m.MedianDrawdownDays), nil
	}
	return "", fmt.Errorf("no formatter for metric key %q", k)
}

func formatPct(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.2f%%", *v)
}

func formatRatio(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.2f", *v)
}

func formatDays(v *int) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%dd", *v)
}

func formatDayReturn(d *DayReturn) string {
	if d == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.2f%% (%s)", d.Return, d.Date.Format(time.DateOnly))
}
