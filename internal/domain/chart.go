package domain

import (
	"fmt"
	"time"
)

// ChartMode selects which field of the series a chart plots. the engine
// only uses it for output shaping - rendering lives elsewhere.
type ChartMode string

const (
	ChartMode_Portfolio ChartMode = "portfolio"
	ChartMode_Twr       ChartMode = "twr"
	ChartMode_Mwr       ChartMode = "mwr"
	ChartMode_Drawdown  ChartMode = "drawdown"
)

func ParseChartMode(s string) (ChartMode, error) {
	switch ChartMode(s) {
	case ChartMode_Portfolio, ChartMode_Twr, ChartMode_Mwr, ChartMode_Drawdown:
		return ChartMode(s), nil
	}
	return "", fmt.Errorf("unknown chart mode %q", s)
}

type ChartPeriod string

const (
	ChartPeriod_1D     ChartPeriod = "1D"
	ChartPeriod_1W     ChartPeriod = "1W"
	ChartPeriod_1M     ChartPeriod = "1M"
	ChartPeriod_3M     ChartPeriod = "3M"
	ChartPeriod_Ytd    ChartPeriod = "YTD"
	ChartPeriod_1Y     ChartPeriod = "1Y"
	ChartPeriod_All    ChartPeriod = "ALL"
	ChartPeriod_Custom ChartPeriod = "custom"
)

func ParseChartPeriod(s string) (ChartPeriod, error) {
	switch ChartPeriod(s) {
	case ChartPeriod_1D, ChartPeriod_1W, ChartPeriod_1M, ChartPeriod_3M,
		ChartPeriod_Ytd, ChartPeriod_1Y, ChartPeriod_All, ChartPeriod_Custom:
		return ChartPeriod(s), nil
	}
	return "", fmt.Errorf("unknown chart period %q", s)
}

// WindowStart resolves the period to an inclusive start date relative to
// the reference date (usually the last snapshot's date). nil means
// unbounded. custom periods carry their own dates and return nil here.
func (p ChartPeriod) WindowStart(ref time.Time) *time.Time {
	var start time.Time
	switch p {
	case ChartPeriod_1D:
		start = ref.AddDate(0, 0, -1)
	case ChartPeriod_1W:
		start = ref.AddDate(0, 0, -7)
	case ChartPeriod_1M:
		start = ref.AddDate(0, -1, 0)
	case ChartPeriod_3M:
		start = ref.AddDate(0, -3, 0)
	case ChartPeriod_Ytd:
		start = time.Date(ref.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	case ChartPeriod_1Y:
		start = ref.AddDate(-1, 0, 0)
	default:
		return nil
	}
	return &start
}
