package service

import (
	"context"
	"fmt"
	"time"

	"portfoliodash/internal/calculator"
	"portfoliodash/internal/domain"
	"portfoliodash/internal/logger"
	"portfoliodash/internal/repository"
	"portfoliodash/internal/util"

	"github.com/google/uuid"
)

type GetChartInput struct {
	Mode   domain.ChartMode
	Period domain.ChartPeriod
	// only read when Period is custom
	CustomStart *time.Time
	CustomEnd   *time.Time
	// nil means the account-level series
	StrategyID *uuid.UUID
	// extend the series with a provisional point for today when the books
	// haven't closed yet
	IncludeLive bool
}

type GetChartResult struct {
	Series domain.RebasedSeries
	// true when the last point is a live estimate rather than a closed day
	LastPointLive bool
}

type ChartService interface {
	GetChart(ctx context.Context, in GetChartInput) (*GetChartResult, error)
	GetSummary(ctx context.Context, in GetChartInput, policy calculator.WinRatePolicy) (*domain.SummaryMetrics, error)
	// LoadWindowedSeries is exposed so the benchmark overlay resolver can
	// align overlays against the exact primary window the chart shows
	LoadWindowedSeries(ctx context.Context, in GetChartInput) ([]domain.DailySnapshot, bool, error)
}

func NewChartService(
	snapshotRepository repository.SnapshotRepository,
	alpacaRepository repository.AlpacaRepository,
	notificationService NotificationService,
) ChartService {
	return chartServiceHandler{
		SnapshotRepository:  snapshotRepository,
		AlpacaRepository:    alpacaRepository,
		NotificationService: notificationService,
	}
}

type chartServiceHandler struct {
	SnapshotRepository repository.SnapshotRepository
	AlpacaRepository   repository.AlpacaRepository
	// optional - nil means nobody is listening
	NotificationService NotificationService
}

func (h chartServiceHandler) GetChart(ctx context.Context, in GetChartInput) (*GetChartResult, error) {
	series, live, err := h.LoadWindowedSeries(ctx, in)
	if err != nil {
		return nil, err
	}

	rebased := calculator.RebaseWindow(series, nil, nil)

	return &GetChartResult{
		Series:        rebased,
		LastPointLive: live,
	}, nil
}

func (h chartServiceHandler) GetSummary(ctx context.Context, in GetChartInput, policy calculator.WinRatePolicy) (*domain.SummaryMetrics, error) {
	chart, err := h.GetChart(ctx, in)
	if err != nil {
		return nil, err
	}

	out := calculator.Summarize(chart.Series, policy)
	return &out, nil
}

// LoadWindowedSeries returns the trading-day series restricted to the
// requested window, with the live point spliced in when requested and
// available. the benchmark resolver aligns overlays against this exact
// output, so the window applies here, not downstream. the bool reports
// whether the last entry is provisional.
func (h chartServiceHandler) LoadWindowedSeries(ctx context.Context, in GetChartInput) ([]domain.DailySnapshot, bool, error) {
	series, live, err := h.loadSpliced(ctx, in)
	if err != nil {
		return nil, false, err
	}

	start, end := h.windowBounds(in, series)
	series = calculator.SliceWindow(series, start, end)

	// a custom end bound can cut the live point off
	if live && (len(series) == 0 || !util.SameDay(series[len(series)-1].Date, time.Now().UTC())) {
		live = false
	}

	return series, live, nil
}

func (h chartServiceHandler) loadSpliced(ctx context.Context, in GetChartInput) ([]domain.DailySnapshot, bool, error) {
	log := logger.FromContext(ctx)

	var (
		series []domain.DailySnapshot
		err    error
	)
	if in.StrategyID != nil {
		series, err = h.SnapshotRepository.ListStrategy(*in.StrategyID)
	} else {
		series, err = h.SnapshotRepository.List()
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load snapshot series: %w", err)
	}

	series = calculator.FilterTradingDays(series)
	if len(series) == 0 || !in.IncludeLive {
		return series, false, nil
	}

	// the live estimate only makes sense on the account level - we have no
	// live per-strategy aggregate, and summing sub-strategies would
	// fabricate deposits
	if in.StrategyID != nil {
		return series, false, nil
	}

	// the splice keeps the series on trading days: a closed market means
	// today is a weekend, a holiday, or after-hours on a day the books
	// already closed
	open, err := h.AlpacaRepository.IsMarketOpen()
	if err != nil {
		log.Warnf("skipping live point: %v", err)
		return series, false, nil
	}
	if !open {
		return series, false, nil
	}

	liveValue, err := h.AlpacaRepository.GetLiveEquity()
	if err != nil {
		// a dead broker connection degrades to showing closed days only
		log.Warnf("skipping live point: %v", err)
		if h.NotificationService != nil {
			h.NotificationService.Publish(NotificationLevel_Warn, "live account value unavailable")
		}
		return series, false, nil
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	last := series[len(series)-1]

	priorClose := last
	replaceLast := util.SameDay(last.Date, today)
	if replaceLast && len(series) > 1 {
		priorClose = series[len(series)-2]
	}

	livePoint := calculator.EstimateLivePoint(calculator.LivePointInput{
		PriorClose:           priorClose,
		LiveValue:            liveValue,
		StoredNetDeposits:    last.NetDeposits,
		HistoricalPeakGrowth: calculator.HistoricalPeakGrowth(series),
	}, today)

	if replaceLast {
		series[len(series)-1] = livePoint
	} else {
		series = append(series, livePoint)
	}

	return series, true, nil
}

func (h chartServiceHandler) windowBounds(in GetChartInput, series []domain.DailySnapshot) (*time.Time, *time.Time) {
	if in.Period == domain.ChartPeriod_Custom {
		return in.CustomStart, in.CustomEnd
	}
	if len(series) == 0 {
		return nil, nil
	}
	ref := series[len(series)-1].Date
	return in.Period.WindowStart(ref), nil
}
