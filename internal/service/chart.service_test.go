package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"portfoliodash/internal/calculator"
	"portfoliodash/internal/domain"
	"portfoliodash/internal/logger"
	mock_repository "portfoliodash/internal/repository/mocks"
	"portfoliodash/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testContext() context.Context {
	return logger.AddToContext(context.Background(), zap.NewNop().Sugar())
}

func Test_chartServiceHandler_GetChart(t *testing.T) {
	t.Run("rebases the full series from its first point", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		snapshotRepository := mock_repository.NewMockSnapshotRepository(ctrl)

		handler := chartServiceHandler{
			SnapshotRepository: snapshotRepository,
		}

		snapshotRepository.EXPECT().List().Return([]domain.DailySnapshot{
			{Date: util.NewDate(2024, 1, 2), PortfolioValue: 1000, TimeWeightedReturn: 0, MoneyWeightedReturn: 0},
			{Date: util.NewDate(2024, 1, 3), PortfolioValue: 1020, TimeWeightedReturn: 2, MoneyWeightedReturn: 1.5},
			{Date: util.NewDate(2024, 1, 4), PortfolioValue: 1050, TimeWeightedReturn: 5, MoneyWeightedReturn: 4},
		}, nil)

		result, err := handler.GetChart(testContext(), GetChartInput{
			Mode:   domain.ChartMode_Twr,
			Period: domain.ChartPeriod_All,
		})
		require.NoError(t, err)
		require.False(t, result.LastPointLive)

		require.Equal(t, "", cmp.Diff(
			domain.RebasedSeries{
				BaseGrowth: 1,
				PeakGrowth: 1.05,
				Points: []domain.RebasedPoint{
					{Date: util.NewDate(2024, 1, 2), Return: 0, Drawdown: 0, Mwr: 0, PortfolioValue: 1000},
					{Date: util.NewDate(2024, 1, 3), Return: 2, Drawdown: 0, Mwr: 1.5, PortfolioValue: 1020},
					{Date: util.NewDate(2024, 1, 4), Return: 5, Drawdown: 0, Mwr: 4, PortfolioValue: 1050},
				},
			},
			result.Series,
			floatApprox(),
		))
	})

	t.Run("period re-anchors the window at its first point", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		snapshotRepository := mock_repository.NewMockSnapshotRepository(ctrl)

		handler := chartServiceHandler{
			SnapshotRepository: snapshotRepository,
		}

		snapshotRepository.EXPECT().List().Return([]domain.DailySnapshot{
			{Date: util.NewDate(2024, 1, 2), TimeWeightedReturn: 0},
			{Date: util.NewDate(2024, 1, 4), TimeWeightedReturn: 10},
			{Date: util.NewDate(2024, 1, 5), TimeWeightedReturn: 21},
		}, nil)

		result, err := handler.GetChart(testContext(), GetChartInput{
			Mode:   domain.ChartMode_Twr,
			Period: domain.ChartPeriod_1D,
		})
		require.NoError(t, err)

		require.Len(t, result.Series.Points, 2)
		require.InDelta(t, 0, result.Series.Points[0].Return, 1e-9)
		// (1.21/1.10 - 1) * 100
		require.InDelta(t, 10, result.Series.Points[1].Return, 1e-9)
	})

	t.Run("custom period uses the provided bounds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		snapshotRepository := mock_repository.NewMockSnapshotRepository(ctrl)

		handler := chartServiceHandler{
			SnapshotRepository: snapshotRepository,
		}

		snapshotRepository.EXPECT().List().Return([]domain.DailySnapshot{
			{Date: util.NewDate(2024, 1, 2), TimeWeightedReturn: 0},
			{Date: util.NewDate(2024, 1, 3), TimeWeightedReturn: 1},
			{Date: util.NewDate(2024, 1, 4), TimeWeightedReturn: 2},
			{Date: util.NewDate(2024, 1, 5), TimeWeightedReturn: 3},
		}, nil)

		result, err := handler.GetChart(testContext(), GetChartInput{
			Mode:        domain.ChartMode_Twr,
			Period:      domain.ChartPeriod_Custom,
			CustomStart: util.TimePointer(util.NewDate(2024, 1, 3)),
			CustomEnd:   util.TimePointer(util.NewDate(2024, 1, 4)),
		})
		require.NoError(t, err)

		require.Len(t, result.Series.Points, 2)
		require.Equal(t, util.NewDate(2024, 1, 3), result.Series.Points[0].Date)
		require.Equal(t, util.NewDate(2024, 1, 4), result.Series.Points[1].Date)
	})
}

func Test_chartServiceHandler_LoadWindowedSeries(t *testing.T) {
	t.Run("drops weekend snapshots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		snapshotRepository := mock_repository.NewMockSnapshotRepository(ctrl)

		handler := chartServiceHandler{
			SnapshotRepository: snapshotRepository,
		}

		snapshotRepository.EXPECT().List().Return([]domain.DailySnapshot{
			{Date: util.NewDate(2024, 1, 5)}, // friday
			{Date: util.NewDate(2024, 1, 6)}, // saturday
			{Date: util.NewDate(2024, 1, 8)}, // monday
		}, nil)

		series, live, err := handler.LoadWindowedSeries(testContext(), GetChartInput{})
		require.NoError(t, err)
		require.False(t, live)
		require.Equal(t, "", cmp.Diff(
			[]domain.DailySnapshot{
				{Date: util.NewDate(2024, 1, 5)},
				{Date: util.NewDate(2024, 1, 8)},
			},
			series,
		))
	})

	t.Run("strategy series never gets a live point", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		snapshotRepository := mock_repository.NewMockSnapshotRepository(ctrl)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)

		handler := chartServiceHandler{
			SnapshotRepository: snapshotRepository,
			AlpacaRepository:   alpacaRepository,
		}

		strategyID := uuid.New()
		snapshotRepository.EXPECT().ListStrategy(strategyID).Return([]domain.DailySnapshot{
			{Date: util.NewDate(2024, 1, 5), TimeWeightedReturn: 3},
		}, nil)
		// no GetLiveEquity expectation - the broker must not be called

		series, live, err := handler.LoadWindowedSeries(testContext(), GetChartInput{
			StrategyID:  &strategyID,
			IncludeLive: true,
		})
		require.NoError(t, err)
		require.False(t, live)
		require.Len(t, series, 1)
	})

	t.Run("closed market skips the live point", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		snapshotRepository := mock_repository.NewMockSnapshotRepository(ctrl)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)

		handler := chartServiceHandler{
			SnapshotRepository: snapshotRepository,
			AlpacaRepository:   alpacaRepository,
		}

		snapshotRepository.EXPECT().List().Return([]domain.DailySnapshot{
			{Date: util.NewDate(2024, 1, 5), PortfolioValue: 1000},
		}, nil)
		alpacaRepository.EXPECT().IsMarketOpen().Return(false, nil)
		// no GetLiveEquity expectation - nothing to estimate off a closed book

		series, live, err := handler.LoadWindowedSeries(testContext(), GetChartInput{
			IncludeLive: true,
		})
		require.NoError(t, err)
		require.False(t, live)
		require.Len(t, series, 1)
		require.Equal(t, util.NewDate(2024, 1, 5), series[0].Date)
	})

	t.Run("windowed series matches the chart the overlays align against", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		snapshotRepository := mock_repository.NewMockSnapshotRepository(ctrl)

		handler := chartServiceHandler{
			SnapshotRepository: snapshotRepository,
		}

		history := []domain.DailySnapshot{
			{Date: util.NewDate(2024, 1, 2), TimeWeightedReturn: 0},
			{Date: util.NewDate(2024, 3, 1), TimeWeightedReturn: 10},
			{Date: util.NewDate(2024, 3, 4), TimeWeightedReturn: 12},
		}
		snapshotRepository.EXPECT().List().Return(history, nil).Times(2)

		in := GetChartInput{
			Mode:   domain.ChartMode_Twr,
			Period: domain.ChartPeriod_1W,
		}

		chart, err := handler.GetChart(testContext(), in)
		require.NoError(t, err)

		primary, _, err := handler.LoadWindowedSeries(testContext(), in)
		require.NoError(t, err)

		// the overlay primary is exactly the window the chart draws
		require.Len(t, chart.Series.Points, 2)
		require.Len(t, primary, 2)
		require.Equal(t, chart.Series.Points[0].Date, primary[0].Date)
		require.Equal(t, util.NewDate(2024, 3, 1), primary[0].Date)
		require.InDelta(t, 0, chart.Series.Points[0].Return, 1e-9)

		// a benchmark rebased against that primary reads 0% where the chart
		// does, even when it has history before the window
		overlay := calculator.Rebase([]domain.BenchmarkPoint{
			{Date: util.NewDate(2024, 1, 2), ReturnPct: 4},
			{Date: util.NewDate(2024, 3, 1), ReturnPct: 10},
			{Date: util.NewDate(2024, 3, 4), ReturnPct: 14},
		}, primary, "SPY")

		require.Len(t, overlay.Points, 2)
		require.NotNil(t, overlay.Points[0].Return)
		require.InDelta(t, 0, *overlay.Points[0].Return, 1e-9)
		require.Equal(t, util.NewDate(2024, 3, 1), overlay.Points[0].Date)
	})

	t.Run("broker failure degrades to closed days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		snapshotRepository := mock_repository.NewMockSnapshotRepository(ctrl)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)

		handler := chartServiceHandler{
			SnapshotRepository: snapshotRepository,
			AlpacaRepository:   alpacaRepository,
		}

		snapshotRepository.EXPECT().List().Return([]domain.DailySnapshot{
			{Date: util.NewDate(2024, 1, 5), PortfolioValue: 1000},
		}, nil)
		alpacaRepository.EXPECT().IsMarketOpen().Return(true, nil)
		alpacaRepository.EXPECT().GetLiveEquity().Return(0.0, fmt.Errorf("connection refused"))

		series, live, err := handler.LoadWindowedSeries(testContext(), GetChartInput{
			IncludeLive: true,
		})
		require.NoError(t, err)
		require.False(t, live)
		require.Len(t, series, 1)
	})

	t.Run("live point is appended after the last closed day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		snapshotRepository := mock_repository.NewMockSnapshotRepository(ctrl)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)

		handler := chartServiceHandler{
			SnapshotRepository: snapshotRepository,
			AlpacaRepository:   alpacaRepository,
		}

		priorClose := domain.DailySnapshot{
			Date:                util.NewDate(2024, 1, 5),
			PortfolioValue:      1100,
			NetDeposits:         1000,
			TimeWeightedReturn:  10,
			MoneyWeightedReturn: 9,
		}
		snapshotRepository.EXPECT().List().Return([]domain.DailySnapshot{priorClose}, nil)
		alpacaRepository.EXPECT().IsMarketOpen().Return(true, nil)
		alpacaRepository.EXPECT().GetLiveEquity().Return(1150.0, nil)

		series, live, err := handler.LoadWindowedSeries(testContext(), GetChartInput{
			IncludeLive: true,
		})
		require.NoError(t, err)
		require.True(t, live)
		require.Len(t, series, 2)

		today := time.Now().UTC().Truncate(24 * time.Hour)
		got := series[1]
		require.Equal(t, today, got.Date)
		require.InDelta(t, 1150, got.PortfolioValue, 1e-9)
		require.InDelta(t, 50.0/1100*100, got.DailyReturn, 1e-9)
		require.InDelta(t, 15, got.CumulativeReturn, 1e-9)
		require.InDelta(t, (1.1*(1+50.0/1100)-1)*100, got.TimeWeightedReturn, 1e-9)
		require.InDelta(t, 9, got.MoneyWeightedReturn, 1e-9)
	})

	t.Run("live point replaces a closed snapshot dated today", func(t *testing.T) {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		if today.Weekday() == time.Saturday || today.Weekday() == time.Sunday {
			t.Skip("no same-day snapshot exists on weekends")
		}

		ctrl := gomock.NewController(t)
		snapshotRepository := mock_repository.NewMockSnapshotRepository(ctrl)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)

		handler := chartServiceHandler{
			SnapshotRepository: snapshotRepository,
			AlpacaRepository:   alpacaRepository,
		}

		priorClose := domain.DailySnapshot{
			Date:               previousWeekday(today),
			PortfolioValue:     1000,
			NetDeposits:        1000,
			TimeWeightedReturn: 0,
		}
		staleToday := domain.DailySnapshot{
			Date:               today,
			PortfolioValue:     1010,
			NetDeposits:        1000,
			TimeWeightedReturn: 1,
		}
		snapshotRepository.EXPECT().List().Return([]domain.DailySnapshot{priorClose, staleToday}, nil)
		alpacaRepository.EXPECT().IsMarketOpen().Return(true, nil)
		alpacaRepository.EXPECT().GetLiveEquity().Return(1030.0, nil)

		series, live, err := handler.LoadWindowedSeries(testContext(), GetChartInput{
			IncludeLive: true,
		})
		require.NoError(t, err)
		require.True(t, live)
		require.Len(t, series, 2)

		// daily return measures off the close before today, not the stale
		// same-day row
		require.InDelta(t, 3, series[1].DailyReturn, 1e-9)
		require.InDelta(t, 1030, series[1].PortfolioValue, 1e-9)
	})
}

func Test_chartServiceHandler_GetSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	snapshotRepository := mock_repository.NewMockSnapshotRepository(ctrl)

	handler := chartServiceHandler{
		SnapshotRepository: snapshotRepository,
	}

	snapshotRepository.EXPECT().List().Return([]domain.DailySnapshot{
		{Date: util.NewDate(2024, 1, 2), TimeWeightedReturn: 0},
		{Date: util.NewDate(2024, 1, 3), TimeWeightedReturn: 1},
		{Date: util.NewDate(2024, 1, 4), TimeWeightedReturn: 3},
	}, nil)

	metrics, err := handler.GetSummary(testContext(), GetChartInput{
		Period: domain.ChartPeriod_All,
	}, calculator.WinRatePolicy_AllDays)
	require.NoError(t, err)

	require.NotNil(t, metrics.CumulativeReturn)
	require.InDelta(t, 3, *metrics.CumulativeReturn, 1e-9)
	require.NotNil(t, metrics.WinRate)
	require.InDelta(t, 1, *metrics.WinRate, 1e-9)
}

func floatApprox() cmp.Option {
	return cmp.Comparer(func(a, b float64) bool {
		diff := a - b
		if diff < 0 {
			diff = -diff
		}
		return diff < 1e-9
	})
}
