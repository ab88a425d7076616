package service

import (
	"fmt"
	"os"
	"testing"

	"portfoliodash/internal/domain"
	mock_repository "portfoliodash/internal/repository/mocks"
	"portfoliodash/internal/util"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func loadCandidateFixture(t *testing.T) []domain.TradeCandidate {
	t.Helper()

	f, err := os.Open("testdata/trade_candidates.csv")
	require.NoError(t, err)
	defer f.Close()

	type row struct {
		Ticker       string  `csv:"ticker"`
		Side         string  `csv:"side"`
		StrategyName string  `csv:"strategy_name"`
		Notional     float64 `csv:"notional"`
		Quantity     float64 `csv:"quantity"`
		PrevValue    float64 `csv:"prev_value"`
	}
	rows := []row{}
	require.NoError(t, gocsv.UnmarshalFile(f, &rows))

	strategyIDs := map[string]uuid.UUID{}
	out := []domain.TradeCandidate{}
	for _, r := range rows {
		if _, ok := strategyIDs[r.StrategyName]; !ok {
			strategyIDs[r.StrategyName] = uuid.New()
		}
		out = append(out, domain.TradeCandidate{
			Ticker:       r.Ticker,
			Side:         domain.TradeSide(r.Side),
			StrategyID:   strategyIDs[r.StrategyName],
			StrategyName: r.StrategyName,
			Notional:     decimal.NewFromFloat(r.Notional),
			Quantity:     decimal.NewFromFloat(r.Quantity),
			PrevValue:    decimal.NewFromFloat(r.PrevValue),
		})
	}
	return out
}

func Test_tradePreviewServiceHandler_GetPreview(t *testing.T) {
	t.Run("nets the latest refresh into grouped rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tradeCandidateRepository := mock_repository.NewMockTradeCandidateRepository(ctrl)
		snapshotRepository := mock_repository.NewMockSnapshotRepository(ctrl)

		handler := tradePreviewServiceHandler{
			TradeCandidateRepository: tradeCandidateRepository,
			SnapshotRepository:       snapshotRepository,
		}

		tradeCandidateRepository.EXPECT().ListLatest().Return(loadCandidateFixture(t), nil)
		snapshotRepository.EXPECT().GetLatest().Return(&domain.DailySnapshot{
			Date:           util.NewDate(2024, 1, 5),
			PortfolioValue: 10000,
		}, nil)

		rows, err := handler.GetPreview(testContext())
		require.NoError(t, err)
		require.Len(t, rows, 3)

		// largest absolute notional first
		require.Equal(t, "NVDA", rows[0].Ticker)
		require.Equal(t, "AAPL", rows[1].Ticker)
		require.Equal(t, "MSFT", rows[2].Ticker)

		aapl := rows[1]
		require.Equal(t, domain.TradeSide_Buy, aapl.Side)
		require.True(t, aapl.TotalNotional.Equal(decimal.NewFromInt(1000)),
			"got %s", aapl.TotalNotional)
		require.Len(t, aapl.Contributions, 2)

		// prev 2000/10000, next (2000+1000)/10000
		require.InDelta(t, 20, aapl.PrevWeight, 1e-9)
		require.InDelta(t, 30, aapl.NextWeight, 1e-9)

		msft := rows[2]
		require.Equal(t, domain.TradeSide_Sell, msft.Side)
		require.True(t, msft.TotalNotional.Equal(decimal.NewFromInt(-400)),
			"got %s", msft.TotalNotional)
	})

	t.Run("contribution notionals always sum to the row total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tradeCandidateRepository := mock_repository.NewMockTradeCandidateRepository(ctrl)
		snapshotRepository := mock_repository.NewMockSnapshotRepository(ctrl)

		handler := tradePreviewServiceHandler{
			TradeCandidateRepository: tradeCandidateRepository,
			SnapshotRepository:       snapshotRepository,
		}

		tradeCandidateRepository.EXPECT().ListLatest().Return(loadCandidateFixture(t), nil)
		snapshotRepository.EXPECT().GetLatest().Return(&domain.DailySnapshot{
			PortfolioValue: 10000,
		}, nil)

		rows, err := handler.GetPreview(testContext())
		require.NoError(t, err)

		for _, row := range rows {
			sum := decimal.Zero
			for _, c := range row.Contributions {
				sum = sum.Add(c.Notional)
			}
			require.True(t, sum.Equal(row.TotalNotional),
				"%s %s: contributions sum %s != total %s", row.Ticker, row.Side, sum, row.TotalNotional)
		}
	})

	t.Run("empty refresh returns an empty preview", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tradeCandidateRepository := mock_repository.NewMockTradeCandidateRepository(ctrl)
		snapshotRepository := mock_repository.NewMockSnapshotRepository(ctrl)

		handler := tradePreviewServiceHandler{
			TradeCandidateRepository: tradeCandidateRepository,
			SnapshotRepository:       snapshotRepository,
		}

		tradeCandidateRepository.EXPECT().ListLatest().Return([]domain.TradeCandidate{}, nil)

		rows, err := handler.GetPreview(testContext())
		require.NoError(t, err)
		require.Empty(t, rows)
	})

	t.Run("candidate load failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tradeCandidateRepository := mock_repository.NewMockTradeCandidateRepository(ctrl)
		snapshotRepository := mock_repository.NewMockSnapshotRepository(ctrl)

		handler := tradePreviewServiceHandler{
			TradeCandidateRepository: tradeCandidateRepository,
			SnapshotRepository:       snapshotRepository,
		}

		tradeCandidateRepository.EXPECT().ListLatest().Return(nil, fmt.Errorf("db down"))

		_, err := handler.GetPreview(testContext())
		require.ErrorContains(t, err, "failed to load trade candidates")
	})
}
