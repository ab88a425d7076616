package service

import (
	"context"
	"fmt"

	"portfoliodash/internal/calculator"
	"portfoliodash/internal/domain"
	"portfoliodash/internal/repository"

	"github.com/shopspring/decimal"
)

type TradePreviewService interface {
	// GetPreview nets the latest refresh cycle's per-strategy candidates
	// into displayable rows. read-only - nothing is submitted anywhere.
	GetPreview(ctx context.Context) ([]domain.GroupedTradeRow, error)
}

func NewTradePreviewService(
	tradeCandidateRepository repository.TradeCandidateRepository,
	snapshotRepository repository.SnapshotRepository,
) TradePreviewService {
	return tradePreviewServiceHandler{
		TradeCandidateRepository: tradeCandidateRepository,
		SnapshotRepository:       snapshotRepository,
	}
}

type tradePreviewServiceHandler struct {
	TradeCandidateRepository repository.TradeCandidateRepository
	SnapshotRepository       repository.SnapshotRepository
}

func (h tradePreviewServiceHandler) GetPreview(ctx context.Context) ([]domain.GroupedTradeRow, error) {
	candidates, err := h.TradeCandidateRepository.ListLatest()
	if err != nil {
		return nil, fmt.Errorf("failed to load trade candidates: %w", err)
	}
	if len(candidates) == 0 {
		return []domain.GroupedTradeRow{}, nil
	}

	portfolioValue := decimal.Zero
	latest, err := h.SnapshotRepository.GetLatest()
	if err != nil {
		return nil, fmt.Errorf("failed to load latest snapshot: %w", err)
	}
	if latest != nil {
		portfolioValue = decimal.NewFromFloat(latest.PortfolioValue)
	}

	return calculator.GroupTrades(candidates, portfolioValue), nil
}
