package repository

import (
	"database/sql"
	"fmt"

	"portfoliodash/internal/db/models/postgres/public/model"
	. "portfoliodash/internal/db/models/postgres/public/table"
	"portfoliodash/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type TradeCandidateRepository interface {
	// ListLatest returns the candidates from the most recent refresh cycle
	// only. earlier cycles are kept for audit but never displayed.
	ListLatest() ([]domain.TradeCandidate, error)
	ReplaceRefresh(tx qrm.Executable, refreshID uuid.UUID, candidates []model.TradeCandidate) error
}

func NewTradeCandidateRepository(db *sql.DB) TradeCandidateRepository {
	return tradeCandidateRepositoryHandler{Db: db}
}

type tradeCandidateRepositoryHandler struct {
	Db *sql.DB
}

func (h tradeCandidateRepositoryHandler) ListLatest() ([]domain.TradeCandidate, error) {
	latestRefresh := TradeCandidate.
		SELECT(TradeCandidate.RefreshID).
		ORDER_BY(TradeCandidate.CreatedAt.DESC()).
		LIMIT(1)

	query := TradeCandidate.
		SELECT(TradeCandidate.AllColumns).
		WHERE(TradeCandidate.RefreshID.IN(latestRefresh)).
		ORDER_BY(TradeCandidate.CreatedAt.ASC())

	results := []model.TradeCandidate{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest trade candidates: %w", err)
	}

	out := make([]domain.TradeCandidate, 0, len(results))
	for _, m := range results {
		out = append(out, domain.TradeCandidate{
			Ticker:       m.Ticker,
			Side:         domain.TradeSide(m.Side),
			StrategyID:   m.StrategyID,
			StrategyName: m.StrategyName,
			Notional:     m.Notional,
			Quantity:     m.Quantity,
			PrevWeight:   m.PrevWeight,
			NextWeight:   m.NextWeight,
			PrevValue:    m.PrevValue,
		})
	}
	return out, nil
}

// ReplaceRefresh writes one refresh cycle's candidates atomically. caller
// owns the transaction so a failed write never leaves a half-visible cycle.
func (h tradeCandidateRepositoryHandler) ReplaceRefresh(tx qrm.Executable, refreshID uuid.UUID, candidates []model.TradeCandidate) error {
	deleteQuery := TradeCandidate.
		DELETE().
		WHERE(TradeCandidate.RefreshID.EQ(UUID(refreshID)))
	_, err := deleteQuery.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to clear refresh %s: %w", refreshID, err)
	}

	if len(candidates) == 0 {
		return nil
	}

	for i := range candidates {
		candidates[i].TradeCandidateID = uuid.New()
		candidates[i].RefreshID = refreshID
	}

	insertQuery := TradeCandidate.
		INSERT(TradeCandidate.AllColumns).
		MODELS(candidates)
	_, err = insertQuery.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to insert %d trade candidates: %w", len(candidates), err)
	}

	return nil
}
