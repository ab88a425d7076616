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

type SnapshotRepository interface {
	// List returns the full account-level series in date order
	List() ([]domain.DailySnapshot, error)
	GetLatest() (*domain.DailySnapshot, error)
	ListStrategy(strategyID uuid.UUID) ([]domain.DailySnapshot, error)
	Add(tx qrm.Executable, snapshots []model.DailySnapshot) error
}

func NewSnapshotRepository(db *sql.DB) SnapshotRepository {
	return snapshotRepositoryHandler{Db: db}
}

type snapshotRepositoryHandler struct {
	Db *sql.DB
}

func (h snapshotRepositoryHandler) List() ([]domain.DailySnapshot, error) {
	query := DailySnapshot.
		SELECT(DailySnapshot.AllColumns).
		ORDER_BY(DailySnapshot.Date.ASC())

	results := []model.DailySnapshot{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily snapshots: %w", err)
	}

	out := make([]domain.DailySnapshot, 0, len(results))
	for _, m := range results {
		out = append(out, snapshotFromModel(m))
	}
	return out, nil
}

func (h snapshotRepositoryHandler) GetLatest() (*domain.DailySnapshot, error) {
	query := DailySnapshot.
		SELECT(DailySnapshot.AllColumns).
		ORDER_BY(DailySnapshot.Date.DESC()).
		LIMIT(1)

	result := model.DailySnapshot{}
	err := query.Query(h.Db, &result)
	if err == qrm.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get latest daily snapshot: %w", err)
	}

	out := snapshotFromModel(result)
	return &out, nil
}

func (h snapshotRepositoryHandler) ListStrategy(strategyID uuid.UUID) ([]domain.DailySnapshot, error) {
	query := StrategyDailySnapshot.
		SELECT(StrategyDailySnapshot.AllColumns).
		WHERE(StrategyDailySnapshot.StrategyID.EQ(UUID(strategyID))).
		ORDER_BY(StrategyDailySnapshot.Date.ASC())

	results := []model.StrategyDailySnapshot{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots for strategy %s: %w", strategyID, err)
	}

	out := make([]domain.DailySnapshot, 0, len(results))
	for _, m := range results {
		out = append(out, domain.DailySnapshot{
			Date:                m.Date,
			PortfolioValue:      m.PortfolioValue,
			NetDeposits:         m.NetDeposits,
			CumulativeReturn:    m.CumulativeReturn,
			DailyReturn:         m.DailyReturn,
			TimeWeightedReturn:  m.TimeWeightedReturn,
			MoneyWeightedReturn: m.MoneyWeightedReturn,
			CurrentDrawdown:     m.CurrentDrawdown,
		})
	}
	return out, nil
}

// Add upserts on date - the nightly job re-runs for the same day after
// late broker corrections
func (h snapshotRepositoryHandler) Add(tx qrm.Executable, snapshots []model.DailySnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	query := DailySnapshot.
		INSERT(DailySnapshot.AllColumns).
		MODELS(snapshots).
		ON_CONFLICT(DailySnapshot.Date).
		DO_UPDATE(
			SET(
				DailySnapshot.PortfolioValue.SET(DailySnapshot.EXCLUDED.PortfolioValue),
				DailySnapshot.NetDeposits.SET(DailySnapshot.EXCLUDED.NetDeposits),
				DailySnapshot.CumulativeReturn.SET(DailySnapshot.EXCLUDED.CumulativeReturn),
				DailySnapshot.DailyReturn.SET(DailySnapshot.EXCLUDED.DailyReturn),
				DailySnapshot.TimeWeightedReturn.SET(DailySnapshot.EXCLUDED.TimeWeightedReturn),
				DailySnapshot.MoneyWeightedReturn.SET(DailySnapshot.EXCLUDED.MoneyWeightedReturn),
				DailySnapshot.CurrentDrawdown.SET(DailySnapshot.EXCLUDED.CurrentDrawdown),
			),
		)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add daily snapshots: %w", err)
	}

	return nil
}

func snapshotFromModel(m model.DailySnapshot) domain.DailySnapshot {
	return domain.DailySnapshot{
		Date:                m.Date,
		PortfolioValue:      m.PortfolioValue,
		NetDeposits:         m.NetDeposits,
		CumulativeReturn:    m.CumulativeReturn,
		DailyReturn:         m.DailyReturn,
		TimeWeightedReturn:  m.TimeWeightedReturn,
		MoneyWeightedReturn: m.MoneyWeightedReturn,
		CurrentDrawdown:     m.CurrentDrawdown,
	}
}
