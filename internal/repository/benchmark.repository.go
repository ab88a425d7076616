package repository

import (
	"database/sql"
	"fmt"
	"time"

	"portfoliodash/internal/db/models/postgres/public/model"
	. "portfoliodash/internal/db/models/postgres/public/table"
	"portfoliodash/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type BenchmarkRepository interface {
	// List returns stored cumulative returns for one symbol in date order.
	// nil bounds are unbounded.
	List(symbol string, start, end *time.Time) ([]domain.BenchmarkPoint, error)
	Add(tx qrm.Executable, prices []model.BenchmarkPrice) error
}

func NewBenchmarkRepository(db *sql.DB) BenchmarkRepository {
	return benchmarkRepositoryHandler{Db: db}
}

type benchmarkRepositoryHandler struct {
	Db *sql.DB
}

func (h benchmarkRepositoryHandler) List(symbol string, start, end *time.Time) ([]domain.BenchmarkPoint, error) {
	conditions := []BoolExpression{
		BenchmarkPrice.Symbol.EQ(String(symbol)),
	}
	if start != nil {
		conditions = append(conditions, BenchmarkPrice.Date.GT_EQ(DateT(*start)))
	}
	if end != nil {
		conditions = append(conditions, BenchmarkPrice.Date.LT_EQ(DateT(*end)))
	}

	query := BenchmarkPrice.
		SELECT(BenchmarkPrice.AllColumns).
		WHERE(AND(conditions...)).
		ORDER_BY(BenchmarkPrice.Date.ASC())

	results := []model.BenchmarkPrice{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list benchmark prices for %s: %w", symbol, err)
	}

	out := make([]domain.BenchmarkPoint, 0, len(results))
	for _, m := range results {
		out = append(out, domain.BenchmarkPoint{
			Date:      m.Date,
			ReturnPct: m.ReturnPct,
			MwrPct:    m.MwrPct,
		})
	}
	return out, nil
}

func (h benchmarkRepositoryHandler) Add(tx qrm.Executable, prices []model.BenchmarkPrice) error {
	if len(prices) == 0 {
		return nil
	}

	query := BenchmarkPrice.
		INSERT(BenchmarkPrice.AllColumns).
		MODELS(prices).
		ON_CONFLICT(BenchmarkPrice.Symbol, BenchmarkPrice.Date).
		DO_UPDATE(
			SET(
				BenchmarkPrice.ReturnPct.SET(BenchmarkPrice.EXCLUDED.ReturnPct),
				BenchmarkPrice.MwrPct.SET(BenchmarkPrice.EXCLUDED.MwrPct),
			),
		)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add benchmark prices: %w", err)
	}

	return nil
}
