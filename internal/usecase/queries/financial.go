package queries

import (
	"context"
	"log/slog"
	"time"

	"property-rental/internal/domain/commission"
	sqlc "property-rental/internal/infra/sqlc/generated"

	"github.com/shopspring/decimal"
)

type FinancialReadStore interface {
	// StatementByProperty lists every property with its totals for the given
	// commission table, restricted to [from, to) when both are set.
	StatementByProperty(ctx context.Context, db sqlc.DBTX, t commission.Type, from, to *time.Time) ([]PropertyStatement, error)
}

type ReadOnlyRunner interface {
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

// FinancialCache stores computed statements. Implementations drop every entry
// when a reservation is committed. Get returns the cache generation it read;
// Set must be given that same generation so a statement computed across an
// invalidation is never served.
type FinancialCache interface {
	Get(ctx context.Context, key string) (st *FinancialStatement, gen int64, ok bool)
	Set(ctx context.Context, key string, gen int64, st *FinancialStatement)
}

type FinancialQueries interface {
	Aggregate(ctx context.Context, commissionType string, year, month *int) (*FinancialStatement, error)
}

type financialQueriesImpl struct {
	runner ReadOnlyRunner
	store  FinancialReadStore
	cache  FinancialCache
}

func NewFinancialQueries(runner ReadOnlyRunner, store FinancialReadStore, cache FinancialCache) FinancialQueries {
	return &financialQueriesImpl{runner: runner, store: store, cache: cache}
}

func (q *financialQueriesImpl) Aggregate(ctx context.Context, commissionType string, year, month *int) (*FinancialStatement, error) {
	t, err := commission.ParseType(commissionType)
	if err != nil {
		return nil, err
	}
	period, err := commission.NewPeriod(year, month)
	if err != nil {
		return nil, err
	}

	key := FinancialCacheKey(t, period)
	cached, gen, ok := q.cache.Get(ctx, key)
	if ok {
		return cached, nil
	}

	var from, to *time.Time
	if period != nil {
		f, e := period.Range()
		from, to = &f, &e
	}

	var rows []PropertyStatement
	err = q.runner.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		rows, err = q.store.StatementByProperty(ctx, db, t, from, to)
		return err
	})
	if err != nil {
		return nil, err
	}

	st := summarize(rows)
	q.cache.Set(ctx, key, gen, st)

	slog.Debug("financial statement computed",
		"type", t.String(),
		"period", key,
		"properties", len(st.PropertiesStatement))

	return st, nil
}

// Every commission row belongs to exactly one property, so the grand totals
// are the sums over the per-property lines.
func summarize(rows []PropertyStatement) *FinancialStatement {
	st := &FinancialStatement{
		TotalCommission:     decimal.Zero,
		PropertiesStatement: make([]PropertyStatement, 0, len(rows)),
	}
	for _, r := range rows {
		st.TotalCommission = st.TotalCommission.Add(r.TotalCommission)
		st.TotalReservations += r.TotalReservations
		st.PropertiesStatement = append(st.PropertiesStatement, r)
	}
	return st
}

func FinancialCacheKey(t commission.Type, period *commission.Period) string {
	if period == nil {
		return t.String() + ":all"
	}
	return t.String() + ":" + period.String()
}
