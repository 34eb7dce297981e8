package readstore

import (
	"context"
	"time"

	"property-rental/internal/domain/commission"
	"property-rental/internal/infra"
	sqlc "property-rental/internal/infra/sqlc/generated"
	"property-rental/internal/pkg/pgconv"
	"property-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type FinancialViewQueries interface {
	SeazoneCommissionsByProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.SeazoneCommissionsByPropertyParams) ([]sqlc.SeazoneCommissionsByPropertyRow, error)
	HostCommissionsByProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.HostCommissionsByPropertyParams) ([]sqlc.HostCommissionsByPropertyRow, error)
	OwnerCommissionsByProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.OwnerCommissionsByPropertyParams) ([]sqlc.OwnerCommissionsByPropertyRow, error)
}

type FinancialReadStore struct {
	queries FinancialViewQueries
}

func NewFinancialReadStore(queries FinancialViewQueries) *FinancialReadStore {
	return &FinancialReadStore{queries: queries}
}

// statementRow is the column set shared by the three per-table queries.
type statementRow struct {
	PropertyID        uuid.UUID
	TotalCommission   pgtype.Numeric
	TotalReservations int64
}

func (r *FinancialReadStore) StatementByProperty(ctx context.Context, db sqlc.DBTX, t commission.Type, from, to *time.Time) ([]queries.PropertyStatement, error) {
	fromDate, toDate := pgconv.DatePtrToPgtype(from), pgconv.DatePtrToPgtype(to)

	var rows []statementRow
	switch t {
	case commission.TypeSeazone:
		res, err := r.queries.SeazoneCommissionsByProperty(ctx, db, sqlc.SeazoneCommissionsByPropertyParams{FromDate: fromDate, ToDate: toDate})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to aggregate seazone commissions", err)
		}
		rows = make([]statementRow, len(res))
		for i, row := range res {
			rows[i] = statementRow(row)
		}
	case commission.TypeHost:
		res, err := r.queries.HostCommissionsByProperty(ctx, db, sqlc.HostCommissionsByPropertyParams{FromDate: fromDate, ToDate: toDate})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to aggregate host commissions", err)
		}
		rows = make([]statementRow, len(res))
		for i, row := range res {
			rows[i] = statementRow(row)
		}
	case commission.TypeOwner:
		res, err := r.queries.OwnerCommissionsByProperty(ctx, db, sqlc.OwnerCommissionsByPropertyParams{FromDate: fromDate, ToDate: toDate})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to aggregate owner commissions", err)
		}
		rows = make([]statementRow, len(res))
		for i, row := range res {
			rows[i] = statementRow(row)
		}
	default:
		return nil, commission.ErrInvalidCommissionType
	}

	result := make([]queries.PropertyStatement, len(rows))
	for i, row := range rows {
		total, err := pgconv.DecimalFromNumeric(row.TotalCommission)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid commission total", err)
		}
		result[i] = queries.PropertyStatement{
			PropertyID:        row.PropertyID,
			TotalCommission:   total,
			TotalReservations: row.TotalReservations,
		}
	}
	return result, nil
}
