package converter

import (
	"property-rental/internal/domain/commission"
	sqlc "property-rental/internal/infra/sqlc/generated"
	"property-rental/internal/pkg/pgconv"
)

func SeazoneCommissionToInfra(e commission.Entry) sqlc.CreateSeazoneCommissionParams {
	return sqlc.CreateSeazoneCommissionParams{
		ReservationID:     e.ReservationID,
		ReservationDate:   pgconv.DateToPgtype(e.ReservationDate),
		CommissionPercent: pgconv.NumericFromDecimal(e.Share.Percent),
		CommissionValue:   pgconv.NumericFromDecimal(e.Share.Value),
	}
}

func HostCommissionToInfra(e commission.Entry) sqlc.CreateHostCommissionParams {
	return sqlc.CreateHostCommissionParams{
		ReservationID:     e.ReservationID,
		HostID:            e.BeneficiaryID,
		ReservationDate:   pgconv.DateToPgtype(e.ReservationDate),
		CommissionPercent: pgconv.NumericFromDecimal(e.Share.Percent),
		CommissionValue:   pgconv.NumericFromDecimal(e.Share.Value),
	}
}

func OwnerCommissionToInfra(e commission.Entry) sqlc.CreateOwnerCommissionParams {
	return sqlc.CreateOwnerCommissionParams{
		ReservationID:     e.ReservationID,
		OwnerID:           e.BeneficiaryID,
		ReservationDate:   pgconv.DateToPgtype(e.ReservationDate),
		CommissionPercent: pgconv.NumericFromDecimal(e.Share.Percent),
		CommissionValue:   pgconv.NumericFromDecimal(e.Share.Value),
	}
}
