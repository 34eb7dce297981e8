package commands

import (
	"context"
	"log/slog"

	"property-rental/internal/domain/commission"
	"property-rental/internal/domain/reservation"
	"property-rental/internal/pkg/errs"
	"property-rental/internal/pkg/metrics"
	"property-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommissionGenerator writes the three commission rows of a reservation. It
// runs inside the booking transaction so a failure undoes the reservation too.
type CommissionGenerator interface {
	Generate(ctx context.Context, tx shared.Tx, reservationID uuid.UUID, res *reservation.Reservation, prop *shared.PropertySnapshot) (commission.Split, error)
}

type commissionGeneratorImpl struct{}

func NewCommissionGenerator() CommissionGenerator {
	return &commissionGeneratorImpl{}
}

func (g *commissionGeneratorImpl) Generate(
	ctx context.Context,
	tx shared.Tx,
	reservationID uuid.UUID,
	res *reservation.Reservation,
	prop *shared.PropertySnapshot,
) (commission.Split, error) {
	split := commission.NewSplit(res.TotalPrice(), prop.Rates)

	for _, entry := range split.Entries(reservationID, prop.HostID, prop.OwnerID, res.Period().End()) {
		if _, err := tx.Commissions().Create(ctx, tx.DB(), entry); err != nil {
			return commission.Split{}, errs.Wrap(err, "create "+entry.Type.String()+" commission")
		}
		metrics.ObserveCommission(entry.Type.String())
	}

	slog.Debug("commissions generated",
		"reservation_id", reservationID,
		"total", res.TotalPrice().StringFixed(2),
		"seazone", split.Seazone.Value.StringFixed(2),
		"host", split.Host.Value.StringFixed(2),
		"owner", split.Owner.Value.StringFixed(2))

	return split, nil
}
