package shared

import (
	"context"

	"property-rental/internal/domain/commission"
	"property-rental/internal/domain/party"
	"property-rental/internal/domain/property"
	"property-rental/internal/domain/reservation"
	sqlc "property-rental/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Owners() ContactRepository
	Hosts() ContactRepository
	Properties() PropertyRepository
	Reservations() ReservationRepository
	Commissions() CommissionRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	PropertyByID(ctx context.Context, id uuid.UUID) (*PropertySnapshot, error)
	// PropertyForUpdate locks the property row until the transaction ends.
	PropertyForUpdate(ctx context.Context, id uuid.UUID) (*PropertySnapshot, error)
	HasOverlap(ctx context.Context, propertyID uuid.UUID, period reservation.StayPeriod) (bool, error)
	OwnerExists(ctx context.Context, id uuid.UUID) (bool, error)
	HostExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type ContactRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *party.Contact) (uuid.UUID, error)
}

type PropertyRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *property.Property) (uuid.UUID, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
}

type CommissionRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, entry commission.Entry) (uuid.UUID, error)
}
