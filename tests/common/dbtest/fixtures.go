//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"property-rental/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Conn is satisfied by *pgxpool.Pool and pgx.Tx so fixtures can run inside a test transaction.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateOwner(t *testing.T, db Conn, c *builder.ContactBuilder) uuid.UUID {
	t.Helper()
	return insertContact(t, db, "owners", c)
}

func CreateHost(t *testing.T, db Conn, c *builder.ContactBuilder) uuid.UUID {
	t.Helper()
	return insertContact(t, db, "hosts", c)
}

func insertContact(t *testing.T, db Conn, table string, c *builder.ContactBuilder) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO "+table+" (name, email, phone) VALUES ($1, $2, $3) RETURNING id",
		c.Name, c.Email, c.Phone).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateProperty inserts p together with a fresh owner and host and returns the
// property id. p.ID, p.OwnerID and p.HostID are updated to the stored values.
func CreateProperty(t *testing.T, db Conn, p *builder.PropertyBuilder) uuid.UUID {
	t.Helper()

	p.OwnerID = CreateOwner(t, db, builder.NewContactBuilder())
	p.HostID = CreateHost(t, db, builder.NewContactBuilder())

	err := db.QueryRow(context.Background(), `
		INSERT INTO properties (
		    title, address_street, address_number, address_neighborhood, address_city, country,
		    rooms, capacity, price_per_night, owner_id, host_id, seazone_rate, host_rate, owner_rate
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`,
		p.Title, p.Street, p.Number, p.Neighborhood, p.City, p.Country,
		p.Rooms, p.Capacity, p.PricePerNight, p.OwnerID, p.HostID,
		p.SeazoneRate, p.HostRate, p.OwnerRate).Scan(&p.ID)
	require.NoError(t, err)
	return p.ID
}

// CreateReservation inserts r directly, bypassing booking rules, so tests can
// seed states the API never produces such as cancelled stays.
func CreateReservation(t *testing.T, db Conn, r *builder.ReservationBuilder) uuid.UUID {
	t.Helper()

	err := db.QueryRow(context.Background(), `
		INSERT INTO reservations (
		    property_id, start_date, end_date, client_name, client_email, guests_quantity, total_price, status
		) VALUES ($1, $2, $3, $4, $5, $6, 0, $7)
		RETURNING id`,
		r.PropertyID, r.StartDate, r.EndDate, r.ClientName, r.ClientEmail, r.GuestsQuantity, r.Status.String()).Scan(&r.ID)
	require.NoError(t, err)
	return r.ID
}

func CountRows(t *testing.T, db Conn, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every application table, keeping the migration log
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
