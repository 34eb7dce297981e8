//go:build unit

package infra_test

import (
	"testing"

	"property-rental/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		kind       []infra.RepositoryErrorKind
		want       infra.RepositoryErrorKind
		constraint string
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique", err: &pgconn.PgError{Code: "23505", ConstraintName: "seazone_commissions_reservation_id_key"}, want: infra.KindDuplicateKey, constraint: "seazone_commissions_reservation_id_key"},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503", ConstraintName: "properties_owner_id_fkey"}, want: infra.KindForeignKeyViolated, constraint: "properties_owner_id_fkey"},
		{name: "exclusion", err: &pgconn.PgError{Code: "23P01", ConstraintName: "reservations_no_overlap"}, want: infra.KindConflict, constraint: "reservations_no_overlap"},
		{name: "check", err: &pgconn.PgError{Code: "23514", ConstraintName: "properties_rates_sum"}, want: infra.KindCheckViolated, constraint: "properties_rates_sum"},
		{name: "other pg error", err: &pgconn.PgError{Code: "57014"}, want: infra.KindDBFailure},
		{name: "plain error", err: assert.AnError, want: infra.KindDBFailure},
		{name: "explicit kind wins", err: assert.AnError, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tt.err, tt.kind...)

			assert.True(t, infra.IsKind(err, tt.want))
			assert.Equal(t, tt.constraint, infra.ConstraintOf(err))
			assert.Contains(t, err.Error(), "op failed")
		})
	}
}
