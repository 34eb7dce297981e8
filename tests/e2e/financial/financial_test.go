//go:build e2e

package financial_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	resdto "property-rental/internal/handler/dto/response"
	"property-rental/tests/common/builder"
	"property-rental/tests/common/dbtest"
	"property-rental/tests/common/httptest"
	"property-rental/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const commissionsURL = "/api/financial/commissions"

type FinancialSuite struct {
	e2e.SharedSuite
}

func (s *FinancialSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestFinancialSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(FinancialSuite))
}

// line is a statement row reduced to comparable strings.
type line struct {
	Property     uuid.UUID
	Commission   string
	Reservations int64
}

func (s *FinancialSuite) statement(query string) (string, int64, []line) {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, commissionsURL+query, nil)

	var st resdto.FinancialStatementResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &st)

	lines := make([]line, len(st.PropertiesStatement))
	for i, p := range st.PropertiesStatement {
		lines[i] = line{Property: p.PropertyID, Commission: p.TotalCommission.Decimal().StringFixed(2), Reservations: p.TotalReservations}
	}
	return st.TotalCommission.Decimal().StringFixed(2), st.TotalReservations, lines
}

func (s *FinancialSuite) book(prop uuid.UUID, start, end string) {
	body := builder.NewReservationBuilder().WithProperty(prop).WithDates(start, end).BuildCreateRequestDTO()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations", body)
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())
}

func monthQuery(date string) string {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("&year=%d&month=%d", d.Year(), int(d.Month()))
}

// =============================================================================
// TestAggregate
// =============================================================================

func (s *FinancialSuite) TestAggregate() {
	s.Run("Normal case: each table sums its own commissions, idle properties report zero", func() {
		t := s.T()
		busy := builder.NewPropertyBuilder()
		idle := builder.NewPropertyBuilder()
		dbtest.CreateProperty(t, s.DB, busy)
		dbtest.CreateProperty(t, s.DB, idle)
		s.book(busy.ID, e2e.Date(30), e2e.Date(90))

		for _, tc := range []struct {
			typ   string
			value string
		}{
			{"seazone", "120.66"},
			{"host", "844.62"},
			{"owner", "241.32"},
		} {
			total, count, lines := s.statement("?type=" + tc.typ)

			require.Equal(t, tc.value, total, tc.typ)
			require.Equal(t, int64(1), count, tc.typ)
			got := map[uuid.UUID]line{}
			for _, l := range lines {
				got[l.Property] = l
			}
			want := map[uuid.UUID]line{
				busy.ID: {Property: busy.ID, Commission: tc.value, Reservations: 1},
				idle.ID: {Property: idle.ID, Commission: "0.00", Reservations: 0},
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s statement mismatch (-want +got):\n%s", tc.typ, diff)
			}
		}
	})

	s.Run("Normal case: the month filter follows the checkout date", func() {
		t := s.T()
		prop := builder.NewPropertyBuilder()
		dbtest.CreateProperty(t, s.DB, prop)
		start, end := e2e.Date(30), e2e.Date(90)
		s.book(prop.ID, start, end)

		total, count, _ := s.statement("?type=seazone" + monthQuery(end))
		require.Equal(t, "120.66", total)
		require.Equal(t, int64(1), count)

		total, count, lines := s.statement("?type=seazone" + monthQuery(start))
		require.Equal(t, "0.00", total)
		require.Zero(t, count)
		require.Len(t, lines, 1, "properties are listed even without commissions in the month")
	})

	s.Run("Normal case: repeated queries are stable and new bookings are visible", func() {
		t := s.T()
		prop := builder.NewPropertyBuilder()
		dbtest.CreateProperty(t, s.DB, prop)

		total, _, _ := s.statement("?type=host")
		require.Equal(t, "0.00", total)
		require.NotEmpty(t, s.Redis.Keys(), "first computation is cached")

		first := httptest.PerformRequest(t, s.Router, http.MethodGet, commissionsURL+"?type=host", nil)
		second := httptest.PerformRequest(t, s.Router, http.MethodGet, commissionsURL+"?type=host", nil)
		require.JSONEq(t, first.Body.String(), second.Body.String())

		s.book(prop.ID, e2e.Date(30), e2e.Date(90))

		total, count, _ := s.statement("?type=host")
		require.Equal(t, "844.62", total)
		require.Equal(t, int64(1), count)
	})

	s.Run("Normal case: cache outage falls back to the database", func() {
		t := s.T()
		prop := builder.NewPropertyBuilder()
		dbtest.CreateProperty(t, s.DB, prop)
		s.book(prop.ID, e2e.Date(30), e2e.Date(90))

		s.Redis.SetError("ERR cache unavailable")
		defer s.Redis.SetError("")

		total, _, _ := s.statement("?type=owner")
		require.Equal(t, "241.32", total)
	})

	s.Run("Error case: invalid filters", func() {
		testCases := []struct {
			name  string
			query string
			msg   string
		}{
			{"missing type", "", "Use type 'seazone', 'owner' or 'host'."},
			{"unknown type", "?type=platform", "Use type 'seazone', 'owner' or 'host'."},
			{"year without month", "?type=seazone&year=2024", "Required year and month."},
			{"month without year", "?type=seazone&month=3", "Required year and month."},
		}
		for _, tc := range testCases {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, commissionsURL+tc.query, nil)
			body := httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
			require.Equal(s.T(), []string{tc.msg}, body.Errors, tc.name)
		}
	})
}
