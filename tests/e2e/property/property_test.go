//go:build e2e

package property_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"property-rental/internal/domain/reservation"
	resdto "property-rental/internal/handler/dto/response"
	"property-rental/internal/pkg/errs"
	"property-rental/tests/common/builder"
	"property-rental/tests/common/dbtest"
	"property-rental/tests/common/httptest"
	"property-rental/tests/common/testutil"
	"property-rental/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	propertiesURL   = "/api/properties"
	availabilityURL = "/api/properties/%s/availability"
	ownersURL       = "/api/owners"
	hostsURL        = "/api/hosts"
)

type PropertySuite struct {
	e2e.SharedSuite
}

func (s *PropertySuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestPropertySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PropertySuite))
}

func (s *PropertySuite) createContact(path string, c *builder.ContactBuilder) uuid.UUID {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path, c.BuildCreateRequestDTO())

	var created resdto.ContactResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
	return created.ID
}

// =============================================================================
// TestOwnersAndHosts
// =============================================================================

func (s *PropertySuite) TestOwnersAndHosts() {
	s.Run("Normal case: register, fetch and list", func() {
		t := s.T()
		ownerID := s.createContact(ownersURL, builder.NewContactBuilder())
		s.createContact(ownersURL, builder.NewContactBuilder().With(func(b *builder.ContactBuilder) { b.Email = "ana@example.com" }))
		hostID := s.createContact(hostsURL, builder.NewContactBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ownersURL+"/"+ownerID.String(), nil)
		var owner resdto.ContactResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &owner)
		require.Equal(t, "joao@example.com", owner.Email)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, ownersURL, nil)
		var owners []resdto.ContactResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &owners)
		require.Len(t, owners, 2)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, hostsURL+"/"+ownerID.String(), nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "host not found")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, hostsURL+"/"+hostID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("Error case: invalid email", func() {
		body := testutil.DtoMap(s.T(), builder.NewContactBuilder().BuildCreateRequestDTO(), testutil.Field("email", "not-an-email"))
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, hostsURL, body)
		httptest.AssertFieldError(s.T(), w, "email")
		require.Zero(s.T(), dbtest.CountRows(s.T(), s.DB, "hosts"))
	})
}

// =============================================================================
// TestCreateProperty
// =============================================================================

func (s *PropertySuite) TestCreateProperty() {
	s.Run("Normal case: stored with its rates", func() {
		t := s.T()
		ownerID := s.createContact(ownersURL, builder.NewContactBuilder())
		hostID := s.createContact(hostsURL, builder.NewContactBuilder())
		req := builder.NewPropertyBuilder().WithParties(ownerID, hostID).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, propertiesURL, req)

		var created resdto.PropertyResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, ownerID, created.OwnerID)
		require.Equal(t, hostID, created.HostID)
		require.Equal(t, "20.11", created.PricePerNight.Decimal().StringFixed(2))
		require.Equal(t, "0.7", created.HostRate.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, propertiesURL+"/"+created.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("Error case: rates must sum to one", func() {
		t := s.T()
		ownerID := s.createContact(ownersURL, builder.NewContactBuilder())
		hostID := s.createContact(hostsURL, builder.NewContactBuilder())
		req := builder.NewPropertyBuilder().WithParties(ownerID, hostID).WithRates("0.2", "0.7", "0.2").BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, propertiesURL, req)

		httptest.AssertRuleError(t, w, "The sum of seazone_rate, host_rate, and owner_rate must equal 1.")
		require.Zero(t, dbtest.CountRows(t, s.DB, "properties"))
	})

	s.Run("Error case: unknown owner and host", func() {
		t := s.T()
		ownerID, hostID := uuid.New(), uuid.New()
		req := builder.NewPropertyBuilder().WithParties(ownerID, hostID).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, propertiesURL, req)

		body := httptest.AssertFieldError(t, w, "owner")
		require.Equal(t, []string{errs.MissingReferenceMessage(ownerID)}, body.Fields["owner"])
		require.Equal(t, []string{errs.MissingReferenceMessage(hostID)}, body.Fields["host"])
	})
}

// =============================================================================
// TestListProperties
// =============================================================================

func (s *PropertySuite) TestListProperties() {
	t := s.T()
	cheap := builder.NewPropertyBuilder().WithPrice("80").With(func(b *builder.PropertyBuilder) {
		b.City, b.Neighborhood, b.Capacity = "Florianópolis", "Jurerê", 2
	})
	large := builder.NewPropertyBuilder().WithPrice("450").With(func(b *builder.PropertyBuilder) {
		b.City, b.Neighborhood, b.Capacity = "Florianópolis", "Centro", 8
	})
	other := builder.NewPropertyBuilder().WithPrice("120")
	for _, p := range []*builder.PropertyBuilder{cheap, large, other} {
		dbtest.CreateProperty(t, s.DB, p)
	}

	testCases := []struct {
		name  string
		query url.Values
		want  []uuid.UUID
	}{
		{"no filter", url.Values{}, []uuid.UUID{cheap.ID, large.ID, other.ID}},
		{"city", url.Values{"address_city": {"Florianópolis"}}, []uuid.UUID{cheap.ID, large.ID}},
		{"neighborhood", url.Values{"address_neighborhood": {"Centro"}}, []uuid.UUID{large.ID}},
		{"minimum capacity", url.Values{"capacity": {"4"}}, []uuid.UUID{large.ID, other.ID}},
		{"maximum price", url.Values{"price_per_night": {"120"}}, []uuid.UUID{cheap.ID, other.ID}},
		{"combined", url.Values{"address_city": {"Florianópolis"}, "price_per_night": {"100"}}, []uuid.UUID{cheap.ID}},
	}

	for _, tc := range testCases {
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, propertiesURL+"?"+tc.query.Encode(), nil)

		var got []resdto.PropertyResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		ids := make([]uuid.UUID, len(got))
		for i, p := range got {
			ids[i] = p.ID
		}
		require.ElementsMatch(t, tc.want, ids, tc.name)
	}
}

// =============================================================================
// TestAvailability
// =============================================================================

func (s *PropertySuite) TestAvailability() {
	check := func(id uuid.UUID, start, end string, guests string) (int, httptest.ErrorBody) {
		q := url.Values{"start_date": {start}, "end_date": {end}, "guests_quantity": {guests}}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(availabilityURL, id)+"?"+q.Encode(), nil)
		if w.Code == http.StatusOK {
			require.JSONEq(s.T(), `{"message":"Available for the selected dates."}`, w.Body.String())
			return w.Code, httptest.ErrorBody{}
		}
		return w.Code, httptest.AssertErrorResponse(s.T(), w, w.Code, "")
	}

	s.Run("Free and booked ranges", func() {
		t := s.T()
		prop := builder.NewPropertyBuilder()
		dbtest.CreateProperty(t, s.DB, prop)

		code, _ := check(prop.ID, e2e.Date(30), e2e.Date(90), "4")
		require.Equal(t, http.StatusOK, code)

		book := builder.NewReservationBuilder().WithProperty(prop.ID).WithDates(e2e.Date(30), e2e.Date(90)).BuildCreateRequestDTO()
		require.Equal(t, http.StatusCreated, httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations", book).Code)

		code, body := check(prop.ID, e2e.Date(80), e2e.Date(100), "2")
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, []string{"The property is already booked for part of the requested date range."}, body.Errors)

		code, _ = check(prop.ID, e2e.Date(90), e2e.Date(100), "2")
		require.Equal(t, http.StatusOK, code, "checkout day is free")

		code, _ = check(prop.ID, e2e.Date(-20), e2e.Date(-10), "2")
		require.Equal(t, http.StatusOK, code, "past ranges can be probed")
	})

	s.Run("Only confirmed reservations block dates", func() {
		t := s.T()
		prop := builder.NewPropertyBuilder()
		dbtest.CreateProperty(t, s.DB, prop)
		dbtest.CreateReservation(t, s.DB, builder.NewReservationBuilder().
			WithProperty(prop.ID).
			WithDates(e2e.Date(10), e2e.Date(20)).
			With(func(b *builder.ReservationBuilder) { b.Status = reservation.StatusCancelled }))

		code, _ := check(prop.ID, e2e.Date(12), e2e.Date(15), "2")
		require.Equal(t, http.StatusOK, code)

		dbtest.CreateReservation(t, s.DB, builder.NewReservationBuilder().
			WithProperty(prop.ID).
			WithDates(e2e.Date(10), e2e.Date(20)))

		code, _ = check(prop.ID, e2e.Date(12), e2e.Date(15), "2")
		require.Equal(t, http.StatusBadRequest, code)
	})

	s.Run("Rejections", func() {
		t := s.T()
		prop := builder.NewPropertyBuilder()
		dbtest.CreateProperty(t, s.DB, prop)

		code, body := check(prop.ID, e2e.Date(5), e2e.Date(7), "5")
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, []string{"The number of guests exceeds the maximum capacity of the property."}, body.Errors)

		code, body = check(prop.ID, e2e.Date(7), e2e.Date(5), "2")
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, "Invalid request", body.Error.Message)

		code, body = check(prop.ID, e2e.Date(5), e2e.Date(7), "-1")
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, []string{"guests_quantity must be greater than 0."}, body.Errors)

		code, _ = check(uuid.New(), e2e.Date(5), e2e.Date(7), "2")
		require.Equal(t, http.StatusNotFound, code)
	})
}
