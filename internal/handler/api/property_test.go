//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"property-rental/internal/domain/property"
	"property-rental/internal/domain/reservation"
	"property-rental/internal/handler/api"
	"property-rental/internal/handler/middleware"
	resdto "property-rental/internal/handler/dto/response"
	"property-rental/internal/pkg/dateonly"
	"property-rental/internal/pkg/errs"
	"property-rental/internal/usecase/queries"
	"property-rental/tests/common/builder"
	"property-rental/tests/common/httptest"
	"property-rental/tests/common/testutil"
	commandsmock "property-rental/tests/mock/commands"
	queriesmock "property-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PropertyHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockPropertyCommands
	mockQueries      *queriesmock.MockPropertyQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	handler          *api.PropertyHandler
}

func (s *PropertyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(middleware.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPropertyCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPropertyQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewPropertyHandler(s.mockCommands, s.mockQueries, s.mockAvailability)

	s.router.POST("/api/properties", s.handler.Create)
	s.router.GET("/api/properties", s.handler.List)
	s.router.GET("/api/properties/:id", s.handler.Get)
	s.router.GET("/api/properties/:id/availability", s.handler.Availability)
}

func (s *PropertyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPropertyHandlerSuite(t *testing.T) {
	suite.Run(t, new(PropertyHandlerTestSuite))
}

type testCaseProperty struct {
	name        string
	mutate      testutil.Mutation
	expectCode  int
	expectField string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *PropertyHandlerTestSuite) TestCreate() {
	url := "/api/properties"

	prop := builder.NewPropertyBuilder()
	reqBody := prop.BuildCreateRequestDTO()
	returnView := prop.BuildView()

	bound := []testCaseProperty{
		{name: "rooms boundary OK (0)", mutate: testutil.Field("rooms", 0), expectCode: http.StatusCreated},
		{name: "rooms negative", mutate: testutil.Field("rooms", -1), expectCode: http.StatusBadRequest, expectField: "rooms"},
		{name: "capacity boundary invalid (0)", mutate: testutil.Field("capacity", 0), expectCode: http.StatusBadRequest, expectField: "capacity"},
		{name: "capacity beyond int32", mutate: testutil.Field("capacity", 4294967298), expectCode: http.StatusBadRequest, expectField: "capacity"},
		{name: "rooms beyond int32", mutate: testutil.Field("rooms", 2147483648), expectCode: http.StatusBadRequest, expectField: "rooms"},
		{name: "price boundary OK (0)", mutate: testutil.Field("price_per_night", 0), expectCode: http.StatusCreated},
		{name: "price negative", mutate: testutil.Field("price_per_night", -10.5), expectCode: http.StatusBadRequest, expectField: "price_per_night"},
		{name: "seazone_rate above 1", mutate: testutil.Field("seazone_rate", 1.5), expectCode: http.StatusBadRequest, expectField: "seazone_rate"},
		{name: "host_rate below 0", mutate: testutil.Field("host_rate", -0.1), expectCode: http.StatusBadRequest, expectField: "host_rate"},
		{name: "title max length (200)", mutate: testutil.Field("title", stringOf(200)), expectCode: http.StatusCreated},
		{name: "title too long (201)", mutate: testutil.Field("title", stringOf(201)), expectCode: http.StatusBadRequest, expectField: "title"},
		{name: "country too long", mutate: testutil.Field("country", "BRAZ"), expectCode: http.StatusBadRequest, expectField: "country"},
	}

	missing := []testCaseProperty{
		{name: "missing field: title", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest, expectField: "title"},
		{name: "missing field: address_city", mutate: testutil.Field("address_city", nil), expectCode: http.StatusBadRequest, expectField: "address_city"},
		{name: "missing field: rooms", mutate: testutil.Field("rooms", nil), expectCode: http.StatusBadRequest, expectField: "rooms"},
		{name: "missing field: price_per_night", mutate: testutil.Field("price_per_night", nil), expectCode: http.StatusBadRequest, expectField: "price_per_night"},
		{name: "missing field: owner", mutate: testutil.Field("owner", nil), expectCode: http.StatusBadRequest, expectField: "owner"},
		{name: "missing field: host", mutate: testutil.Field("host", nil), expectCode: http.StatusBadRequest, expectField: "host"},
		{name: "missing field: owner_rate", mutate: testutil.Field("owner_rate", nil), expectCode: http.StatusBadRequest, expectField: "owner_rate"},
	}

	allValidationTestCases := [][]testCaseProperty{bound, missing}

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var actual resdto.PropertyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &actual)
		s.Equal(prop.ID, actual.ID)
		s.Equal(prop.OwnerID, actual.OwnerID)
		s.Equal(prop.HostID, actual.HostID)
		s.Contains(rec.Body.String(), `"price_per_night":20.11`)
		s.Contains(rec.Body.String(), `"seazone_rate":0.1`)
		httptest.AssertLocation(s.T(), rec, url, prop.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(returnView, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertFieldError(s.T(), rec, tc.expectField)
					}
				})
			}
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		s.Run("rates do not sum to one", func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(nil, property.ErrCommissionRateSum).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
			httptest.AssertRuleError(s.T(), rec, "The sum of seazone_rate, host_rate, and owner_rate must equal 1.")
		})

		s.Run("unknown owner", func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).
				Return(nil, errs.MissingReference("owner", prop.OwnerID)).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
			body := httptest.AssertFieldError(s.T(), rec, "owner")
			s.Equal([]string{errs.MissingReferenceMessage(prop.OwnerID)}, body.Fields["owner"])
		})

		s.Run("internal server error", func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(nil, errors.New("boom")).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		})
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *PropertyHandlerTestSuite) TestGet() {
	prop := builder.NewPropertyBuilder()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), prop.ID).Return(prop.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/properties/"+prop.ID.String(), nil)

		var actual resdto.PropertyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &actual)
		s.Equal(prop.Title, actual.Title)
		s.Equal(int32(4), actual.Capacity)
	})

	s.Run("error: 404 when not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, property.ErrPropertyNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/properties/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "property not found")
	})
}

func (s *PropertyHandlerTestSuite) TestList() {
	s.Run("success: builds the filter from the query string", func() {
		city := "Rio de Janeiro"
		capacity := int32(3)
		price := decimal.RequireFromString("100")
		expected := queries.PropertyFilter{City: &city, MinCapacity: &capacity, MaxPrice: &price}
		views := []*queries.PropertyView{builder.NewPropertyBuilder().BuildView()}

		s.mockQueries.EXPECT().List(gomock.Any(), expected).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/properties?address_city=Rio+de+Janeiro&capacity=3&price_per_night=100&address_neighborhood=", nil)

		var actual []resdto.PropertyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &actual)
		s.Len(actual, 1)
	})

	s.Run("error: 400 when price_per_night is not a number", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/properties?price_per_night=cheap", nil)
		httptest.AssertFieldError(s.T(), rec, "price_per_night")
	})

	s.Run("error: 400 when capacity is not an integer", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/properties?capacity=many", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestAvailability
// ================================================================================

func (s *PropertyHandlerTestSuite) TestAvailability() {
	id := uuid.New()
	url := "/api/properties/" + id.String() + "/availability?start_date=2024-01-30&end_date=2024-02-02&guests_quantity=2"
	expected := queries.AvailabilityRequest{
		PropertyID:     id,
		StartDate:      mustParseDate(s.T(), "2024-01-30"),
		EndDate:        mustParseDate(s.T(), "2024-02-02"),
		GuestsQuantity: 2,
	}

	s.Run("success: 200 with message", func() {
		s.mockAvailability.EXPECT().Check(gomock.Any(), expected).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"message":"Available for the selected dates."}`, rec.Body.String())
	})

	s.Run("error: maps conflicts and lookups", func() {
		testCases := []struct {
			name     string
			err      error
			status   int
			message  string
			expected string
		}{
			{"overlapping stay", reservation.ErrDateRangeUnavailable, http.StatusBadRequest, "Validation failed", "The property is already booked for part of the requested date range."},
			{"too many guests", reservation.ErrCapacityExceeded, http.StatusBadRequest, "Validation failed", "The number of guests exceeds the maximum capacity of the property."},
			{"inverted dates", queries.ErrInvalidStayDates, http.StatusBadRequest, "Invalid request", "start_date must be before end_date."},
			{"unknown property", property.ErrPropertyNotFound, http.StatusNotFound, "property not found", ""},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAvailability.EXPECT().Check(gomock.Any(), expected).Return(tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
				body := httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.message)
				if tc.expected != "" {
					s.Equal([]string{tc.expected}, body.Errors)
				}
			})
		}
	})

	s.Run("error: 400 when a query parameter is missing", func() {
		for _, param := range []string{"start_date", "end_date", "guests_quantity"} {
			s.Run(param, func() {
				q := map[string]string{"start_date": "2024-01-30", "end_date": "2024-02-02", "guests_quantity": "2"}
				delete(q, param)
				path := "/api/properties/" + id.String() + "/availability?"
				for k, v := range q {
					path += k + "=" + v + "&"
				}

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil)
				httptest.AssertFieldError(s.T(), rec, param)
			})
		}
	})
}

func stringOf(n int) string {
	return strings.Repeat("a", n)
}

func mustParseDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dateonly.Parse(s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return d
}
