package api

import (
	"net/http"

	reqdto "property-rental/internal/handler/dto/request"
	resdto "property-rental/internal/handler/dto/response"
	"property-rental/internal/handler/httperr"
	"property-rental/internal/usecase/commands"
	"property-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	cmds         commands.PropertyCommands
	q            queries.PropertyQueries
	availability queries.AvailabilityQueries
}

func NewPropertyHandler(cmds commands.PropertyCommands, q queries.PropertyQueries, availability queries.AvailabilityQueries) *PropertyHandler {
	return &PropertyHandler{cmds: cmds, q: q, availability: availability}
}

// @Summary Create property
// @Description Register a property. The three commission rates must sum to 1.
// @Tags properties
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePropertyRequest true "Property request"
// @Success 201 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Router /api/properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	var req reqdto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/properties/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromPropertyView(view))
}

// @Summary Get property
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 404 {object} httperr.Response
// @Router /api/properties/{id} [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPropertyView(view))
}

// @Summary List properties
// @Tags properties
// @Produce json
// @Param address_neighborhood query string false "Neighborhood contains (case-insensitive)"
// @Param address_city query string false "City contains (case-insensitive)"
// @Param capacity query int false "Minimum capacity"
// @Param price_per_night query number false "Maximum price per night"
// @Success 200 {array} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Router /api/properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
	var query reqdto.ListPropertiesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPropertyList(views))
}

// @Summary Check availability
// @Description Succeeds when the property can host the guests for the whole stay.
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Param start_date query string true "Check-in (YYYY-MM-DD)"
// @Param end_date query string true "Check-out (YYYY-MM-DD)"
// @Param guests_quantity query int true "Number of guests"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/properties/{id}/availability [get]
func (h *PropertyHandler) Availability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	req, err := query.ToRequest(id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if err := h.availability.Check(c.Request.Context(), req); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Available())
}
