package api

import (
	"net/http"

	reqdto "property-rental/internal/handler/dto/request"
	resdto "property-rental/internal/handler/dto/response"
	"property-rental/internal/handler/httperr"
	"property-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FinancialHandler struct {
	q queries.FinancialQueries
}

func NewFinancialHandler(q queries.FinancialQueries) *FinancialHandler {
	return &FinancialHandler{q: q}
}

// @Summary Commission statement
// @Description Totals of one commission table per property, optionally for a single month.
// @Tags financial
// @Produce json
// @Param type query string true "seazone, owner or host"
// @Param year query int false "Year (requires month)"
// @Param month query int false "Month 1-12 (requires year)"
// @Success 200 {object} resdto.FinancialStatementResponse
// @Failure 400 {object} httperr.Response
// @Router /api/financial/commissions [get]
func (h *FinancialHandler) Aggregate(c *gin.Context) {
	var query reqdto.FinancialQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	st, err := h.q.Aggregate(c.Request.Context(), query.Type, query.Year, query.Month)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFinancialStatement(st))
}
