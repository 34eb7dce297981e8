package response

import (
	"property-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type PropertyStatementResponse struct {
	PropertyID        uuid.UUID `json:"property_id"`
	TotalCommission   Money     `json:"total_commission"`
	TotalReservations int64     `json:"total_reservations"`
}

type FinancialStatementResponse struct {
	TotalCommission     Money                       `json:"total_commission"`
	TotalReservations   int64                       `json:"total_reservations"`
	PropertiesStatement []PropertyStatementResponse `json:"properties_statement"`
}

func FromFinancialStatement(st *queries.FinancialStatement) *FinancialStatementResponse {
	out := &FinancialStatementResponse{
		TotalCommission:     NewMoney(st.TotalCommission),
		TotalReservations:   st.TotalReservations,
		PropertiesStatement: make([]PropertyStatementResponse, len(st.PropertiesStatement)),
	}
	for i, row := range st.PropertiesStatement {
		copyFrom(&out.PropertiesStatement[i], &row)
	}
	return out
}
