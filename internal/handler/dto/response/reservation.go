package response

import (
	"time"

	"property-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID                uuid.UUID       `json:"id"`
	Property          PropertySummary `json:"property"`
	Owner             ContactResponse `json:"owner"`
	Host              ContactResponse `json:"host"`
	StartDate         Date            `json:"start_date"`
	EndDate           Date            `json:"end_date"`
	ClientName        string          `json:"client_name"`
	ClientEmail       string          `json:"client_email"`
	GuestsQuantity    int32           `json:"guests_quantity"`
	TotalPrice        Money           `json:"total_price"`
	Status            string          `json:"status"`
	SeazoneCommission *Money          `json:"seazone_commission"`
	HostCommission    *Money          `json:"host_commission"`
	OwnerCommission   *Money          `json:"owner_commission"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	out := &ReservationResponse{}
	copyFrom(out, v)
	copyFrom(&out.Property, &v.Property)
	copyFrom(&out.Owner, &v.Owner)
	copyFrom(&out.Host, &v.Host)
	return out
}

func FromReservationList(items []*queries.ReservationView) []*ReservationResponse {
	res := make([]*ReservationResponse, len(items))
	for i, it := range items {
		res[i] = FromReservationView(it)
	}
	return res
}
