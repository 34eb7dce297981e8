package response

import (
	"time"

	"property-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type ContactResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromContactView(v *queries.ContactView) *ContactResponse {
	out := &ContactResponse{}
	copyFrom(out, v)
	return out
}

func FromContactList(items []*queries.ContactView) []*ContactResponse {
	res := make([]*ContactResponse, len(items))
	for i, it := range items {
		res[i] = FromContactView(it)
	}
	return res
}
