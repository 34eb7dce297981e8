//go:build unit || e2e

package builder

import (
	"time"

	"property-rental/internal/domain/party"
	reqdto "property-rental/internal/handler/dto/request"
	"property-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type ContactBuilder struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

func NewContactBuilder() *ContactBuilder {
	return &ContactBuilder{
		ID:        uuid.New(),
		Name:      "João Souza",
		Email:     "joao@example.com",
		Phone:     "+55 21 99999-0000",
		CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ContactBuilder) With(mutate func(*ContactBuilder)) *ContactBuilder {
	mutate(b)
	return b
}

func (b *ContactBuilder) WithID(id uuid.UUID) *ContactBuilder {
	b.ID = id
	return b
}

// Build methods
func (b *ContactBuilder) BuildDomain(role party.Role) (*party.Contact, error) {
	return party.NewContact(role, b.Name, b.Email, b.Phone)
}

func (b *ContactBuilder) BuildCreateRequestDTO() reqdto.CreateContactRequest {
	return reqdto.CreateContactRequest{
		Name:  b.Name,
		Email: b.Email,
		Phone: b.Phone,
	}
}

func (b *ContactBuilder) BuildView() *queries.ContactView {
	return &queries.ContactView{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}
