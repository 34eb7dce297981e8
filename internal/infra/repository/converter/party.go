package converter

import (
	"property-rental/internal/domain/party"
	sqlc "property-rental/internal/infra/sqlc/generated"
)

func OwnerToInfra(c *party.Contact) sqlc.CreateOwnerParams {
	return sqlc.CreateOwnerParams{
		Name:  c.Name().String(),
		Email: c.Email().Value(),
		Phone: c.Phone().String(),
	}
}

func HostToInfra(c *party.Contact) sqlc.CreateHostParams {
	return sqlc.CreateHostParams{
		Name:  c.Name().String(),
		Email: c.Email().Value(),
		Phone: c.Phone().String(),
	}
}
