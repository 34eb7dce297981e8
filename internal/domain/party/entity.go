package party

import (
	"property-rental/internal/pkg/errs"
)

type Role string

const (
	RoleOwner Role = "owner"
	RoleHost  Role = "host"
)

func (r Role) String() string {
	return string(r)
}

// Contact is the registration data shared by owners and hosts.
type Contact struct {
	role  Role
	name  Name
	email Email
	phone Phone
}

// NewContact validates every field and reports all failures together.
func NewContact(role Role, name, email, phone string) (*Contact, error) {
	fe := errs.NewFieldErrors()

	n, err := NewName(name)
	if err != nil {
		fe.Add("name", err.Error())
	}
	e, err := NewEmail(email)
	if err != nil {
		fe.Add("email", err.Error())
	}
	p, err := NewPhone(phone)
	if err != nil {
		fe.Add("phone", err.Error())
	}
	if err := fe.Err(); err != nil {
		return nil, err
	}

	return &Contact{role: role, name: n, email: e, phone: p}, nil
}

func (c *Contact) Role() Role   { return c.role }
func (c *Contact) Name() Name   { return c.name }
func (c *Contact) Email() Email { return c.email }
func (c *Contact) Phone() Phone { return c.phone }
