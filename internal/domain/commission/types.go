package commission

import (
	"strings"

	"property-rental/internal/pkg/errs"
)

type Type string

const (
	TypeSeazone Type = "seazone"
	TypeHost    Type = "host"
	TypeOwner   Type = "owner"
)

var ErrInvalidCommissionType = errs.Mark(
	errs.New("Use type 'seazone', 'owner' or 'host'."),
	errs.ErrInvalidRequest,
)

func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidCommissionType
	}
	return t, nil
}

func (t Type) IsValid() bool {
	switch t {
	case TypeSeazone, TypeHost, TypeOwner:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	return string(t)
}

func Types() []Type {
	return []Type{TypeSeazone, TypeHost, TypeOwner}
}
