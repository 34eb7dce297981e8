//go:build unit

package party_test

import (
	"strings"
	"testing"

	"property-rental/internal/domain/party"
	"property-rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContact(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		c, err := party.NewContact(party.RoleOwner, "  Maria Silva ", "maria@example.com", "+55 11 99999-0000")
		require.NoError(t, err)

		assert.Equal(t, party.RoleOwner, c.Role())
		assert.Equal(t, "Maria Silva", c.Name().String())
		assert.Equal(t, "maria@example.com", c.Email().Value())
		assert.Equal(t, "+55 11 99999-0000", c.Phone().String())
	})

	t.Run("all invalid fields are reported together", func(t *testing.T) {
		_, err := party.NewContact(party.RoleHost, "", "not-an-email", strings.Repeat("9", party.MaxPhoneLength+1))
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))

		fields, ok := errs.AsFieldErrors(err)
		require.True(t, ok)
		assert.Len(t, fields, 3)
		assert.Equal(t, []string{party.ErrInvalidEmail.Error()}, fields["email"])
	})

	t.Run("name length boundary", func(t *testing.T) {
		_, err := party.NewContact(party.RoleOwner, strings.Repeat("a", party.MaxNameLength), "a@b.co", "1")
		assert.NoError(t, err)

		_, err = party.NewContact(party.RoleOwner, strings.Repeat("a", party.MaxNameLength+1), "a@b.co", "1")
		assert.Error(t, err)
	})
}
