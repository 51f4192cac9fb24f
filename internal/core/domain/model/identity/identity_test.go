package identity_test

import (
	"errors"
	"strings"
	"testing"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	r, err := identity.RoleFromString("manager")
	require.NoError(t, err)
	assert.Equal(t, identity.Manager, r)

	r, err = identity.RoleFromString("delivery_crew")
	require.NoError(t, err)
	assert.Equal(t, identity.DeliveryCrew, r)

	for _, s := range []string{"customer", "", "admin"} {
		_, err = identity.RoleFromString(s)
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid), s)
	}
}

func TestRoleSet(t *testing.T) {
	tests := []struct {
		name      string
		roles     []identity.Role
		effective []identity.Role
		customer  bool
	}{
		{"no roles is a customer", nil, []identity.Role{identity.Customer}, true},
		{"manager", []identity.Role{identity.Manager}, []identity.Role{identity.Manager}, false},
		{"crew", []identity.Role{identity.DeliveryCrew}, []identity.Role{identity.DeliveryCrew}, false},
		{
			"both staff roles",
			[]identity.Role{identity.DeliveryCrew, identity.Manager},
			[]identity.Role{identity.Manager, identity.DeliveryCrew},
			false,
		},
		{"explicit customer stays customer", []identity.Role{identity.Customer}, []identity.Role{identity.Customer}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := identity.NewRoleSet(tt.roles...)

			assert.Equal(t, tt.effective, set.Effective())
			assert.Equal(t, tt.customer, set.IsCustomer())
			assert.Equal(t, tt.customer, set.Has(identity.Customer))
		})
	}
}

func TestNewUser(t *testing.T) {
	t.Run("should trim and keep the username", func(t *testing.T) {
		u, err := identity.NewUser(kernel.NewUUID(), "sub-1", "  mario ")

		require.NoError(t, err)
		assert.Equal(t, "mario", u.Username())
		assert.Equal(t, "sub-1", u.Subject())
		assert.NoError(t, u.Validate())
	})

	t.Run("should collect every invalid field", func(t *testing.T) {
		_, err := identity.NewUser(kernel.UUID{}, " ", strings.Repeat("x", 151))

		assert.True(t, errors.Is(err, kernel.ErrUUIDIsNotConstructed))
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var u *identity.User
		assert.Equal(t, identity.ErrUserIsNotConstructed, u.Validate())
	})
}

func TestPrincipal(t *testing.T) {
	assert.False(t, identity.Anonymous().IsAuthenticated())

	p := identity.NewPrincipal(kernel.NewUUID(), "luigi", identity.NewRoleSet(identity.Manager))
	assert.True(t, p.IsAuthenticated())
	assert.True(t, p.Roles().Has(identity.Manager))
	assert.Equal(t, "luigi", p.Username())
}
