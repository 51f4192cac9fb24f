package identity

import (
	"fmt"

	"littlelemon/internal/pkg/errs"
)

type Role string

const (
	Manager      Role = "manager"
	DeliveryCrew Role = "delivery_crew"
	// Customer is implied by holding no staff role.
	Customer Role = "customer"
)

// StaffRoles are the roles that can be granted through membership.
var StaffRoles = []Role{Manager, DeliveryCrew}

// RoleFromString parses a grantable role. Customer is rejected since it
// cannot be granted.
func RoleFromString(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	switch r {
	case Manager, DeliveryCrew:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a grantable role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}

// RoleSet is the immutable set of staff roles a user holds.
type RoleSet struct {
	manager      bool
	deliveryCrew bool
}

func NewRoleSet(roles ...Role) RoleSet {
	var s RoleSet
	for _, r := range roles {
		switch r {
		case Manager:
			s.manager = true
		case DeliveryCrew:
			s.deliveryCrew = true
		case Customer:
		}
	}
	return s
}

func (s RoleSet) Has(r Role) bool {
	switch r {
	case Manager:
		return s.manager
	case DeliveryCrew:
		return s.deliveryCrew
	case Customer:
		return s.IsCustomer()
	default:
		return false
	}
}

func (s RoleSet) IsCustomer() bool {
	return !s.manager && !s.deliveryCrew
}

// Effective lists the roles used for authorization. It is never empty:
// a set without staff roles yields Customer.
func (s RoleSet) Effective() []Role {
	if s.IsCustomer() {
		return []Role{Customer}
	}
	roles := make([]Role, 0, 2)
	if s.manager {
		roles = append(roles, Manager)
	}
	if s.deliveryCrew {
		roles = append(roles, DeliveryCrew)
	}
	return roles
}
