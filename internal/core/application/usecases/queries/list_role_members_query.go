package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var ErrListRoleMembersQueryIsNotConstructed = errors.New(
	"ListRoleMembersQuery must be created via NewListRoleMembersQuery constructor",
)

type ListRoleMembersQuery struct {
	principal identity.Principal
	role      identity.Role

	guard guard.ConstructorGuard
}

func NewListRoleMembersQuery(principal identity.Principal, role identity.Role) (ListRoleMembersQuery, error) {
	if err := role.Validate(); err != nil {
		return ListRoleMembersQuery{}, err
	}
	return ListRoleMembersQuery{principal: principal, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (q ListRoleMembersQuery) Validate() error {
	return q.guard.Validate(ErrListRoleMembersQueryIsNotConstructed)
}

func (q ListRoleMembersQuery) Principal() identity.Principal { return q.principal }
func (q ListRoleMembersQuery) Role() identity.Role           { return q.role }
