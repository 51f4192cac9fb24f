package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrGetMenuItemQueryIsNotConstructed = errors.New(
	"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
)

type GetMenuItemQuery struct {
	principal identity.Principal
	id        kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMenuItemQuery(principal identity.Principal, id kernel.UUID) (GetMenuItemQuery, error) {
	if err := id.Validate(); err != nil {
		return GetMenuItemQuery{}, err
	}
	return GetMenuItemQuery{principal: principal, id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

func (q GetMenuItemQuery) Principal() identity.Principal { return q.principal }
func (q GetMenuItemQuery) ID() kernel.UUID               { return q.id }
