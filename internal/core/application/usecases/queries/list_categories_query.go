package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var ErrListCategoriesQueryIsNotConstructed = errors.New(
	"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
)

type ListCategoriesQuery struct {
	principal identity.Principal

	guard guard.ConstructorGuard
}

func NewListCategoriesQuery(principal identity.Principal) ListCategoriesQuery {
	return ListCategoriesQuery{principal: principal, guard: guard.NewConstructorGuard()}
}

func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}

func (q ListCategoriesQuery) Principal() identity.Principal { return q.principal }
