package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var ErrListCartItemsQueryIsNotConstructed = errors.New(
	"ListCartItemsQuery must be created via NewListCartItemsQuery constructor",
)

// ListCartItemsQuery lists the caller's own cart. There is no way to read
// somebody else's cart.
type ListCartItemsQuery struct {
	principal identity.Principal

	guard guard.ConstructorGuard
}

func NewListCartItemsQuery(principal identity.Principal) ListCartItemsQuery {
	return ListCartItemsQuery{principal: principal, guard: guard.NewConstructorGuard()}
}

func (q ListCartItemsQuery) Validate() error {
	return q.guard.Validate(ErrListCartItemsQueryIsNotConstructed)
}

func (q ListCartItemsQuery) Principal() identity.Principal { return q.principal }
