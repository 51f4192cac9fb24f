package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders visible to the principal: every order for
// managers, assigned orders for delivery crew and own orders for customers.
type ListOrdersQuery struct {
	principal identity.Principal

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(principal identity.Principal) ListOrdersQuery {
	return ListOrdersQuery{principal: principal, guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Principal() identity.Principal { return q.principal }
