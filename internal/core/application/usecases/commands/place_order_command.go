package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand checks out the caller's whole cart.
type PlaceOrderCommand struct {
	principal identity.Principal

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(principal identity.Principal) PlaceOrderCommand {
	return PlaceOrderCommand{principal: principal, guard: guard.NewConstructorGuard()}
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Principal() identity.Principal { return c.principal }
