package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand empties the caller's cart.
type ClearCartCommand struct {
	principal identity.Principal

	guard guard.ConstructorGuard
}

func NewClearCartCommand(principal identity.Principal) ClearCartCommand {
	return ClearCartCommand{principal: principal, guard: guard.NewConstructorGuard()}
}

func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

func (c ClearCartCommand) Principal() identity.Principal { return c.principal }
