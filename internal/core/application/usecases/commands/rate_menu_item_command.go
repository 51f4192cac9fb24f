package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrRateMenuItemCommandIsNotConstructed = errors.New(
	"RateMenuItemCommand must be created via NewRateMenuItemCommand constructor",
)

type RateMenuItemCommand struct {
	principal  identity.Principal
	menuItemID kernel.UUID
	score      int

	guard guard.ConstructorGuard
}

func NewRateMenuItemCommand(principal identity.Principal, menuItemID kernel.UUID, score int) (RateMenuItemCommand, error) {
	if err := menuItemID.Validate(); err != nil {
		return RateMenuItemCommand{}, err
	}
	return RateMenuItemCommand{principal: principal, menuItemID: menuItemID, score: score, guard: guard.NewConstructorGuard()}, nil
}

func (c RateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrRateMenuItemCommandIsNotConstructed)
}

func (c RateMenuItemCommand) Principal() identity.Principal { return c.principal }
func (c RateMenuItemCommand) MenuItemID() kernel.UUID       { return c.menuItemID }
func (c RateMenuItemCommand) Score() int                    { return c.score }
