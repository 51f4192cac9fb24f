package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand carries a partial update. A full replacement sets
// every field of the changes.
type UpdateMenuItemCommand struct {
	principal  identity.Principal
	menuItemID kernel.UUID
	changes    catalog.MenuItemChanges

	guard guard.ConstructorGuard
}

func NewUpdateMenuItemCommand(
	principal identity.Principal,
	menuItemID kernel.UUID,
	changes catalog.MenuItemChanges,
) (UpdateMenuItemCommand, error) {
	if err := menuItemID.Validate(); err != nil {
		return UpdateMenuItemCommand{}, err
	}
	return UpdateMenuItemCommand{
		principal:  principal,
		menuItemID: menuItemID,
		changes:    changes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) Principal() identity.Principal    { return c.principal }
func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID          { return c.menuItemID }
func (c UpdateMenuItemCommand) Changes() catalog.MenuItemChanges { return c.changes }
