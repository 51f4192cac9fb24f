package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand puts a menu item into the caller's cart. The quantity
// is checked by the handler once the caller is known to own a cart.
type AddCartItemCommand struct {
	principal  identity.Principal
	menuItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

func NewAddCartItemCommand(principal identity.Principal, menuItemID kernel.UUID, quantity int) (AddCartItemCommand, error) {
	if err := menuItemID.Validate(); err != nil {
		return AddCartItemCommand{}, err
	}
	return AddCartItemCommand{
		principal:  principal,
		menuItemID: menuItemID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) Principal() identity.Principal { return c.principal }
func (c AddCartItemCommand) MenuItemID() kernel.UUID       { return c.menuItemID }
func (c AddCartItemCommand) Quantity() int                 { return c.quantity }
