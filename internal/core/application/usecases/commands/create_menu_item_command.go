package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

type CreateMenuItemCommand struct {
	principal  identity.Principal
	title      string
	price      kernel.Money
	inventory  int
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(
	principal identity.Principal,
	title string,
	price kernel.Money,
	inventory int,
	categoryID kernel.UUID,
) CreateMenuItemCommand {
	return CreateMenuItemCommand{
		principal:  principal,
		title:      title,
		price:      price,
		inventory:  inventory,
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) Principal() identity.Principal { return c.principal }
func (c CreateMenuItemCommand) Title() string                 { return c.title }
func (c CreateMenuItemCommand) Price() kernel.Money           { return c.price }
func (c CreateMenuItemCommand) Inventory() int                { return c.inventory }
func (c CreateMenuItemCommand) CategoryID() kernel.UUID       { return c.categoryID }
