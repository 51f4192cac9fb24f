// Package commands contains the operations that change state. Every command
// is a guarded value object; its handler authorizes the caller, opens a
// unit of work, drives the aggregates and commits.
package commands

import (
	"context"

	"littlelemon/internal/core/ports"
)

// Unit of work views. Each handler asks for the narrowest set of
// repositories it needs.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// CartUoW covers cart edits, which look up the menu item for its price.
	CartUoW interface {
		TxManager
		CartRepoFactory
		MenuItemRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// OrderUoW covers placement and the order state machine.
	//
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   uow.UserRepository().Lock(ctx, userID)
	//   entries, _ := uow.CartRepository().ListForUpdate(ctx, userID)
	//   // ... build and add the order, remove the entries
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CartRepoFactory
		UserRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	CatalogUoW interface {
		TxManager
		CategoryRepoFactory
		MenuItemRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	RatingUoW interface {
		TxManager
		RatingRepoFactory
		MenuItemRepoFactory
	}

	RatingUoWFactory interface {
		Create() RatingUoW
	}

	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}
)
