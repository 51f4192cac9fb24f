package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/services"
)

// AddCartItemCommandHandler snapshots the current menu price into a new
// cart entry. Adding an item already in the cart is a conflict, not a merge.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	policy     *services.AccessPolicy
}

func NewAddCartItemCommandHandler(uowFactory CartUoWFactory, policy *services.AccessPolicy) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{uowFactory: uowFactory, policy: policy}
}

func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (*cart.Entry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Principal(), services.ManageOwnCart); err != nil {
		return nil, err
	}
	if cmd.Quantity() <= 0 {
		return nil, cart.ErrInvalidQuantity
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := uow.MenuItemRepository().Get(ctx, cmd.MenuItemID())
	if err != nil {
		return nil, err
	}

	entry, err := cart.NewEntry(cmd.Principal().UserID(), item.ID(), cmd.Quantity(), item.Price())
	if err != nil {
		return nil, err
	}

	if err = uow.CartRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}
