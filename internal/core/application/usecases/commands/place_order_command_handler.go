package commands

import (
	"context"
	"time"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"
)

// PlaceOrderCommandHandler converts the caller's cart into an order inside
// one transaction: the order, its items and the removal of the consumed
// entries commit together or not at all.
//
// Concurrent checkouts by the same user serialise on the user row lock.
// Only the entries read under that lock are removed, so an item added
// while the order is being placed stays in the cart instead of vanishing
// unpriced.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     *services.AccessPolicy
	checkout   services.Checkout
	now        func() time.Time
}

func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory, policy *services.AccessPolicy) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		checkout:   services.NewCheckout(),
		now:        time.Now,
	}
}

// Handle returns the id of the new order. Callers re-read the order for
// its details.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if err := h.policy.Authorize(cmd.Principal(), services.PlaceOrder); err != nil {
		return kernel.UUID{}, err
	}
	userID := cmd.Principal().UserID()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.UserRepository().Lock(ctx, userID); err != nil {
		return kernel.UUID{}, err
	}

	cartRepo := uow.CartRepository()
	entries, err := cartRepo.ListForUpdate(ctx, userID)
	if err != nil {
		return kernel.UUID{}, err
	}

	placed, err := h.checkout.PlaceOrder(kernel.NewUUID(), userID, h.now().UTC(), entries)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return kernel.UUID{}, err
	}

	if err = cartRepo.Remove(ctx, userID, consumedItems(entries)); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return placed.ID(), nil
}

func consumedItems(entries []*cart.Entry) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.MenuItemID())
	}
	return ids
}
