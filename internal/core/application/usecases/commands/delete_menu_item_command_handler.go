package commands

import (
	"context"

	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/core/ports"
)

// DeleteMenuItemCommandHandler removes a menu item. Cart entries holding it
// go with it; an item that was ever ordered cannot be deleted and the
// repository reports a conflict.
type DeleteMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     *services.AccessPolicy
	cache      ports.MenuItemCache
}

func NewDeleteMenuItemCommandHandler(
	uowFactory CatalogUoWFactory,
	policy *services.AccessPolicy,
	cache ports.MenuItemCache,
) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{uowFactory: uowFactory, policy: policy, cache: cache}
}

func (h DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Principal(), services.ManageCatalog); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.MenuItemRepository().Delete(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.cache.Invalidate(ctx, cmd.MenuItemID())
	return nil
}
