package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/core/ports"
)

// UpdateMenuItemCommandHandler changes a menu item and drops its cached
// copy once the change is committed. Cart entries and order items keep the
// prices they captured.
type UpdateMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     *services.AccessPolicy
	cache      ports.MenuItemCache
}

func NewUpdateMenuItemCommandHandler(
	uowFactory CatalogUoWFactory,
	policy *services.AccessPolicy,
	cache ports.MenuItemCache,
) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{uowFactory: uowFactory, policy: policy, cache: cache}
}

func (h UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) (*catalog.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Principal(), services.ManageCatalog); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items := uow.MenuItemRepository()
	item, err := items.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return nil, err
	}

	changes := cmd.Changes()
	if err = item.Apply(changes); err != nil {
		return nil, err
	}
	if changes.CategoryID != nil {
		if err = requireCategory(ctx, uow.CategoryRepository(), item.CategoryID()); err != nil {
			return nil, err
		}
	}

	if err = items.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.cache.Invalidate(ctx, item.ID())
	return item, nil
}
