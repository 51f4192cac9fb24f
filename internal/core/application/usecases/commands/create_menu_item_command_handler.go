package commands

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/core/ports"
	"littlelemon/internal/pkg/errs"
)

type CreateMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     *services.AccessPolicy
}

func NewCreateMenuItemCommandHandler(uowFactory CatalogUoWFactory, policy *services.AccessPolicy) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{uowFactory: uowFactory, policy: policy}
}

func (h CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) (*catalog.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Principal(), services.ManageCatalog); err != nil {
		return nil, err
	}

	item, err := catalog.NewMenuItem(kernel.NewUUID(), cmd.Title(), cmd.Price(), cmd.Inventory(), cmd.CategoryID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = requireCategory(ctx, uow.CategoryRepository(), item.CategoryID()); err != nil {
		return nil, err
	}

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return item, nil
}

// requireCategory turns a dangling category reference into a validation
// error: the caller supplied a bad value rather than asked for a resource.
func requireCategory(ctx context.Context, repo ports.CategoryRepository, id kernel.UUID) error {
	_, err := repo.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewValueIsInvalidErrorWithCause("category", err)
	}
	return err
}
