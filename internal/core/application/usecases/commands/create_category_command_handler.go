package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"
)

type CreateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     *services.AccessPolicy
}

func NewCreateCategoryCommandHandler(uowFactory CatalogUoWFactory, policy *services.AccessPolicy) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{uowFactory: uowFactory, policy: policy}
}

func (h CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*catalog.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Principal(), services.ManageCatalog); err != nil {
		return nil, err
	}

	category, err := catalog.NewCategory(kernel.NewUUID(), cmd.Slug(), cmd.Title())
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

	if err = uow.CategoryRepository().Add(ctx, category); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return category, nil
}
