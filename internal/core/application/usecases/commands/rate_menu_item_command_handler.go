package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"
)

type RateMenuItemCommandHandler struct {
	uowFactory RatingUoWFactory
	policy     *services.AccessPolicy
}

func NewRateMenuItemCommandHandler(uowFactory RatingUoWFactory, policy *services.AccessPolicy) RateMenuItemCommandHandler {
	return RateMenuItemCommandHandler{uowFactory: uowFactory, policy: policy}
}

func (h RateMenuItemCommandHandler) Handle(ctx context.Context, cmd RateMenuItemCommand) (*catalog.Rating, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Principal(), services.RateMenuItem); err != nil {
		return nil, err
	}

	rating, err := catalog.NewRating(kernel.NewUUID(), cmd.Principal().UserID(), cmd.MenuItemID(), cmd.Score())
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

	if _, err = uow.MenuItemRepository().Get(ctx, cmd.MenuItemID()); err != nil {
		return nil, err
	}

	if err = uow.RatingRepository().Add(ctx, rating); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return rating, nil
}
