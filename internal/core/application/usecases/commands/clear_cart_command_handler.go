package commands

import (
	"context"

	"littlelemon/internal/core/domain/services"
)

// ClearCartCommandHandler is idempotent: clearing an empty cart succeeds
// and removes nothing.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
	policy     *services.AccessPolicy
}

func NewClearCartCommandHandler(uowFactory CartUoWFactory, policy *services.AccessPolicy) ClearCartCommandHandler {
	return ClearCartCommandHandler{uowFactory: uowFactory, policy: policy}
}

// Handle returns the number of removed entries.
func (h ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	if err := h.policy.Authorize(cmd.Principal(), services.ManageOwnCart); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.CartRepository().Clear(ctx, cmd.Principal().UserID())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return removed, nil
}
