package commands

import (
	"context"

	"littlelemon/internal/core/domain/services"
)

// DeleteOrderCommandHandler removes an order and its items. Deleting an
// unknown or already deleted order fails with ObjectNotFoundError.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     *services.AccessPolicy
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, policy *services.AccessPolicy) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory, policy: policy}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Principal(), services.DeleteOrder); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	o.MarkDeleted()
	if err = orderRepo.Delete(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
