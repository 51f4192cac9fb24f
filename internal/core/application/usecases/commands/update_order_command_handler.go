package commands

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"
)

// ErrInvalidRole is returned when the requested assignee is not a member
// of the delivery crew.
var ErrInvalidRole = errs.NewValueIsInvalidErrorWithCause(
	"delivery_crew", errors.New("user is not a delivery crew member"),
)

// UpdateOrderCommandHandler applies an assignment and a status change in
// one unit of work. Both permissions are checked before either change is
// made, and a failure of one leaves the order untouched. The assignment is
// applied first so that assigning and completing in one request works. An
// order that already has a crew member is a conflict whoever the assignee is.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     *services.AccessPolicy
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, policy *services.AccessPolicy) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{uowFactory: uowFactory, policy: policy}
}

func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	principal := cmd.Principal()
	if cmd.Replace() {
		if err := h.policy.Authorize(principal, services.AssignDelivery); err != nil {
			return nil, err
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if cmd.DeliveryCrewID() != nil {
		if err = h.policy.AuthorizeOrder(principal, services.AssignDelivery, o); err != nil {
			return nil, err
		}
	}
	if cmd.Delivered() != nil {
		if err = h.policy.AuthorizeOrder(principal, services.UpdateOrderStatus, o); err != nil {
			return nil, err
		}
	}

	if crewID := cmd.DeliveryCrewID(); crewID != nil {
		if o.DeliveryCrew() != nil {
			return nil, order.ErrAlreadyAssigned
		}
		users := uow.UserRepository()
		if _, err = users.Get(ctx, *crewID); err != nil {
			return nil, err
		}
		var roles identity.RoleSet
		if roles, err = users.Roles(ctx, *crewID); err != nil {
			return nil, err
		}
		if !roles.Has(identity.DeliveryCrew) {
			return nil, ErrInvalidRole
		}
		if err = o.AssignDeliveryCrew(*crewID); err != nil {
			return nil, err
		}
	}

	if delivered := cmd.Delivered(); delivered != nil && *delivered {
		if _, err = o.Complete(); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
