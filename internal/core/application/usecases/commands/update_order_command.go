package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand changes an order's status and/or its delivery crew.
// Replace marks a full update (PUT), which only managers may issue.
// Delivered false is accepted and changes nothing: a completed order
// never goes back to pending.
type UpdateOrderCommand struct {
	principal      identity.Principal
	orderID        kernel.UUID
	delivered      *bool
	deliveryCrewID *kernel.UUID
	replace        bool

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(
	principal identity.Principal,
	orderID kernel.UUID,
	delivered *bool,
	deliveryCrewID *kernel.UUID,
	replace bool,
) (UpdateOrderCommand, error) {
	var errList []error
	errList = append(errList, orderID.Validate())
	if delivered == nil && deliveryCrewID == nil {
		errList = append(errList, errs.NewValueIsRequiredError("status or delivery_crew"))
	}
	if deliveryCrewID != nil {
		errList = append(errList, deliveryCrewID.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		principal:      principal,
		orderID:        orderID,
		delivered:      delivered,
		deliveryCrewID: deliveryCrewID,
		replace:        replace,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) Principal() identity.Principal { return c.principal }
func (c UpdateOrderCommand) OrderID() kernel.UUID          { return c.orderID }
func (c UpdateOrderCommand) Delivered() *bool              { return c.delivered }
func (c UpdateOrderCommand) DeliveryCrewID() *kernel.UUID  { return c.deliveryCrewID }
func (c UpdateOrderCommand) Replace() bool                 { return c.replace }
