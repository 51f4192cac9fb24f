package order

import (
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrOrderHasNoItems = errs.NewValueIsRequiredError("items")
)

// Order is the aggregate root for a placed order. Items and total are
// fixed at placement; afterwards only the status and the delivery crew
// assignment change.
type Order struct {
	id             kernel.UUID
	customerID     kernel.UUID
	deliveryCrewID *kernel.UUID
	status         Status
	total          kernel.Money
	placedAt       time.Time
	items          []Item

	events []Event

	isConstructed bool
}

// NewOrder places a Pending, unassigned order whose total is the sum of
// the item prices. An order.placed event is recorded.
func NewOrder(id, customerID kernel.UUID, placedAt time.Time, items []Item) (*Order, error) {
	var errList []error
	errList = append(errList, id.Validate(), customerID.Validate())
	if len(items) == 0 {
		errList = append(errList, ErrOrderHasNoItems)
	}
	if placedAt.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("date"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.price)
	}

	o := &Order{
		id:            id,
		customerID:    customerID,
		status:        Pending,
		total:         total,
		placedAt:      placedAt,
		items:         append([]Item(nil), items...),
		isConstructed: true,
	}
	o.record(EventPlaced)
	return o, nil
}

// RestoreOrder rebuilds an order read from storage. The status and crew
// assignment must agree.
func RestoreOrder(
	id, customerID kernel.UUID,
	deliveryCrewID *kernel.UUID,
	status Status,
	total kernel.Money,
	placedAt time.Time,
	items []Item,
) (*Order, error) {
	if err := status.ValidateCanHaveDeliveryCrew(deliveryCrewID != nil); err != nil {
		return nil, err
	}
	return &Order{
		id:             id,
		customerID:     customerID,
		deliveryCrewID: deliveryCrewID,
		status:         status,
		total:          total,
		placedAt:       placedAt,
		items:          items,
		isConstructed:  true,
	}, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID              { return o.id }
func (o *Order) CustomerID() kernel.UUID      { return o.customerID }
func (o *Order) DeliveryCrew() *kernel.UUID   { return o.deliveryCrewID }
func (o *Order) Status() Status               { return o.status }
func (o *Order) Total() kernel.Money          { return o.total }
func (o *Order) PlacedAt() time.Time          { return o.placedAt }
func (o *Order) Items() []Item                { return append([]Item(nil), o.items...) }
func (o *Order) IsOwnedBy(u kernel.UUID) bool { return o.customerID.IsEqual(u) }

// IsAssignedTo reports whether crewID is the assigned delivery crew member.
func (o *Order) IsAssignedTo(crewID kernel.UUID) bool {
	return o.deliveryCrewID != nil && o.deliveryCrewID.IsEqual(crewID)
}

// AssignDeliveryCrew sets the delivery crew member once. A second call
// fails with ErrAlreadyAssigned and keeps the first assignee. A completed
// order stays completed.
func (o *Order) AssignDeliveryCrew(crewID kernel.UUID) error {
	if err := crewID.Validate(); err != nil {
		return err
	}
	next, err := o.status.Assign(o.deliveryCrewID != nil)
	if err != nil {
		return err
	}
	o.status = next
	o.deliveryCrewID = &crewID
	o.record(EventDeliveryAssigned)
	return nil
}

// Complete marks the order delivered. It returns false without recording
// anything when the order was already completed.
func (o *Order) Complete() (bool, error) {
	next, changed, err := o.status.Complete()
	if err != nil || !changed {
		return false, err
	}
	o.status = next
	o.record(EventCompleted)
	return true, nil
}

// MarkDeleted records the deletion event. Removal itself is up to the
// repository.
func (o *Order) MarkDeleted() {
	o.record(EventDeleted)
}

// DomainEvents returns the recorded events and clears them.
func (o *Order) DomainEvents() []Event {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) record(name string) {
	var crew *kernel.UUID
	if o.deliveryCrewID != nil {
		id := *o.deliveryCrewID
		crew = &id
	}
	o.events = append(o.events, Event{
		ID:             kernel.NewUUID(),
		Name:           name,
		OrderID:        o.id,
		CustomerID:     o.customerID,
		DeliveryCrewID: crew,
		Status:         o.status.String(),
		Total:          o.total,
		At:             time.Now().UTC(),
	})
}
