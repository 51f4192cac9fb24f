package order

import (
	"time"

	"littlelemon/internal/core/domain/model/kernel"
)

const (
	EventPlaced           = "order.placed"
	EventDeliveryAssigned = "order.delivery_assigned"
	EventCompleted        = "order.completed"
	EventDeleted          = "order.deleted"
)

// Event is a fact recorded by an Order. Events are drained by the unit of
// work and published only after the surrounding transaction commits.
type Event struct {
	ID             kernel.UUID  `json:"id"`
	Name           string       `json:"name"`
	OrderID        kernel.UUID  `json:"order_id"`
	CustomerID     kernel.UUID  `json:"customer_id"`
	DeliveryCrewID *kernel.UUID `json:"delivery_crew_id,omitempty"`
	Status         string       `json:"status"`
	Total          kernel.Money `json:"total"`
	At             time.Time    `json:"occurred_at"`
}

func (e Event) EventID() kernel.UUID     { return e.ID }
func (e Event) EventName() string        { return e.Name }
func (e Event) AggregateID() kernel.UUID { return e.OrderID }
func (e Event) OccurredAt() time.Time    { return e.At }
