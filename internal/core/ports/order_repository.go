// Package ports defines the contracts between the ordering core and its
// adapters: repositories, the unit of work, event publishing and caching.
package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates together with their items.
type OrderRepository interface {
	// Add persists a new order and all of its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and delivery crew changes. Items are immutable
	// and never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with its items, or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with the order row locked until the transaction
	// ends, so concurrent status and assignment changes serialise.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order and cascades to its items.
	Delete(ctx context.Context, aggregate *order.Order) error
}
