package ports

import (
	"context"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
)

// DomainEvent is a fact recorded by an aggregate. Implementations must be
// JSON-serialisable.
type DomainEvent interface {
	EventID() kernel.UUID
	EventName() string
	AggregateID() kernel.UUID
	OccurredAt() time.Time
}

type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}
