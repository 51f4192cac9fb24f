package events

import (
	"context"
	"log/slog"

	"littlelemon/internal/core/ports"
)

// LoggingPublisher records events in the application log. It stands in for
// Kafka when no broker is configured.
type LoggingPublisher struct {
	logger *slog.Logger
}

func NewLoggingPublisher(logger *slog.Logger) *LoggingPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingPublisher{logger: logger.With("component", "LoggingPublisher")}
}

func (p *LoggingPublisher) Publish(ctx context.Context, events ...ports.DomainEvent) error {
	for _, event := range events {
		p.logger.InfoContext(ctx, "domain event",
			"event", event.EventName(),
			"event_id", event.EventID().String(),
			"aggregate_id", event.AggregateID().String(),
			"occurred_at", event.OccurredAt(),
		)
	}
	return nil
}
