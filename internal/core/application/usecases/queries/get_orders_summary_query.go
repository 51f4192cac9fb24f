package queries

import (
	"errors"
	"time"

	"littlelemon/internal/pkg/guard"
)

var ErrGetOrdersSummaryQueryIsNotConstructed = errors.New(
	"GetOrdersSummaryQuery must be created via NewGetOrdersSummaryQuery constructor",
)

// GetOrdersSummaryQuery counts orders by fulfilment state. It serves
// internal reporting and is not exposed to principals.
type GetOrdersSummaryQuery struct {
	now time.Time

	guard guard.ConstructorGuard
}

func NewGetOrdersSummaryQuery(now time.Time) GetOrdersSummaryQuery {
	return GetOrdersSummaryQuery{now: now, guard: guard.NewConstructorGuard()}
}

func (q GetOrdersSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersSummaryQueryIsNotConstructed)
}

func (q GetOrdersSummaryQuery) Now() time.Time { return q.now }

type GetOrdersSummaryQueryResponse struct {
	PendingUnassigned int64
	PendingAssigned   int64
	// CompletedToday counts completed orders placed since midnight of the
	// query's day, in the query time's location.
	CompletedToday int64
}
