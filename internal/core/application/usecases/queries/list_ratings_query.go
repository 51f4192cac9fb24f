package queries

import (
	"errors"

	"littlelemon/internal/pkg/guard"
)

var ErrListRatingsQueryIsNotConstructed = errors.New(
	"ListRatingsQuery must be created via NewListRatingsQuery constructor",
)

// ListRatingsQuery lists every rating. Ratings are public, so the query
// carries no principal.
type ListRatingsQuery struct {
	guard guard.ConstructorGuard
}

func NewListRatingsQuery() ListRatingsQuery {
	return ListRatingsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListRatingsQuery) Validate() error {
	return q.guard.Validate(ErrListRatingsQueryIsNotConstructed)
}
