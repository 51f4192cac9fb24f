package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
)

type CartRepository interface {
	// Add stores a new entry. A second entry for the same user and menu
	// item fails with a ConflictError.
	Add(ctx context.Context, entry *cart.Entry) error

	// ListForUpdate returns the user's entries ordered by insertion and
	// locks them until the transaction ends.
	ListForUpdate(ctx context.Context, userID kernel.UUID) ([]*cart.Entry, error)

	// Remove deletes exactly the given entries of the user.
	Remove(ctx context.Context, userID kernel.UUID, menuItemIDs []kernel.UUID) error

	// Clear deletes every entry of the user and reports how many went.
	Clear(ctx context.Context, userID kernel.UUID) (int64, error)
}
