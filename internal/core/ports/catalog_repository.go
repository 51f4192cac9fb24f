package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
)

type CategoryRepository interface {
	// Add fails with a ConflictError when the slug is taken.
	Add(ctx context.Context, category *catalog.Category) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Category, error)
}

type MenuItemRepository interface {
	// Add and Update fail with a ConflictError when the title is taken.
	Add(ctx context.Context, item *catalog.MenuItem) error
	Update(ctx context.Context, item *catalog.MenuItem) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

type RatingRepository interface {
	// Add fails with a ConflictError when the user already gave this
	// score to this menu item.
	Add(ctx context.Context, rating *catalog.Rating) error
}
