package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
)

// MenuItemCache drops cached menu item reads after a write. Failures are
// the adapter's to report; the cached copy expires on its own.
type MenuItemCache interface {
	Invalidate(ctx context.Context, id kernel.UUID)
}
