package queries

import (
	"context"

	"littlelemon/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListCategoriesQueryHandler struct {
	db     *gorm.DB
	policy *services.AccessPolicy
}

func NewListCategoriesQueryHandler(db *gorm.DB, policy *services.AccessPolicy) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{db: db, policy: policy}
}

// Handle returns every category ordered by title.
func (h ListCategoriesQueryHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]CategoryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Principal(), services.ViewCatalog); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, slug, title
		FROM categories
		ORDER BY title, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]CategoryView, 0)
	for rows.Next() {
		var raw uuid.UUID
		var category CategoryView
		if err = rows.Scan(&raw, &category.Slug, &category.Title); err != nil {
			return nil, err
		}
		if category.ID, err = toUUID(raw); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}
