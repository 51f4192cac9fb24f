package queries

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
)

// MenuItemReader loads a single menu item view. The database reader can be
// wrapped by a cache-aside decorator that shares this interface.
type MenuItemReader interface {
	GetMenuItem(ctx context.Context, id kernel.UUID) (MenuItemView, error)
}

type GormMenuItemReader struct {
	db *gorm.DB
}

func NewGormMenuItemReader(db *gorm.DB) GormMenuItemReader {
	return GormMenuItemReader{db: db}
}

func (r GormMenuItemReader) GetMenuItem(ctx context.Context, id kernel.UUID) (MenuItemView, error) {
	var row menuItemRow
	result := r.db.WithContext(ctx).
		Table("menu_items AS m").
		Joins("JOIN categories AS c ON c.id = m.category_id").
		Select(menuItemColumns).
		Where("m.id = ?", id.Raw()).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return MenuItemView{}, result.Error
	}
	if result.RowsAffected == 0 {
		return MenuItemView{}, errs.NewObjectNotFoundError("menuitem", id)
	}
	return row.view()
}

type GetMenuItemQueryHandler struct {
	reader MenuItemReader
	policy *services.AccessPolicy
}

func NewGetMenuItemQueryHandler(reader MenuItemReader, policy *services.AccessPolicy) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{reader: reader, policy: policy}
}

func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return MenuItemView{}, err
	}
	if err := h.policy.Authorize(query.Principal(), services.ViewCatalog); err != nil {
		return MenuItemView{}, err
	}

	return h.reader.GetMenuItem(ctx, query.ID())
}
