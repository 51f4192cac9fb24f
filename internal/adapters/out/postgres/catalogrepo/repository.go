package catalogrepo

import (
	"context"

	"littlelemon/internal/adapters/out/postgres/pgutil"
	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) Add(ctx context.Context, category *catalog.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	dto := CategoryDTO{ID: category.ID().Raw(), Slug: category.Slug(), Title: category.Title()}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.TranslateError(err, "slug")
	}
	return nil
}

func (r *GormCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		return nil, pgutil.NotFound(err, "category", id)
	}
	return categoryToDomain(dto)
}

type GormMenuItemRepository struct {
	db *gorm.DB
}

func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

func (r *GormMenuItemRepository) Add(ctx context.Context, item *catalog.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := menuItemFromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.TranslateError(err, "title")
	}
	return nil
}

func (r *GormMenuItemRepository) Update(ctx context.Context, item *catalog.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := menuItemFromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&MenuItemDTO{}).
		Where("id = ?", dto.ID).
		Select("Title", "Price", "Inventory", "CategoryID").
		Updates(&dto)
	if result.Error != nil {
		return pgutil.TranslateError(result.Error, "title")
	}
	if result.RowsAffected == 0 {
		return pgutil.NotFound(gorm.ErrRecordNotFound, "menu item", item.ID())
	}
	return nil
}

func (r *GormMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		return nil, pgutil.NotFound(err, "menu item", id)
	}
	return menuItemToDomain(dto)
}

// Delete removes a menu item. An item referenced by an order fails with a
// ConflictError.
func (r *GormMenuItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Raw()).Delete(&MenuItemDTO{})
	if result.Error != nil {
		return pgutil.TranslateError(result.Error, "menuitem")
	}
	if result.RowsAffected == 0 {
		return pgutil.NotFound(gorm.ErrRecordNotFound, "menu item", id)
	}
	return nil
}

type GormRatingRepository struct {
	db *gorm.DB
}

func NewGormRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

func (r *GormRatingRepository) Add(ctx context.Context, rating *catalog.Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}

	dto := RatingDTO{
		ID:         rating.ID().Raw(),
		UserID:     rating.UserID().Raw(),
		MenuItemID: rating.MenuItemID().Raw(),
		Rating:     rating.Score(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.TranslateError(err, "rating")
	}
	return nil
}
