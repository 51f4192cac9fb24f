package cartrepo

import (
	"context"

	"littlelemon/internal/adapters/out/postgres/pgutil"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCartRepository implements ports.CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) Add(ctx context.Context, entry *cart.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.TranslateError(err, "menuitem")
	}
	return nil
}

func (r *GormCartRepository) ListForUpdate(ctx context.Context, userID kernel.UUID) ([]*cart.Entry, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	if err := r.db.WithContext(ctx).
		Clauses(pgutil.ForUpdate).
		Where("user_id = ?", userID.Raw()).
		Order("created_at, menu_item_id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*cart.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *GormCartRepository) Remove(ctx context.Context, userID kernel.UUID, menuItemIDs []kernel.UUID) error {
	if len(menuItemIDs) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(menuItemIDs))
	for _, id := range menuItemIDs {
		raw = append(raw, id.Raw())
	}
	return r.db.WithContext(ctx).
		Where("user_id = ? AND menu_item_id IN ?", userID.Raw(), raw).
		Delete(&EntryDTO{}).Error
}

func (r *GormCartRepository) Clear(ctx context.Context, userID kernel.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID.Raw()).Delete(&EntryDTO{})
	return result.RowsAffected, result.Error
}
