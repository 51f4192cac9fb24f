// Package catalogrepo persists categories, menu items and ratings.
package catalogrepo

import (
	"littlelemon/internal/adapters/out/postgres/cartrepo"
	"littlelemon/internal/adapters/out/postgres/orderrepo"
	"littlelemon/internal/adapters/out/postgres/pgutil"
	"littlelemon/internal/core/domain/model/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CategoryDTO struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Slug      string        `gorm:"type:varchar(255);not null;uniqueIndex"`
	Title     string        `gorm:"type:varchar(255);not null;index"`
	MenuItems []MenuItemDTO `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

// MenuItemDTO owns the foreign keys pointing at menu items: cart entries
// and ratings go with a deleted item, order items block the deletion.
type MenuItemDTO struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Title       string              `gorm:"type:varchar(255);not null;uniqueIndex"`
	Price       decimal.Decimal     `gorm:"type:numeric(6,2);not null;index"`
	Inventory   int                 `gorm:"not null"`
	CategoryID  uuid.UUID           `gorm:"type:uuid;not null;index"`
	CartEntries []cartrepo.EntryDTO `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`
	OrderItems  []orderrepo.ItemDTO `gorm:"foreignKey:MenuItemID;constraint:OnDelete:RESTRICT"`
	Ratings     []RatingDTO         `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

type RatingDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_item_score"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_item_score"`
	Rating     int       `gorm:"type:smallint;not null;uniqueIndex:idx_ratings_user_item_score"`
}

func (RatingDTO) TableName() string {
	return "ratings"
}

func categoryToDomain(dto CategoryDTO) (*catalog.Category, error) {
	id, err := pgutil.UUID(dto.ID)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreCategory(id, dto.Slug, dto.Title), nil
}

func menuItemFromDomain(item *catalog.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:         item.ID().Raw(),
		Title:      item.Title(),
		Price:      item.Price().Decimal(),
		Inventory:  item.Inventory(),
		CategoryID: item.CategoryID().Raw(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	id, err := pgutil.UUID(dto.ID)
	if err != nil {
		return nil, err
	}
	categoryID, err := pgutil.UUID(dto.CategoryID)
	if err != nil {
		return nil, err
	}
	price, err := pgutil.Money(dto.Price)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreMenuItem(id, dto.Title, price, dto.Inventory, categoryID), nil
}
