// Package cartrepo persists cart entries.
package cartrepo

import (
	"time"

	"littlelemon/internal/adapters/out/postgres/pgutil"
	"littlelemon/internal/core/domain/model/cart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryDTO is keyed by (user, menu item): a user holds at most one entry
// per menu item.
type EntryDTO struct {
	UserID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;primaryKey;index"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(8,2);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt  time.Time       `gorm:"autoCreateTime:nano;not null"`
}

func (EntryDTO) TableName() string {
	return "cart_entries"
}

func fromDomain(e *cart.Entry) EntryDTO {
	return EntryDTO{
		UserID:     e.UserID().Raw(),
		MenuItemID: e.MenuItemID().Raw(),
		Quantity:   e.Quantity(),
		UnitPrice:  e.UnitPrice().Decimal(),
		Price:      e.Price().Decimal(),
	}
}

func toDomain(dto EntryDTO) (*cart.Entry, error) {
	userID, err := pgutil.UUID(dto.UserID)
	if err != nil {
		return nil, err
	}
	menuItemID, err := pgutil.UUID(dto.MenuItemID)
	if err != nil {
		return nil, err
	}
	unitPrice, err := pgutil.Money(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	price, err := pgutil.Money(dto.Price)
	if err != nil {
		return nil, err
	}
	return cart.RestoreEntry(userID, menuItemID, dto.Quantity, unitPrice, price), nil
}
