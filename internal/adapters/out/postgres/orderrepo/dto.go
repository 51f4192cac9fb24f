// Package orderrepo persists order aggregates and their item snapshots.
package orderrepo

import (
	"time"

	"littlelemon/internal/adapters/out/postgres/pgutil"
	"littlelemon/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table. Items are removed with their order.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeliveryCrewID *uuid.UUID      `gorm:"type:uuid;index"`
	Status         string          `gorm:"type:varchar(16);not null;index"`
	Total          decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	PlacedAt       time.Time       `gorm:"not null;index"`
	Items          []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is an immutable order line. Its menu item reference keeps the
// menu item from being deleted while any order mentions it.
type ItemDTO struct {
	OrderID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;primaryKey;index"`
	Position   int             `gorm:"not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(8,2);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Raw()
	items := make([]ItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, ItemDTO{
			OrderID:    orderID,
			MenuItemID: item.MenuItemID().Raw(),
			Position:   i,
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Decimal(),
			Price:      item.Price().Decimal(),
		})
	}

	return OrderDTO{
		ID:             orderID,
		CustomerID:     o.CustomerID().Raw(),
		DeliveryCrewID: pgutil.RawPtr(o.DeliveryCrew()),
		Status:         o.Status().String(),
		Total:          o.Total().Decimal(),
		PlacedAt:       o.PlacedAt().UTC(),
		Items:          items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := pgutil.UUID(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := pgutil.UUID(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	crewID, err := pgutil.UUIDPtr(dto.DeliveryCrewID)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	total, err := pgutil.Money(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, crewID, status, total, dto.PlacedAt, items)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	menuItemID, err := pgutil.UUID(dto.MenuItemID)
	if err != nil {
		return order.Item{}, err
	}
	unitPrice, err := pgutil.Money(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}
	price, err := pgutil.Money(dto.Price)
	if err != nil {
		return order.Item{}, err
	}
	return order.NewItem(menuItemID, dto.Quantity, unitPrice, price)
}
