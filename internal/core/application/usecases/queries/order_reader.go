package queries

import (
	"context"
	"time"

	"littlelemon/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type orderRow struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	DeliveryCrewID *uuid.UUID
	Status         string
	Total          decimal.Decimal
	PlacedAt       time.Time
}

type orderItemRow struct {
	OrderID    uuid.UUID
	MenuItemID uuid.UUID
	Title      string
	Quantity   int
	UnitPrice  decimal.Decimal
	Price      decimal.Decimal
}

func (r orderRow) view() (OrderView, error) {
	var v OrderView
	var err error
	if v.ID, err = toUUID(r.ID); err != nil {
		return OrderView{}, err
	}
	if v.CustomerID, err = toUUID(r.CustomerID); err != nil {
		return OrderView{}, err
	}
	if v.DeliveryCrewID, err = toUUIDPtr(r.DeliveryCrewID); err != nil {
		return OrderView{}, err
	}
	if v.Status, err = order.StatusFromString(r.Status); err != nil {
		return OrderView{}, err
	}
	if v.Total, err = toMoney(r.Total); err != nil {
		return OrderView{}, err
	}
	v.PlacedAt = r.PlacedAt
	v.Items = make([]OrderItemView, 0)
	return v, nil
}

func (r orderItemRow) view() (OrderItemView, error) {
	var v OrderItemView
	var err error
	if v.MenuItemID, err = toUUID(r.MenuItemID); err != nil {
		return OrderItemView{}, err
	}
	v.Title = r.Title
	v.Quantity = r.Quantity
	if v.UnitPrice, err = toMoney(r.UnitPrice); err != nil {
		return OrderItemView{}, err
	}
	if v.Price, err = toMoney(r.Price); err != nil {
		return OrderItemView{}, err
	}
	return v, nil
}

// loadOrders runs scope against the orders table and attaches the items of
// every matching order, newest orders first.
func loadOrders(ctx context.Context, db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]OrderView, error) {
	var rows []orderRow
	err := scope(db.WithContext(ctx).Table("orders")).
		Select("id, customer_id, delivery_crew_id, status, total, placed_at").
		Order("placed_at DESC, id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	orders := make([]OrderView, 0, len(rows))
	if len(rows) == 0 {
		return orders, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	index := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		v, viewErr := row.view()
		if viewErr != nil {
			return nil, viewErr
		}
		index[row.ID] = len(orders)
		ids = append(ids, row.ID)
		orders = append(orders, v)
	}

	var items []orderItemRow
	err = db.WithContext(ctx).
		Table("order_items AS i").
		Joins("JOIN menu_items AS m ON m.id = i.menu_item_id").
		Select("i.order_id, i.menu_item_id, m.title, i.quantity, i.unit_price, i.price").
		Where("i.order_id IN ?", ids).
		Order("i.order_id, i.position").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		v, viewErr := item.view()
		if viewErr != nil {
			return nil, viewErr
		}
		i := index[item.OrderID]
		orders[i].Items = append(orders[i].Items, v)
	}
	return orders, nil
}
