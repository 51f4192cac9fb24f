package queries

import (
	"context"

	"littlelemon/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListCartItemsQueryHandler struct {
	db     *gorm.DB
	policy *services.AccessPolicy
}

func NewListCartItemsQueryHandler(db *gorm.DB, policy *services.AccessPolicy) ListCartItemsQueryHandler {
	return ListCartItemsQueryHandler{db: db, policy: policy}
}

// Handle returns the caller's cart in the order items were added.
func (h ListCartItemsQueryHandler) Handle(ctx context.Context, query ListCartItemsQuery) ([]CartItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Principal(), services.ManageOwnCart); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.menu_item_id,
			m.title,
			e.quantity,
			e.unit_price,
			e.price
		FROM cart_entries AS e
		JOIN menu_items AS m ON m.id = e.menu_item_id
		WHERE e.user_id = ?
		ORDER BY e.created_at, e.menu_item_id
	`, query.Principal().UserID().Raw()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]CartItemView, 0)
	for rows.Next() {
		var menuItemID uuid.UUID
		var unitPrice, price decimal.Decimal
		var item CartItemView
		if err = rows.Scan(&menuItemID, &item.Title, &item.Quantity, &unitPrice, &price); err != nil {
			return nil, err
		}
		if item.MenuItemID, err = toUUID(menuItemID); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = toMoney(unitPrice); err != nil {
			return nil, err
		}
		if item.Price, err = toMoney(price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
