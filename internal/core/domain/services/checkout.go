package services

import (
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"
)

// ErrEmptyCart is returned when checking out a cart with no entries.
var ErrEmptyCart = errs.NewValueIsInvalidErrorWithCause("cart", errors.New("cart is empty"))

// Checkout converts cart entries into an order. Each entry becomes exactly
// one order item with its quantity and prices copied verbatim.
type Checkout struct{}

func NewCheckout() Checkout {
	return Checkout{}
}

func (Checkout) PlaceOrder(orderID, customerID kernel.UUID, placedAt time.Time, entries []*cart.Entry) (*order.Order, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]order.Item, 0, len(entries))
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if !e.UserID().IsEqual(customerID) {
			return nil, errs.NewValueIsInvalidErrorWithCause("cart", errors.New("entry belongs to another user"))
		}
		item, err := order.NewItem(e.MenuItemID(), e.Quantity(), e.UnitPrice(), e.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.NewOrder(orderID, customerID, placedAt, items)
}
