package order

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

// Item is an immutable line of a placed order. Its prices are copied from
// the cart entry it replaced and never follow the live menu.
type Item struct {
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	price      kernel.Money
}

func NewItem(menuItemID kernel.UUID, quantity int, unitPrice, price kernel.Money) (Item, error) {
	var errList []error
	errList = append(errList, menuItemID.Validate())
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return Item{}, err
	}
	return Item{menuItemID: menuItemID, quantity: quantity, unitPrice: unitPrice, price: price}, nil
}

func (i Item) MenuItemID() kernel.UUID { return i.menuItemID }
func (i Item) Quantity() int           { return i.quantity }
func (i Item) UnitPrice() kernel.Money { return i.unitPrice }
func (i Item) Price() kernel.Money     { return i.price }
