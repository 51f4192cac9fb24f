// Package cart holds the cart ledger line: one menu item, its quantity and
// the unit price captured when it was added.
package cart

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var (
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

	ErrInvalidQuantity = errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("must be greater than 0"))
)

// Entry is owned by exactly one user. A user has at most one entry per
// menu item; changing the quantity means removing and adding again.
type Entry struct {
	userID     kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	price      kernel.Money

	isConstructed bool
}

// NewEntry snapshots unitPrice. Later catalog price changes do not reach it.
func NewEntry(userID, menuItemID kernel.UUID, quantity int, unitPrice kernel.Money) (*Entry, error) {
	var errList []error
	errList = append(errList, userID.Validate(), menuItemID.Validate())
	if quantity <= 0 {
		errList = append(errList, ErrInvalidQuantity)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return RestoreEntry(userID, menuItemID, quantity, unitPrice, unitPrice.Times(quantity)), nil
}

func RestoreEntry(userID, menuItemID kernel.UUID, quantity int, unitPrice, price kernel.Money) *Entry {
	return &Entry{
		userID:        userID,
		menuItemID:    menuItemID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		price:         price,
		isConstructed: true,
	}
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) UserID() kernel.UUID     { return e.userID }
func (e *Entry) MenuItemID() kernel.UUID { return e.menuItemID }
func (e *Entry) Quantity() int           { return e.quantity }
func (e *Entry) UnitPrice() kernel.Money { return e.unitPrice }
func (e *Entry) Price() kernel.Money     { return e.price }

// Total sums the line prices of entries.
func Total(entries []*Entry) kernel.Money {
	total := kernel.ZeroMoney()
	for _, e := range entries {
		total = total.Add(e.price)
	}
	return total
}
