package catalog

import (
	"errors"
	"fmt"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var (
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

	// MinPrice and MaxPrice bound a unit price; MaxPrice is exclusive.
	MinPrice = kernel.MustMoney("2.00")
	MaxPrice = kernel.MustMoney("10000.00")
)

// MenuItem is a dish on the menu. Titles are unique across the whole menu;
// that constraint is enforced by storage.
type MenuItem struct {
	id         kernel.UUID
	title      string
	price      kernel.Money
	inventory  int
	categoryID kernel.UUID

	isConstructed bool
}

func NewMenuItem(id kernel.UUID, title string, price kernel.Money, inventory int, categoryID kernel.UUID) (*MenuItem, error) {
	m := &MenuItem{isConstructed: true}
	if err := errors.Join(
		m.setID(id),
		m.setTitle(title),
		m.setPrice(price),
		m.setInventory(inventory),
		m.setCategory(categoryID),
	); err != nil {
		return nil, err
	}
	return m, nil
}

func RestoreMenuItem(id kernel.UUID, title string, price kernel.Money, inventory int, categoryID kernel.UUID) *MenuItem {
	return &MenuItem{
		id:            id,
		title:         title,
		price:         price,
		inventory:     inventory,
		categoryID:    categoryID,
		isConstructed: true,
	}
}

func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m *MenuItem) ID() kernel.UUID         { return m.id }
func (m *MenuItem) Title() string           { return m.title }
func (m *MenuItem) Price() kernel.Money     { return m.price }
func (m *MenuItem) Inventory() int          { return m.inventory }
func (m *MenuItem) CategoryID() kernel.UUID { return m.categoryID }

// PriceAfterTax is the unit price with the flat 10% tax applied.
func (m *MenuItem) PriceAfterTax() kernel.Money {
	return m.price.WithTax()
}

// MenuItemChanges is a partial update; nil fields are left untouched.
type MenuItemChanges struct {
	Title      *string
	Price      *kernel.Money
	Inventory  *int
	CategoryID *kernel.UUID
}

// Apply validates every provided field before changing any of them.
func (m *MenuItem) Apply(changes MenuItemChanges) error {
	next := *m
	var errList []error
	if changes.Title != nil {
		errList = append(errList, next.setTitle(*changes.Title))
	}
	if changes.Price != nil {
		errList = append(errList, next.setPrice(*changes.Price))
	}
	if changes.Inventory != nil {
		errList = append(errList, next.setInventory(*changes.Inventory))
	}
	if changes.CategoryID != nil {
		errList = append(errList, next.setCategory(*changes.CategoryID))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	*m = next
	return nil
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setTitle(title string) error {
	t, err := cleanTitle(title)
	if err != nil {
		return err
	}
	m.title = t
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	if price.LessThan(MinPrice) || !price.LessThan(MaxPrice) {
		return errs.NewValueIsOutOfRangeError("price", price.String(), MinPrice.String(), "9999.99")
	}
	m.price = price
	return nil
}

func (m *MenuItem) setInventory(inventory int) error {
	if inventory < 0 {
		return errs.NewValueIsInvalidErrorWithCause("inventory", fmt.Errorf("%d is negative", inventory))
	}
	m.inventory = inventory
	return nil
}

func (m *MenuItem) setCategory(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("category", err)
	}
	m.categoryID = categoryID
	return nil
}
