package queries

import (
	"strings"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models returned by the query handlers. They are plain values so that
// adapters can serialize or cache them without touching the aggregates.

type CategoryView struct {
	ID    kernel.UUID
	Slug  string
	Title string
}

type MenuItemView struct {
	ID            kernel.UUID
	Title         string
	Price         kernel.Money
	PriceAfterTax kernel.Money
	Inventory     int
	Category      CategoryView
}

type CartItemView struct {
	MenuItemID kernel.UUID
	Title      string
	Quantity   int
	UnitPrice  kernel.Money
	Price      kernel.Money
}

type OrderItemView struct {
	MenuItemID kernel.UUID
	Title      string
	Quantity   int
	UnitPrice  kernel.Money
	Price      kernel.Money
}

type OrderView struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	DeliveryCrewID *kernel.UUID
	Status         order.Status
	Total          kernel.Money
	PlacedAt       time.Time
	Items          []OrderItemView
}

type UserView struct {
	ID       kernel.UUID
	Username string
}

type RatingView struct {
	ID         kernel.UUID
	UserID     kernel.UUID
	MenuItemID kernel.UUID
	Rating     int
}

func toUUID(raw uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromRaw(raw)
}

func toUUIDPtr(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromRaw(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// toMoney rounds first: numeric columns come back as floats on some drivers.
func toMoney(d decimal.Decimal) (kernel.Money, error) {
	return kernel.NewMoney(d.Round(kernel.MoneyScale))
}

// likePattern builds a case-insensitive substring pattern for
// "LOWER(col) LIKE ? ESCAPE '\'" with the wildcards in s taken literally.
func likePattern(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(s))
	return "%" + escaped + "%"
}

const likeEscape = ` ESCAPE '\'`
