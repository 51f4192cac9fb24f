package http

import (
	"strings"
	"time"

	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response bodies. List endpoints answer {count, result}; mutations answer
// {message, result}; errors answer {message}.

type errorResponse struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
	Result  any    `json:"result,omitempty"`
}

type listResponse[T any] struct {
	Count  int `json:"count"`
	Result []T `json:"result"`
}

func newList[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Count: len(items), Result: items}
}

type menuPageResponse struct {
	Count    int64              `json:"count"`
	Next     *string            `json:"next"`
	Previous *string            `json:"previous"`
	Result   []menuItemResponse `json:"result"`
}

type categoryResponse struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

type menuItemResponse struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Price         kernel.Money     `json:"price"`
	PriceAfterTax kernel.Money     `json:"price_after_tax"`
	Inventory     int              `json:"inventory"`
	Category      categoryResponse `json:"category"`
}

type ratingResponse struct {
	ID         string `json:"id"`
	User       string `json:"user"`
	MenuItemID string `json:"menuitem_id"`
	Rating     int    `json:"rating"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type cartItemResponse struct {
	MenuItemID string       `json:"menuitem_id"`
	Title      string       `json:"title,omitempty"`
	Quantity   int          `json:"quantity"`
	UnitPrice  kernel.Money `json:"unit_price"`
	Price      kernel.Money `json:"price"`
}

type orderItemResponse struct {
	MenuItemID string       `json:"menuitem_id"`
	Title      string       `json:"title,omitempty"`
	Quantity   int          `json:"quantity"`
	UnitPrice  kernel.Money `json:"unit_price"`
	Price      kernel.Money `json:"price"`
}

type orderResponse struct {
	ID           string              `json:"id"`
	User         string              `json:"user"`
	DeliveryCrew *string             `json:"delivery_crew"`
	Status       bool                `json:"status"`
	State        string              `json:"state"`
	Total        kernel.Money        `json:"total"`
	Date         time.Time           `json:"date"`
	Items        []orderItemResponse `json:"order_items"`
}

type placedOrderResponse struct {
	ID string `json:"id"`
}

// Request bodies. Optional fields are pointers so that PATCH can tell an
// absent field from a zero value.

type newCategoryRequest struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

type menuItemRequest struct {
	Title      *string          `json:"title"`
	Price      *decimal.Decimal `json:"price"`
	Inventory  *int             `json:"inventory"`
	CategoryID *uuid.UUID       `json:"category_id"`
}

type ratingRequest struct {
	MenuItemID uuid.UUID `json:"menuitem_id"`
	Rating     int       `json:"rating"`
}

type groupMemberRequest struct {
	Username string `json:"username"`
}

type cartItemRequest struct {
	MenuItemID uuid.UUID `json:"menuitem_id"`
	Quantity   int       `json:"quantity"`
}

type orderUpdateRequest struct {
	Status       *bool      `json:"status"`
	DeliveryCrew *uuid.UUID `json:"delivery_crew"`
}

func toCategoryResponse(v queries.CategoryView) categoryResponse {
	return categoryResponse{ID: v.ID.String(), Slug: v.Slug, Title: v.Title}
}

func fromCategory(c *catalog.Category) categoryResponse {
	return categoryResponse{ID: c.ID().String(), Slug: c.Slug(), Title: c.Title()}
}

func toMenuItemResponse(v queries.MenuItemView) menuItemResponse {
	return menuItemResponse{
		ID:            v.ID.String(),
		Title:         v.Title,
		Price:         v.Price,
		PriceAfterTax: v.PriceAfterTax,
		Inventory:     v.Inventory,
		Category:      toCategoryResponse(v.Category),
	}
}

// menuItemSummary is the mutation result; the category is referenced by id.
type menuItemSummary struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Price         kernel.Money `json:"price"`
	PriceAfterTax kernel.Money `json:"price_after_tax"`
	Inventory     int          `json:"inventory"`
	CategoryID    string       `json:"category_id"`
}

func fromMenuItem(m *catalog.MenuItem) menuItemSummary {
	return menuItemSummary{
		ID:            m.ID().String(),
		Title:         m.Title(),
		Price:         m.Price(),
		PriceAfterTax: m.PriceAfterTax(),
		Inventory:     m.Inventory(),
		CategoryID:    m.CategoryID().String(),
	}
}

func toRatingResponse(v queries.RatingView) ratingResponse {
	return ratingResponse{ID: v.ID.String(), User: v.UserID.String(), MenuItemID: v.MenuItemID.String(), Rating: v.Rating}
}

func fromRating(r *catalog.Rating) ratingResponse {
	return ratingResponse{
		ID:         r.ID().String(),
		User:       r.UserID().String(),
		MenuItemID: r.MenuItemID().String(),
		Rating:     r.Score(),
	}
}

func toUserResponse(v queries.UserView) userResponse {
	return userResponse{ID: v.ID.String(), Username: v.Username}
}

func fromUser(u *identity.User) userResponse {
	return userResponse{ID: u.ID().String(), Username: u.Username()}
}

func toCartItemResponse(v queries.CartItemView) cartItemResponse {
	return cartItemResponse{
		MenuItemID: v.MenuItemID.String(),
		Title:      v.Title,
		Quantity:   v.Quantity,
		UnitPrice:  v.UnitPrice,
		Price:      v.Price,
	}
}

func stateName(s order.Status) string {
	return strings.ToLower(s.String())
}

func toOrderResponse(v queries.OrderView) orderResponse {
	items := make([]orderItemResponse, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, orderItemResponse{
			MenuItemID: item.MenuItemID.String(),
			Title:      item.Title,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Price:      item.Price,
		})
	}
	return orderResponse{
		ID:           v.ID.String(),
		User:         v.CustomerID.String(),
		DeliveryCrew: uuidString(v.DeliveryCrewID),
		Status:       v.Status.IsCompleted(),
		State:        stateName(v.Status),
		Total:        v.Total,
		Date:         v.PlacedAt,
		Items:        items,
	}
}

func fromOrder(o *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, orderItemResponse{
			MenuItemID: item.MenuItemID().String(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			Price:      item.Price(),
		})
	}
	return orderResponse{
		ID:           o.ID().String(),
		User:         o.CustomerID().String(),
		DeliveryCrew: uuidString(o.DeliveryCrew()),
		Status:       o.Status().IsCompleted(),
		State:        stateName(o.Status()),
		Total:        o.Total(),
		Date:         o.PlacedAt(),
		Items:        items,
	}
}

func uuidString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
