package queries

import (
	"context"
	"strings"

	"littlelemon/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PageSize bounds the menu page size. Requests above Max are clamped.
type PageSize struct {
	Default int
	Max     int
}

func DefaultPageSize() PageSize {
	return PageSize{Default: 2, Max: 100}
}

// menuItemRow is the flat shape shared by the menu readers.
type menuItemRow struct {
	ID            uuid.UUID
	Title         string
	Price         decimal.Decimal
	Inventory     int
	CategoryID    uuid.UUID
	CategorySlug  string
	CategoryTitle string
}

const menuItemColumns = `
	m.id, m.title, m.price, m.inventory,
	c.id AS category_id, c.slug AS category_slug, c.title AS category_title`

func (r menuItemRow) view() (MenuItemView, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return MenuItemView{}, err
	}
	categoryID, err := toUUID(r.CategoryID)
	if err != nil {
		return MenuItemView{}, err
	}
	price, err := toMoney(r.Price)
	if err != nil {
		return MenuItemView{}, err
	}
	return MenuItemView{
		ID:            id,
		Title:         r.Title,
		Price:         price,
		PriceAfterTax: price.WithTax(),
		Inventory:     r.Inventory,
		Category:      CategoryView{ID: categoryID, Slug: r.CategorySlug, Title: r.CategoryTitle},
	}, nil
}

type ListMenuItemsQueryHandler struct {
	db       *gorm.DB
	policy   *services.AccessPolicy
	pageSize PageSize
}

func NewListMenuItemsQueryHandler(db *gorm.DB, policy *services.AccessPolicy, pageSize PageSize) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db, policy: policy, pageSize: pageSize}
}

// Handle counts the matching items and loads the requested page. Items are
// ordered by the requested fields with id as the final tie breaker, so pages
// do not overlap. A page past the end is empty, not an error.
func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) (ListMenuItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListMenuItemsQueryResponse{}, err
	}
	if err := h.policy.Authorize(query.Principal(), services.ViewCatalog); err != nil {
		return ListMenuItemsQueryResponse{}, err
	}

	perPage := query.PerPage()
	if perPage == 0 {
		perPage = h.pageSize.Default
	}
	if perPage > h.pageSize.Max {
		perPage = h.pageSize.Max
	}

	filtered := h.db.WithContext(ctx).
		Table("menu_items AS m").
		Joins("JOIN categories AS c ON c.id = m.category_id")

	filter := query.Filter()
	if filter.Category != "" {
		filtered = filtered.Where("LOWER(c.title) LIKE ?"+likeEscape, likePattern(filter.Category))
	}
	if filter.ToPrice != nil {
		filtered = filtered.Where("m.price <= ?", filter.ToPrice.Decimal())
	}
	if filter.Search != "" {
		filtered = filtered.Where("LOWER(m.title) LIKE ?"+likeEscape, likePattern(filter.Search))
	}
	filtered = filtered.Session(&gorm.Session{})

	var count int64
	if err := filtered.Count(&count).Error; err != nil {
		return ListMenuItemsQueryResponse{}, err
	}

	resp := ListMenuItemsQueryResponse{
		Count:   count,
		Items:   []MenuItemView{},
		Page:    query.Page(),
		PerPage: perPage,
	}
	if query.Page() > 1 {
		prev := query.Page() - 1
		resp.PreviousPage = &prev
	}

	// Compared by division so that huge page numbers cannot overflow the offset.
	lastPage := lastPageNumber(count, perPage)
	if int64(query.Page()) > lastPage {
		return resp, nil
	}

	var rows []menuItemRow
	err := filtered.
		Select(menuItemColumns).
		Order(orderClause(query.Ordering())).
		Offset((query.Page() - 1) * perPage).
		Limit(perPage).
		Scan(&rows).Error
	if err != nil {
		return ListMenuItemsQueryResponse{}, err
	}

	items := make([]MenuItemView, 0, len(rows))
	for _, row := range rows {
		item, viewErr := row.view()
		if viewErr != nil {
			return ListMenuItemsQueryResponse{}, viewErr
		}
		items = append(items, item)
	}

	resp.Items = items
	if int64(query.Page()) < lastPage {
		next := query.Page() + 1
		resp.NextPage = &next
	}
	return resp, nil
}

// lastPageNumber is the highest page holding at least one item, or zero
// when nothing matches.
func lastPageNumber(count int64, perPage int) int64 {
	if count == 0 {
		return 0
	}
	return (count-1)/int64(perPage) + 1
}

func orderClause(fields []OrderingField) string {
	parts := make([]string, 0, len(fields)+1)
	seenID := false
	for _, f := range fields {
		direction := " ASC"
		if f.Descending {
			direction = " DESC"
		}
		parts = append(parts, "m."+pq.QuoteIdentifier(f.Column)+direction)
		seenID = seenID || f.Column == "id"
	}
	if len(fields) == 0 {
		parts = append(parts, "m."+pq.QuoteIdentifier("title")+" ASC")
	}
	if !seenID {
		parts = append(parts, "m."+pq.QuoteIdentifier("id")+" ASC")
	}
	return strings.Join(parts, ", ")
}
