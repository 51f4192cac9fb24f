package queries

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
	"littlelemon/internal/pkg/markup"
)

var ErrListMenuItemsQueryIsNotConstructed = errors.New(
	"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
)

// orderableColumns maps the public ordering names onto menu_items columns.
// Names outside this whitelist are rejected before any SQL is built.
var orderableColumns = map[string]string{
	"id":        "id",
	"title":     "title",
	"price":     "price",
	"inventory": "inventory",
	"category":  "category_id",
}

// MenuFilter narrows the menu listing. Empty fields do not filter.
type MenuFilter struct {
	// Category matches a substring of the category title.
	Category string
	// ToPrice is an inclusive upper bound on the price.
	ToPrice *kernel.Money
	// Search matches a substring of the item title after markup is stripped.
	Search string
}

type OrderingField struct {
	Column     string
	Descending bool
}

// ListMenuItemsQuery is a filtered, ordered page of the menu.
//
// Example:
//
//	query, err := NewListMenuItemsQuery(principal, MenuFilter{Search: "pasta"}, "-price,title", 1, 0)
//	page, err := handler.Handle(ctx, query)
//	prev, next := page.Links(requestURL)
type ListMenuItemsQuery struct {
	principal identity.Principal
	filter    MenuFilter
	ordering  []OrderingField
	page      int
	perPage   int

	guard guard.ConstructorGuard
}

// NewListMenuItemsQuery parses ordering as a comma separated list of field
// names, each optionally prefixed with "-" for descending order. A perPage
// of zero selects the configured default.
func NewListMenuItemsQuery(
	principal identity.Principal,
	filter MenuFilter,
	ordering string,
	page, perPage int,
) (ListMenuItemsQuery, error) {
	if page < 1 {
		return ListMenuItemsQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	if perPage < 0 {
		return ListMenuItemsQuery{}, errs.NewValueIsOutOfRangeError("perpage", perPage, 1, "unbounded")
	}

	fields, err := parseOrdering(ordering)
	if err != nil {
		return ListMenuItemsQuery{}, err
	}

	filter.Category = strings.TrimSpace(filter.Category)
	filter.Search = markup.Clean(filter.Search)

	return ListMenuItemsQuery{
		principal: principal,
		filter:    filter,
		ordering:  fields,
		page:      page,
		perPage:   perPage,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func parseOrdering(ordering string) ([]OrderingField, error) {
	var fields []OrderingField
	for _, raw := range strings.Split(ordering, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		field := OrderingField{}
		if strings.HasPrefix(name, "-") {
			field.Descending = true
			name = name[1:]
		}
		column, ok := orderableColumns[name]
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("ordering", fmt.Errorf("unknown field %q", name))
		}
		field.Column = column
		fields = append(fields, field)
	}
	return fields, nil
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

func (q ListMenuItemsQuery) Principal() identity.Principal { return q.principal }
func (q ListMenuItemsQuery) Filter() MenuFilter            { return q.filter }
func (q ListMenuItemsQuery) Ordering() []OrderingField {
	return append([]OrderingField(nil), q.ordering...)
}
func (q ListMenuItemsQuery) Page() int    { return q.page }
func (q ListMenuItemsQuery) PerPage() int { return q.perPage }

// ListMenuItemsQueryResponse is one page of the menu. Count is the number of
// matching items across all pages.
type ListMenuItemsQueryResponse struct {
	Count        int64
	Items        []MenuItemView
	Page         int
	PerPage      int
	PreviousPage *int
	NextPage     *int
}

// Links renders the previous and next page URLs by echoing every query
// parameter of requestURL and substituting the page number.
func (r ListMenuItemsQueryResponse) Links(requestURL *url.URL) (previous, next *string) {
	if r.PreviousPage != nil {
		link := PageLink(requestURL, *r.PreviousPage)
		previous = &link
	}
	if r.NextPage != nil {
		link := PageLink(requestURL, *r.NextPage)
		next = &link
	}
	return previous, next
}

func PageLink(requestURL *url.URL, page int) string {
	u := *requestURL
	params := u.Query()
	params.Set("page", strconv.Itoa(page))
	u.RawQuery = params.Encode()
	return u.String()
}
