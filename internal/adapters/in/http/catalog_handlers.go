package http

import (
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) ListCategories(c echo.Context) error {
	categories, err := s.h.ListCategories.Handle(c.Request().Context(), queries.NewListCategoriesQuery(principalFrom(c)))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newList(mapSlice(categories, toCategoryResponse)))
}

func (s *Server) CreateCategory(c echo.Context) error {
	var req newCategoryRequest
	if err := bindBody(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd := commands.NewCreateCategoryCommand(principalFrom(c), req.Slug, req.Title)
	category, err := s.h.CreateCategory.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: "Category created", Result: fromCategory(category)})
}

// ListMenuItems handles GET /api/menu-items with the category, to_price,
// search, ordering, page and perpage query parameters.
func (s *Server) ListMenuItems(c echo.Context) error {
	var filter queries.MenuFilter
	var err error
	if filter.Category, err = queryString(c, "category"); err != nil {
		return s.fail(c, err)
	}
	if filter.Search, err = queryString(c, "search"); err != nil {
		return s.fail(c, err)
	}
	toPrice, err := queryString(c, "to_price")
	if err != nil {
		return s.fail(c, err)
	}
	if toPrice != "" {
		price, priceErr := kernel.MoneyFromString(toPrice)
		if priceErr != nil {
			return s.fail(c, priceErr)
		}
		filter.ToPrice = &price
	}
	ordering, err := queryString(c, "ordering")
	if err != nil {
		return s.fail(c, err)
	}
	page, err := queryInt(c, "page")
	if err != nil {
		return s.fail(c, err)
	}
	if page == 0 {
		page = 1
	}
	perPage, err := queryInt(c, "perpage")
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListMenuItemsQuery(principalFrom(c), filter, ordering, page, perPage)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.h.ListMenuItems.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	self := *c.Request().URL
	self.Scheme = c.Scheme()
	self.Host = c.Request().Host
	previous, next := result.Links(&self)

	return c.JSON(http.StatusOK, menuPageResponse{
		Count:    result.Count,
		Next:     next,
		Previous: previous,
		Result:   mapSlice(result.Items, toMenuItemResponse),
	})
}

func (s *Server) GetMenuItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetMenuItemQuery(principalFrom(c), id)
	if err != nil {
		return s.fail(c, err)
	}
	item, err := s.h.GetMenuItem.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toMenuItemResponse(item))
}

func (s *Server) CreateMenuItem(c echo.Context) error {
	var req menuItemRequest
	if err := bindBody(c, &req); err != nil {
		return s.fail(c, err)
	}
	changes, err := req.changes(true)
	if err != nil {
		return s.fail(c, err)
	}

	cmd := commands.NewCreateMenuItemCommand(
		principalFrom(c), *changes.Title, *changes.Price, *changes.Inventory, *changes.CategoryID,
	)
	item, err := s.h.CreateMenuItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: "Menu item created", Result: fromMenuItem(item)})
}

// ReplaceMenuItem is PUT: every field must be given.
func (s *Server) ReplaceMenuItem(c echo.Context) error {
	return s.updateMenuItem(c, true)
}

// UpdateMenuItem is PATCH: absent fields are left unchanged.
func (s *Server) UpdateMenuItem(c echo.Context) error {
	return s.updateMenuItem(c, false)
}

func (s *Server) updateMenuItem(c echo.Context, replace bool) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var req menuItemRequest
	if err = bindBody(c, &req); err != nil {
		return s.fail(c, err)
	}
	changes, err := req.changes(replace)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(principalFrom(c), id, changes)
	if err != nil {
		return s.fail(c, err)
	}
	item, err := s.h.UpdateMenuItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Menu item updated", Result: fromMenuItem(item)})
}

func (s *Server) DeleteMenuItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewDeleteMenuItemCommand(principalFrom(c), id)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.DeleteMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r menuItemRequest) changes(requireAll bool) (catalog.MenuItemChanges, error) {
	if requireAll {
		switch {
		case r.Title == nil:
			return catalog.MenuItemChanges{}, errs.NewValueIsRequiredError("title")
		case r.Price == nil:
			return catalog.MenuItemChanges{}, errs.NewValueIsRequiredError("price")
		case r.Inventory == nil:
			return catalog.MenuItemChanges{}, errs.NewValueIsRequiredError("inventory")
		case r.CategoryID == nil:
			return catalog.MenuItemChanges{}, errs.NewValueIsRequiredError("category_id")
		}
	}

	changes := catalog.MenuItemChanges{Title: r.Title, Inventory: r.Inventory}
	if r.Price != nil {
		price, err := kernel.NewMoney(*r.Price)
		if err != nil {
			return catalog.MenuItemChanges{}, err
		}
		changes.Price = &price
	}
	if r.CategoryID != nil {
		categoryID, err := kernel.UUIDFromRaw(*r.CategoryID)
		if err != nil {
			return catalog.MenuItemChanges{}, err
		}
		changes.CategoryID = &categoryID
	}
	return changes, nil
}

func (s *Server) ListRatings(c echo.Context) error {
	ratings, err := s.h.ListRatings.Handle(c.Request().Context(), queries.NewListRatingsQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newList(mapSlice(ratings, toRatingResponse)))
}

func (s *Server) RateMenuItem(c echo.Context) error {
	var req ratingRequest
	if err := bindBody(c, &req); err != nil {
		return s.fail(c, err)
	}
	menuItemID, err := kernel.UUIDFromRaw(req.MenuItemID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRateMenuItemCommand(principalFrom(c), menuItemID, req.Rating)
	if err != nil {
		return s.fail(c, err)
	}
	rating, err := s.h.RateMenuItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: "Rating added", Result: fromRating(rating)})
}
