package http

import (
	"fmt"
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func (s *Server) ListCart(c echo.Context) error {
	items, err := s.h.ListCartItems.Handle(c.Request().Context(), queries.NewListCartItemsQuery(principalFrom(c)))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newList(mapSlice(items, toCartItemResponse)))
}

func (s *Server) AddToCart(c echo.Context) error {
	var req cartItemRequest
	if err := bindBody(c, &req); err != nil {
		return s.fail(c, err)
	}
	menuItemID, err := kernel.UUIDFromRaw(req.MenuItemID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAddCartItemCommand(principalFrom(c), menuItemID, req.Quantity)
	if err != nil {
		return s.fail(c, err)
	}
	entry, err := s.h.AddCartItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, messageResponse{
		Message: "Added menu items to cart successfully",
		Result: cartItemResponse{
			MenuItemID: entry.MenuItemID().String(),
			Quantity:   entry.Quantity(),
			UnitPrice:  entry.UnitPrice(),
			Price:      entry.Price(),
		},
	})
}

func (s *Server) ClearCart(c echo.Context) error {
	removed, err := s.h.ClearCart.Handle(c.Request().Context(), commands.NewClearCartCommand(principalFrom(c)))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("Removed %d menu items from cart", removed)})
}
