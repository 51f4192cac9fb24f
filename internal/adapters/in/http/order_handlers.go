package http

import (
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func (s *Server) ListOrders(c echo.Context) error {
	orders, err := s.h.ListOrders.Handle(c.Request().Context(), queries.NewListOrdersQuery(principalFrom(c)))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newList(mapSlice(orders, toOrderResponse)))
}

// PlaceOrder turns the caller's cart into an order. The body is ignored.
func (s *Server) PlaceOrder(c echo.Context) error {
	id, err := s.h.PlaceOrder.Handle(c.Request().Context(), commands.NewPlaceOrderCommand(principalFrom(c)))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, messageResponse{
		Message: "Order placed",
		Result:  placedOrderResponse{ID: id.String()},
	})
}

func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetOrderQuery(principalFrom(c), id)
	if err != nil {
		return s.fail(c, err)
	}
	o, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// ReplaceOrder is PUT, reserved for managers.
func (s *Server) ReplaceOrder(c echo.Context) error {
	return s.updateOrder(c, true)
}

// UpdateOrder is PATCH, open to managers and the assigned crew member.
func (s *Server) UpdateOrder(c echo.Context) error {
	return s.updateOrder(c, false)
}

func (s *Server) updateOrder(c echo.Context, replace bool) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var req orderUpdateRequest
	if err = bindBody(c, &req); err != nil {
		return s.fail(c, err)
	}

	var crewID *kernel.UUID
	if req.DeliveryCrew != nil {
		parsed, parseErr := kernel.UUIDFromRaw(*req.DeliveryCrew)
		if parseErr != nil {
			return s.fail(c, parseErr)
		}
		crewID = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(principalFrom(c), id, req.Status, crewID, replace)
	if err != nil {
		return s.fail(c, err)
	}
	o, err := s.h.UpdateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Order updated", Result: fromOrder(o)})
}

func (s *Server) DeleteOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewDeleteOrderCommand(principalFrom(c), id)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
