// Package http exposes the ordering use cases as a JSON API over echo.
package http

import (
	"log/slog"
	"net/http"

	"littlelemon/internal/adapters/out/credentials"
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/routers"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers are the use cases served over HTTP.
type Handlers struct {
	ResolvePrincipal commands.ResolvePrincipalCommandHandler

	CreateCategory   commands.CreateCategoryCommandHandler
	CreateMenuItem   commands.CreateMenuItemCommandHandler
	UpdateMenuItem   commands.UpdateMenuItemCommandHandler
	DeleteMenuItem   commands.DeleteMenuItemCommandHandler
	RateMenuItem     commands.RateMenuItemCommandHandler
	AddRoleMember    commands.AddRoleMemberCommandHandler
	RemoveRoleMember commands.RemoveRoleMemberCommandHandler
	AddCartItem      commands.AddCartItemCommandHandler
	ClearCart        commands.ClearCartCommandHandler
	PlaceOrder       commands.PlaceOrderCommandHandler
	UpdateOrder      commands.UpdateOrderCommandHandler
	DeleteOrder      commands.DeleteOrderCommandHandler

	ListCategories  queries.ListCategoriesQueryHandler
	ListMenuItems   queries.ListMenuItemsQueryHandler
	GetMenuItem     queries.GetMenuItemQueryHandler
	ListRatings     queries.ListRatingsQueryHandler
	ListRoleMembers queries.ListRoleMembersQueryHandler
	ListCartItems   queries.ListCartItemsQueryHandler
	ListOrders      queries.ListOrdersQueryHandler
	GetOrder        queries.GetOrderQueryHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h        Handlers
	verifier credentials.Verifier
	logger   *slog.Logger
	router   routers.Router
}

func NewServer(h Handlers, verifier credentials.Verifier, doc *openapi3.T, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	router, err := newRouter(doc)
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}
	return &Server{
		h:        h,
		verifier: verifier,
		logger:   logger.With("component", "HTTPServer"),
		router:   router,
	}, nil
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.Use(middleware.Recover())
	e.Use(requestLogger(s.logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	validate := s.validateRequests(s.router)
	public := []echo.MiddlewareFunc{s.authenticate, validate}
	private := []echo.MiddlewareFunc{s.authenticate, s.requireAuthentication, validate}

	api := e.Group("/api")

	api.GET("/categories", s.ListCategories, private...)
	api.POST("/categories", s.CreateCategory, private...)

	api.GET("/menu-items", s.ListMenuItems, private...)
	api.POST("/menu-items", s.CreateMenuItem, private...)
	api.GET("/menu-items/:id", s.GetMenuItem, private...)
	api.PUT("/menu-items/:id", s.ReplaceMenuItem, private...)
	api.PATCH("/menu-items/:id", s.UpdateMenuItem, private...)
	api.DELETE("/menu-items/:id", s.DeleteMenuItem, private...)

	api.GET("/ratings", s.ListRatings, public...)
	api.POST("/ratings", s.RateMenuItem, private...)

	api.GET("/groups/:group/users", s.ListGroupMembers, private...)
	api.POST("/groups/:group/users", s.AddGroupMember, private...)
	api.DELETE("/groups/:group/users/:id", s.RemoveGroupMember, private...)

	api.GET("/cart/menu-items", s.ListCart, private...)
	api.POST("/cart/menu-items", s.AddToCart, private...)
	api.DELETE("/cart/menu-items", s.ClearCart, private...)

	api.GET("/orders", s.ListOrders, private...)
	api.POST("/orders", s.PlaceOrder, private...)
	api.GET("/orders/:id", s.GetOrder, private...)
	api.PUT("/orders/:id", s.ReplaceOrder, private...)
	api.PATCH("/orders/:id", s.UpdateOrder, private...)
	api.DELETE("/orders/:id", s.DeleteOrder, private...)
}
