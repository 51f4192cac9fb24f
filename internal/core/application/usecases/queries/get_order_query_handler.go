package queries

import (
	"context"

	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy *services.AccessPolicy
}

func NewGetOrderQueryHandler(db *gorm.DB, policy *services.AccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: policy}
}

// Handle returns NotFound for a missing order and Forbidden for an order
// outside the principal's scope.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}
	if !query.Principal().IsAuthenticated() {
		return OrderView{}, errs.NewForbiddenError(string(services.ViewOwnOrders))
	}

	orders, err := loadOrders(ctx, h.db, func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", query.ID().Raw())
	})
	if err != nil {
		return OrderView{}, err
	}
	if len(orders) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.ID())
	}
	view := orders[0]

	scoped, err := order.RestoreOrder(view.ID, view.CustomerID, view.DeliveryCrewID, view.Status, view.Total, view.PlacedAt, nil)
	if err != nil {
		return OrderView{}, err
	}
	if !h.policy.CanAccessOrder(query.Principal(), scoped) {
		return OrderView{}, errs.NewForbiddenError("view_order")
	}
	return view, nil
}
