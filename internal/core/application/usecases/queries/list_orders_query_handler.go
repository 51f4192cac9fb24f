package queries

import (
	"context"

	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db     *gorm.DB
	policy *services.AccessPolicy
}

func NewListOrdersQueryHandler(db *gorm.DB, policy *services.AccessPolicy) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, policy: policy}
}

// Handle picks the widest scope the principal's roles allow.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	principal := query.Principal()
	if !principal.IsAuthenticated() {
		return nil, errs.NewForbiddenError(string(services.ViewOwnOrders))
	}
	userID := principal.UserID().Raw()
	roles := principal.Roles()

	var scope func(*gorm.DB) *gorm.DB
	switch {
	case h.policy.Allows(roles, services.ViewAllOrders):
		scope = func(db *gorm.DB) *gorm.DB { return db }
	case h.policy.Allows(roles, services.ViewAssignedOrders):
		scope = func(db *gorm.DB) *gorm.DB { return db.Where("delivery_crew_id = ?", userID) }
	case h.policy.Allows(roles, services.ViewOwnOrders):
		scope = func(db *gorm.DB) *gorm.DB { return db.Where("customer_id = ?", userID) }
	default:
		return nil, errs.NewForbiddenError(string(services.ViewOwnOrders))
	}

	return loadOrders(ctx, h.db, scope)
}
