package queries

import (
	"context"
	"time"

	"littlelemon/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetOrdersSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersSummaryQueryHandler(db *gorm.DB) GetOrdersSummaryQueryHandler {
	return GetOrdersSummaryQueryHandler{db: db}
}

func (h GetOrdersSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersSummaryQuery,
) (GetOrdersSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersSummaryQueryResponse{}, err
	}

	now := query.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var summary GetOrdersSummaryQueryResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(CASE WHEN status = ? THEN 1 END) AS pending_unassigned,
			COUNT(CASE WHEN status = ? THEN 1 END) AS pending_assigned,
			COUNT(CASE WHEN status = ? AND placed_at >= ? THEN 1 END) AS completed_today
		FROM orders
	`,
		order.Pending.String(),
		order.Assigned.String(),
		order.Completed.String(), midnight,
	).Scan(&summary).Error
	if err != nil {
		return GetOrdersSummaryQueryResponse{}, err
	}
	return summary, nil
}
