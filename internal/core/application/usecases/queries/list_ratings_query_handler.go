package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListRatingsQueryHandler struct {
	db *gorm.DB
}

func NewListRatingsQueryHandler(db *gorm.DB) ListRatingsQueryHandler {
	return ListRatingsQueryHandler{db: db}
}

func (h ListRatingsQueryHandler) Handle(ctx context.Context, query ListRatingsQuery) ([]RatingView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, user_id, menu_item_id, rating
		FROM ratings
		ORDER BY menu_item_id, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make([]RatingView, 0)
	for rows.Next() {
		var id, userID, menuItemID uuid.UUID
		var rating RatingView
		if err = rows.Scan(&id, &userID, &menuItemID, &rating.Rating); err != nil {
			return nil, err
		}
		if rating.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if rating.UserID, err = toUUID(userID); err != nil {
			return nil, err
		}
		if rating.MenuItemID, err = toUUID(menuItemID); err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return ratings, nil
}
