package queries

import (
	"context"

	"littlelemon/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListRoleMembersQueryHandler struct {
	db     *gorm.DB
	policy *services.AccessPolicy
}

func NewListRoleMembersQueryHandler(db *gorm.DB, policy *services.AccessPolicy) ListRoleMembersQueryHandler {
	return ListRoleMembersQueryHandler{db: db, policy: policy}
}

func (h ListRoleMembersQueryHandler) Handle(ctx context.Context, query ListRoleMembersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Principal(), services.ManageRoles); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT u.id, u.username
		FROM users AS u
		JOIN role_memberships AS r ON r.user_id = u.id
		WHERE r.role = ?
		ORDER BY u.username
	`, query.Role().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]UserView, 0)
	for rows.Next() {
		var raw uuid.UUID
		var user UserView
		if err = rows.Scan(&raw, &user.Username); err != nil {
			return nil, err
		}
		if user.ID, err = toUUID(raw); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}
