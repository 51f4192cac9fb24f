package userrepo

import (
	"context"

	"littlelemon/internal/adapters/out/postgres/pgutil"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add fails with a ConflictError when the subject or username is taken.
func (r *GormUserRepository) Add(ctx context.Context, user *identity.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := UserDTO{ID: user.ID().Raw(), Subject: user.Subject(), Username: user.Username()}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.TranslateError(err, "username")
	}
	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "user", id, "id = ?", id.Raw())
}

func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*identity.User, error) {
	return r.first(ctx, "user", username, "username = ?", username)
}

func (r *GormUserRepository) GetBySubject(ctx context.Context, subject string) (*identity.User, error) {
	return r.first(ctx, "user", subject, "subject = ?", subject)
}

func (r *GormUserRepository) first(ctx context.Context, param string, key any, query string, args ...any) (*identity.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		return nil, pgutil.NotFound(err, param, key)
	}
	return toDomain(dto)
}

func (r *GormUserRepository) Lock(ctx context.Context, id kernel.UUID) error {
	var dto UserDTO
	err := r.db.WithContext(ctx).
		Clauses(pgutil.ForUpdate).
		Select("id").
		First(&dto, "id = ?", id.Raw()).Error
	return pgutil.NotFound(err, "user", id)
}

func (r *GormUserRepository) Roles(ctx context.Context, id kernel.UUID) (identity.RoleSet, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&RoleMembershipDTO{}).
		Where("user_id = ?", id.Raw()).
		Pluck("role", &names).Error; err != nil {
		return identity.RoleSet{}, err
	}

	roles := make([]identity.Role, 0, len(names))
	for _, name := range names {
		role, err := identity.RoleFromString(name)
		if err != nil {
			return identity.RoleSet{}, err
		}
		roles = append(roles, role)
	}
	return identity.NewRoleSet(roles...), nil
}

func (r *GormUserRepository) Grant(ctx context.Context, id kernel.UUID, role identity.Role) (bool, error) {
	if err := role.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&RoleMembershipDTO{UserID: id.Raw(), Role: role.String()})
	if result.Error != nil {
		return false, pgutil.TranslateError(result.Error, "user")
	}
	return result.RowsAffected > 0, nil
}

func (r *GormUserRepository) Revoke(ctx context.Context, id kernel.UUID, role identity.Role) (bool, error) {
	if err := role.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", id.Raw(), role.String()).
		Delete(&RoleMembershipDTO{})
	return result.RowsAffected > 0, result.Error
}
