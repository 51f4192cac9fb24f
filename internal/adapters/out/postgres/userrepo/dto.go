// Package userrepo persists users and their staff role memberships.
package userrepo

import (
	"littlelemon/internal/adapters/out/postgres/cartrepo"
	"littlelemon/internal/adapters/out/postgres/catalogrepo"
	"littlelemon/internal/adapters/out/postgres/orderrepo"
	"littlelemon/internal/adapters/out/postgres/pgutil"
	"littlelemon/internal/core/domain/model/identity"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID          uuid.UUID               `gorm:"type:uuid;primaryKey"`
	Subject     string                  `gorm:"type:varchar(255);not null;uniqueIndex"`
	Username    string                  `gorm:"type:varchar(150);not null;uniqueIndex"`
	Memberships []RoleMembershipDTO     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CartEntries []cartrepo.EntryDTO     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Ratings     []catalogrepo.RatingDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Orders      []orderrepo.OrderDTO    `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	Deliveries  []orderrepo.OrderDTO    `gorm:"foreignKey:DeliveryCrewID;constraint:OnDelete:RESTRICT"`
}

func (UserDTO) TableName() string {
	return "users"
}

// RoleMembershipDTO is a row of the user/role join table. Customers have
// no rows.
type RoleMembershipDTO struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role   string    `gorm:"type:varchar(32);primaryKey;index"`
}

func (RoleMembershipDTO) TableName() string {
	return "role_memberships"
}

func toDomain(dto UserDTO) (*identity.User, error) {
	id, err := pgutil.UUID(dto.ID)
	if err != nil {
		return nil, err
	}
	return identity.RestoreUser(id, dto.Subject, dto.Username), nil
}
