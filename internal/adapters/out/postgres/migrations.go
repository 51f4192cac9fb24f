package postgres

import (
	"littlelemon/internal/adapters/out/postgres/cartrepo"
	"littlelemon/internal/adapters/out/postgres/catalogrepo"
	"littlelemon/internal/adapters/out/postgres/orderrepo"
	"littlelemon/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every persisted table, parents first.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&userrepo.RoleMembershipDTO{},
		&catalogrepo.CategoryDTO{},
		&catalogrepo.MenuItemDTO{},
		&catalogrepo.RatingDTO{},
		&cartrepo.EntryDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	}
}

// Migrate creates or updates the schema including foreign keys.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
