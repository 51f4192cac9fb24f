package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
)

// UserRepository stores users and their staff role memberships.
type UserRepository interface {
	Add(ctx context.Context, user *identity.User) error
	Get(ctx context.Context, id kernel.UUID) (*identity.User, error)
	GetByUsername(ctx context.Context, username string) (*identity.User, error)
	GetBySubject(ctx context.Context, subject string) (*identity.User, error)

	// Lock takes a row lock on the user until the transaction ends. Order
	// placement uses it to serialise checkouts of the same cart.
	Lock(ctx context.Context, id kernel.UUID) error

	Roles(ctx context.Context, id kernel.UUID) (identity.RoleSet, error)

	// Grant and Revoke report whether membership actually changed.
	Grant(ctx context.Context, id kernel.UUID, role identity.Role) (bool, error)
	Revoke(ctx context.Context, id kernel.UUID, role identity.Role) (bool, error)
}
