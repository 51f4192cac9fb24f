package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrRemoveRoleMemberCommandIsNotConstructed = errors.New(
	"RemoveRoleMemberCommand must be created via NewRemoveRoleMemberCommand constructor",
)

type RemoveRoleMemberCommand struct {
	principal identity.Principal
	role      identity.Role
	userID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveRoleMemberCommand(principal identity.Principal, role identity.Role, userID kernel.UUID) (RemoveRoleMemberCommand, error) {
	if err := errors.Join(role.Validate(), userID.Validate()); err != nil {
		return RemoveRoleMemberCommand{}, err
	}
	return RemoveRoleMemberCommand{principal: principal, role: role, userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveRoleMemberCommand) Validate() error {
	return c.guard.Validate(ErrRemoveRoleMemberCommandIsNotConstructed)
}

func (c RemoveRoleMemberCommand) Principal() identity.Principal { return c.principal }
func (c RemoveRoleMemberCommand) Role() identity.Role           { return c.role }
func (c RemoveRoleMemberCommand) UserID() kernel.UUID           { return c.userID }
