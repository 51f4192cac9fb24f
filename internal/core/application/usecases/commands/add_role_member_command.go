package commands

import (
	"errors"
	"strings"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrAddRoleMemberCommandIsNotConstructed = errors.New(
	"AddRoleMemberCommand must be created via NewAddRoleMemberCommand constructor",
)

// AddRoleMemberCommand grants a staff role to the user with the given
// username.
type AddRoleMemberCommand struct {
	principal identity.Principal
	role      identity.Role
	username  string

	guard guard.ConstructorGuard
}

func NewAddRoleMemberCommand(principal identity.Principal, role identity.Role, username string) (AddRoleMemberCommand, error) {
	username = strings.TrimSpace(username)
	var errList []error
	errList = append(errList, role.Validate())
	if username == "" {
		errList = append(errList, errs.NewValueIsRequiredError("username"))
	}
	if err := errors.Join(errList...); err != nil {
		return AddRoleMemberCommand{}, err
	}
	return AddRoleMemberCommand{principal: principal, role: role, username: username, guard: guard.NewConstructorGuard()}, nil
}

func (c AddRoleMemberCommand) Validate() error {
	return c.guard.Validate(ErrAddRoleMemberCommandIsNotConstructed)
}

func (c AddRoleMemberCommand) Principal() identity.Principal { return c.principal }
func (c AddRoleMemberCommand) Role() identity.Role           { return c.role }
func (c AddRoleMemberCommand) Username() string              { return c.username }
