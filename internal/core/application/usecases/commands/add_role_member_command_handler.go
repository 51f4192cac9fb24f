package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/services"
)

// RoleMembershipResult tells whether the membership changed. Granting a
// role the user already holds is not an error.
type RoleMembershipResult struct {
	User    *identity.User
	Changed bool
}

type AddRoleMemberCommandHandler struct {
	uowFactory UserUoWFactory
	policy     *services.AccessPolicy
}

func NewAddRoleMemberCommandHandler(uowFactory UserUoWFactory, policy *services.AccessPolicy) AddRoleMemberCommandHandler {
	return AddRoleMemberCommandHandler{uowFactory: uowFactory, policy: policy}
}

func (h AddRoleMemberCommandHandler) Handle(ctx context.Context, cmd AddRoleMemberCommand) (RoleMembershipResult, error) {
	if err := cmd.Validate(); err != nil {
		return RoleMembershipResult{}, err
	}
	if err := h.policy.Authorize(cmd.Principal(), services.ManageRoles); err != nil {
		return RoleMembershipResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RoleMembershipResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	user, err := users.GetByUsername(ctx, cmd.Username())
	if err != nil {
		return RoleMembershipResult{}, err
	}

	added, err := users.Grant(ctx, user.ID(), cmd.Role())
	if err != nil {
		return RoleMembershipResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RoleMembershipResult{}, err
	}
	return RoleMembershipResult{User: user, Changed: added}, nil
}
