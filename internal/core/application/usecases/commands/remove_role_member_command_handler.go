package commands

import (
	"context"

	"littlelemon/internal/core/domain/services"
)

// RemoveRoleMemberCommandHandler revokes a staff role. Revoking a role the
// user does not hold succeeds with Changed false.
type RemoveRoleMemberCommandHandler struct {
	uowFactory UserUoWFactory
	policy     *services.AccessPolicy
}

func NewRemoveRoleMemberCommandHandler(uowFactory UserUoWFactory, policy *services.AccessPolicy) RemoveRoleMemberCommandHandler {
	return RemoveRoleMemberCommandHandler{uowFactory: uowFactory, policy: policy}
}

func (h RemoveRoleMemberCommandHandler) Handle(ctx context.Context, cmd RemoveRoleMemberCommand) (RoleMembershipResult, error) {
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
	user, err := users.Get(ctx, cmd.UserID())
	if err != nil {
		return RoleMembershipResult{}, err
	}

	removed, err := users.Revoke(ctx, user.ID(), cmd.Role())
	if err != nil {
		return RoleMembershipResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RoleMembershipResult{}, err
	}
	return RoleMembershipResult{User: user, Changed: removed}, nil
}
