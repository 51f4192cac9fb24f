package commands

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

// ResolvePrincipalCommandHandler loads the caller's role set once per
// request from the membership table, which managers edit at runtime.
type ResolvePrincipalCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewResolvePrincipalCommandHandler(uowFactory UserUoWFactory) ResolvePrincipalCommandHandler {
	return ResolvePrincipalCommandHandler{uowFactory: uowFactory}
}

func (h ResolvePrincipalCommandHandler) Handle(ctx context.Context, cmd ResolvePrincipalCommand) (identity.Principal, error) {
	if err := cmd.Validate(); err != nil {
		return identity.Anonymous(), err
	}

	principal, err := h.resolve(ctx, cmd)
	if errors.Is(err, errs.ErrConflict) {
		// A concurrent first request provisioned the same subject.
		principal, err = h.resolve(ctx, cmd)
	}
	return principal, err
}

func (h ResolvePrincipalCommandHandler) resolve(ctx context.Context, cmd ResolvePrincipalCommand) (identity.Principal, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return identity.Anonymous(), err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	user, err := users.GetBySubject(ctx, cmd.Subject())
	if errors.Is(err, errs.ErrObjectNotFound) {
		user, err = identity.NewUser(kernel.NewUUID(), cmd.Subject(), cmd.Username())
		if err != nil {
			return identity.Anonymous(), err
		}
		err = users.Add(ctx, user)
	}
	if err != nil {
		return identity.Anonymous(), err
	}

	roles, err := users.Roles(ctx, user.ID())
	if err != nil {
		return identity.Anonymous(), err
	}

	if err = uow.Commit(ctx); err != nil {
		return identity.Anonymous(), err
	}
	return identity.NewPrincipal(user.ID(), user.Username(), roles), nil
}
