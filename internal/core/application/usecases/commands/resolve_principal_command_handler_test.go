package commands_test

import (
	"testing"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolvePrincipalCommandHandler_KnownUser(t *testing.T) {
	ctx := t.Context()
	user := identity.RestoreUser(kernel.NewUUID(), "auth0|42", "adrian")
	factory, uow := newUoW(ctx)
	users := new(MockUserRepository)
	uow.On("UserRepository").Return(users)
	users.On("GetBySubject", ctx, "auth0|42").Return(user, nil).Once()
	users.On("Roles", ctx, user.ID()).Return(identity.NewRoleSet(identity.Manager), nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewResolvePrincipalCommand("auth0|42", "adrian")
	require.NoError(t, err)

	principal, err := commands.NewResolvePrincipalCommandHandler(userFactory{factory}).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, principal.IsAuthenticated())
	assert.True(t, principal.UserID().IsEqual(user.ID()))
	assert.True(t, principal.Roles().Has(identity.Manager))
	users.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestResolvePrincipalCommandHandler_ProvisionsNewUser(t *testing.T) {
	ctx := t.Context()
	factory, uow := newUoW(ctx)
	users := new(MockUserRepository)
	uow.On("UserRepository").Return(users)
	users.On("GetBySubject", ctx, "sub-1").Return(nil, errs.NewObjectNotFoundError("user", "sub-1")).Once()
	users.On("Add", ctx, mock.AnythingOfType("*identity.User")).Return(nil).Once()
	users.On("Roles", ctx, mock.Anything).Return(identity.NewRoleSet(), nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewResolvePrincipalCommand("sub-1", "")
	require.NoError(t, err)

	principal, err := commands.NewResolvePrincipalCommandHandler(userFactory{factory}).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "sub-1", principal.Username())
	assert.True(t, principal.Roles().IsCustomer())
}

func TestResolvePrincipalCommandHandler_RetriesAfterConcurrentProvisioning(t *testing.T) {
	ctx := t.Context()
	winner := identity.RestoreUser(kernel.NewUUID(), "sub-2", "lucia")

	first, second := new(MockUoW), new(MockUoW)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(first).Once()
	factory.On("Create").Return(second).Once()

	lost := new(MockUserRepository)
	first.On("Begin", ctx).Return(nil).Once()
	first.On("Rollback", ctx).Return(nil).Once()
	first.On("UserRepository").Return(lost)
	lost.On("GetBySubject", ctx, "sub-2").Return(nil, errs.NewObjectNotFoundError("user", "sub-2")).Once()
	lost.On("Add", ctx, mock.Anything).Return(errs.NewConflictError("subject")).Once()

	found := new(MockUserRepository)
	second.On("Begin", ctx).Return(nil).Once()
	second.On("Rollback", ctx).Return(nil).Maybe()
	second.On("UserRepository").Return(found)
	found.On("GetBySubject", ctx, "sub-2").Return(winner, nil).Once()
	found.On("Roles", ctx, winner.ID()).Return(identity.NewRoleSet(), nil).Once()
	second.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewResolvePrincipalCommand("sub-2", "lucia")
	require.NoError(t, err)

	principal, err := commands.NewResolvePrincipalCommandHandler(userFactory{factory}).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, principal.UserID().IsEqual(winner.ID()))
	factory.AssertExpectations(t)
	first.AssertExpectations(t)
}

func TestNewResolvePrincipalCommand(t *testing.T) {
	_, err := commands.NewResolvePrincipalCommand("  ", "x")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var cmd commands.ResolvePrincipalCommand
	_, err = commands.NewResolvePrincipalCommandHandler(userFactory{new(MockUoWFactory)}).Handle(t.Context(), cmd)
	require.ErrorIs(t, err, commands.ErrResolvePrincipalCommandIsNotConstructed)
}
