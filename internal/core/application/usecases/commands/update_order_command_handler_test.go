package commands_test

import (
	"testing"
	"time"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 1, kernel.MustMoney("5.00"), kernel.MustMoney("5.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), []order.Item{item})
	require.NoError(t, err)
	o.DomainEvents()
	return o
}

func ptr[T any](v T) *T { return &v }

type updateOrderFixture struct {
	factory *MockUoWFactory
	uow     *MockUoW
	orders  *MockOrderRepository
	users   *MockUserRepository
}

func newUpdateOrderFixture(t *testing.T, o *order.Order) updateOrderFixture {
	ctx := t.Context()
	factory, uow := newUoW(ctx)
	f := updateOrderFixture{factory: factory, uow: uow, orders: new(MockOrderRepository), users: new(MockUserRepository)}
	uow.On("OrderRepository").Return(f.orders)
	uow.On("UserRepository").Return(f.users)
	f.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	return f
}

func TestUpdateOrderCommandHandler_AssignAndComplete(t *testing.T) {
	ctx := t.Context()
	o := pendingOrder(t)
	crewID := kernel.NewUUID()
	crewUser := identity.RestoreUser(crewID, "sub-crew", "rider")
	f := newUpdateOrderFixture(t, o)

	f.users.On("Get", ctx, crewID).Return(crewUser, nil).Once()
	f.users.On("Roles", ctx, crewID).Return(identity.NewRoleSet(identity.DeliveryCrew), nil).Once()
	f.orders.On("Update", ctx, o).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewUpdateOrderCommand(manager(), o.ID(), ptr(true), &crewID, true)
	require.NoError(t, err)

	updated, err := commands.NewUpdateOrderCommandHandler(orderFactory{f.factory}, policy).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, updated.Status())
	assert.True(t, updated.IsAssignedTo(crewID))
	events := updated.DomainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, order.EventDeliveryAssigned, events[0].Name)
	assert.Equal(t, order.EventCompleted, events[1].Name)
	f.orders.AssertExpectations(t)
	f.users.AssertExpectations(t)
	f.uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_AlreadyAssignedIsConflict(t *testing.T) {
	assignees := map[string]func(f updateOrderFixture, id kernel.UUID){
		"crew member": func(f updateOrderFixture, id kernel.UUID) {
			f.users.On("Get", mock.Anything, id).Return(identity.RestoreUser(id, "s", "other"), nil).Maybe()
			f.users.On("Roles", mock.Anything, id).Return(identity.NewRoleSet(identity.DeliveryCrew), nil).Maybe()
		},
		"user without crew role": func(f updateOrderFixture, id kernel.UUID) {
			f.users.On("Get", mock.Anything, id).Return(identity.RestoreUser(id, "s", "plain"), nil).Maybe()
			f.users.On("Roles", mock.Anything, id).Return(identity.NewRoleSet(), nil).Maybe()
		},
		"unknown user": func(f updateOrderFixture, id kernel.UUID) {
			f.users.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("user", id)).Maybe()
		},
	}

	for name, setup := range assignees {
		t.Run(name, func(t *testing.T) {
			o := pendingOrder(t)
			firstCrew := kernel.NewUUID()
			require.NoError(t, o.AssignDeliveryCrew(firstCrew))
			secondCrew := kernel.NewUUID()
			f := newUpdateOrderFixture(t, o)
			setup(f, secondCrew)

			cmd, err := commands.NewUpdateOrderCommand(manager(), o.ID(), ptr(true), &secondCrew, false)
			require.NoError(t, err)

			_, err = commands.NewUpdateOrderCommandHandler(orderFactory{f.factory}, policy).Handle(t.Context(), cmd)

			require.ErrorIs(t, err, order.ErrAlreadyAssigned)
			require.ErrorIs(t, err, errs.ErrConflict)
			assert.True(t, o.IsAssignedTo(firstCrew))
			assert.Equal(t, order.Assigned, o.Status())
			f.users.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
			f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			f.uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestUpdateOrderCommandHandler_AssignsCompletedOrderWithoutCrew(t *testing.T) {
	ctx := t.Context()
	o := pendingOrder(t)
	_, err := o.Complete()
	require.NoError(t, err)
	o.DomainEvents()
	crewID := kernel.NewUUID()
	f := newUpdateOrderFixture(t, o)

	f.users.On("Get", ctx, crewID).Return(identity.RestoreUser(crewID, "sub-crew", "rider"), nil).Once()
	f.users.On("Roles", ctx, crewID).Return(identity.NewRoleSet(identity.DeliveryCrew), nil).Once()
	f.orders.On("Update", ctx, o).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewUpdateOrderCommand(manager(), o.ID(), nil, &crewID, true)
	require.NoError(t, err)

	updated, err := commands.NewUpdateOrderCommandHandler(orderFactory{f.factory}, policy).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, updated.Status())
	assert.True(t, updated.IsAssignedTo(crewID))
	f.uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_AssigneeMustBeCrew(t *testing.T) {
	ctx := t.Context()
	o := pendingOrder(t)
	userID := kernel.NewUUID()
	f := newUpdateOrderFixture(t, o)

	f.users.On("Get", ctx, userID).Return(identity.RestoreUser(userID, "s", "plain"), nil).Once()
	f.users.On("Roles", ctx, userID).Return(identity.NewRoleSet(), nil).Once()

	cmd, err := commands.NewUpdateOrderCommand(manager(), o.ID(), nil, &userID, false)
	require.NoError(t, err)

	_, err = commands.NewUpdateOrderCommandHandler(orderFactory{f.factory}, policy).Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrInvalidRole)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Nil(t, o.DeliveryCrew())
}

func TestUpdateOrderCommandHandler_AssignedCrewCompletes(t *testing.T) {
	ctx := t.Context()
	o := pendingOrder(t)
	rider := crewMember()
	require.NoError(t, o.AssignDeliveryCrew(rider.UserID()))
	f := newUpdateOrderFixture(t, o)

	f.orders.On("Update", ctx, o).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewUpdateOrderCommand(rider, o.ID(), ptr(true), nil, false)
	require.NoError(t, err)

	updated, err := commands.NewUpdateOrderCommandHandler(orderFactory{f.factory}, policy).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, updated.Status())
}

func TestUpdateOrderCommandHandler_CrewRestrictions(t *testing.T) {
	rider := crewMember()
	crewID := kernel.NewUUID()

	t.Run("crew cannot assign", func(t *testing.T) {
		o := pendingOrder(t)
		require.NoError(t, o.AssignDeliveryCrew(rider.UserID()))
		f := newUpdateOrderFixture(t, o)

		cmd, err := commands.NewUpdateOrderCommand(rider, o.ID(), ptr(true), &crewID, false)
		require.NoError(t, err)

		_, err = commands.NewUpdateOrderCommandHandler(orderFactory{f.factory}, policy).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.Assigned, o.Status(), "status must not change when any part is forbidden")
	})

	t.Run("crew cannot touch orders of others", func(t *testing.T) {
		o := pendingOrder(t)
		require.NoError(t, o.AssignDeliveryCrew(kernel.NewUUID()))
		f := newUpdateOrderFixture(t, o)

		cmd, err := commands.NewUpdateOrderCommand(rider, o.ID(), ptr(true), nil, false)
		require.NoError(t, err)

		_, err = commands.NewUpdateOrderCommandHandler(orderFactory{f.factory}, policy).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("only managers may replace", func(t *testing.T) {
		factory := new(MockUoWFactory)
		cmd, err := commands.NewUpdateOrderCommand(rider, kernel.NewUUID(), ptr(true), nil, true)
		require.NoError(t, err)

		_, err = commands.NewUpdateOrderCommandHandler(orderFactory{factory}, policy).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("customers cannot update even their own order", func(t *testing.T) {
		owner := customer()
		item, _ := order.NewItem(kernel.NewUUID(), 1, kernel.MustMoney("2.00"), kernel.MustMoney("2.00"))
		o, err := order.NewOrder(kernel.NewUUID(), owner.UserID(), time.Now(), []order.Item{item})
		require.NoError(t, err)
		f := newUpdateOrderFixture(t, o)

		cmd, err := commands.NewUpdateOrderCommand(owner, o.ID(), ptr(true), nil, false)
		require.NoError(t, err)

		_, err = commands.NewUpdateOrderCommandHandler(orderFactory{f.factory}, policy).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestUpdateOrderCommandHandler_FalseStatusIsNoop(t *testing.T) {
	ctx := t.Context()
	o := pendingOrder(t)
	_, err := o.Complete()
	require.NoError(t, err)
	o.DomainEvents()
	f := newUpdateOrderFixture(t, o)

	f.orders.On("Update", ctx, o).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewUpdateOrderCommand(manager(), o.ID(), ptr(false), nil, false)
	require.NoError(t, err)

	updated, err := commands.NewUpdateOrderCommandHandler(orderFactory{f.factory}, policy).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, updated.Status())
	assert.Empty(t, updated.DomainEvents())
}

func TestUpdateOrderCommandHandler_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	factory, uow := newUoW(ctx)
	orders := new(MockOrderRepository)
	uow.On("OrderRepository").Return(orders)
	orders.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once()

	cmd, err := commands.NewUpdateOrderCommand(manager(), id, ptr(true), nil, false)
	require.NoError(t, err)

	_, err = commands.NewUpdateOrderCommandHandler(orderFactory{factory}, policy).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewUpdateOrderCommand(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(manager(), kernel.NewUUID(), nil, nil, false)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewUpdateOrderCommand(manager(), kernel.UUID{}, ptr(true), nil, false)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	zero := kernel.UUID{}
	_, err = commands.NewUpdateOrderCommand(manager(), kernel.NewUUID(), nil, &zero, false)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	var cmd commands.UpdateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderCommandIsNotConstructed)
}
