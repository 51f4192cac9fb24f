package order_test

import (
	"testing"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItems(t *testing.T) []order.Item {
	t.Helper()

	a, err := order.NewItem(kernel.NewUUID(), 2, kernel.MustMoney("5.50"), kernel.MustMoney("11.00"))
	require.NoError(t, err)
	b, err := order.NewItem(kernel.NewUUID(), 1, kernel.MustMoney("2.35"), kernel.MustMoney("2.35"))
	require.NoError(t, err)

	return []order.Item{a, b}
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), newItems(t))
	require.NoError(t, err)
	return o
}

func TestNewItem(t *testing.T) {
	_, err := order.NewItem(kernel.NewUUID(), 0, kernel.MustMoney("2.00"), kernel.MustMoney("0"))
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = order.NewItem(kernel.UUID{}, 1, kernel.MustMoney("2.00"), kernel.MustMoney("2.00"))
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	placedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create a pending order totalling its items", func(t *testing.T) {
		items := newItems(t)

		o, err := order.NewOrder(id, customerID, placedAt, items)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.IsOwnedBy(customerID))
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.DeliveryCrew())
		assert.Equal(t, "13.35", o.Total().String())
		assert.Equal(t, placedAt, o.PlacedAt())
		assert.Equal(t, items, o.Items())
	})

	t.Run("should record the placed event", func(t *testing.T) {
		o, err := order.NewOrder(id, customerID, placedAt, newItems(t))
		require.NoError(t, err)

		events := o.DomainEvents()

		require.Len(t, events, 1)
		assert.Equal(t, order.EventPlaced, events[0].EventName())
		assert.True(t, events[0].AggregateID().IsEqual(id))
		assert.Equal(t, "13.35", events[0].Total.String())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should reject an order without items", func(t *testing.T) {
		o, err := order.NewOrder(id, customerID, placedAt, nil)

		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrOrderHasNoItems)
	})

	t.Run("should reject missing identifiers and date", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, time.Time{}, newItems(t))

		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	var o *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
}

func TestOrder_AssignDeliveryCrew(t *testing.T) {
	t.Run("should assign a pending order", func(t *testing.T) {
		o := newOrder(t)
		o.DomainEvents()
		crew := kernel.NewUUID()

		require.NoError(t, o.AssignDeliveryCrew(crew))

		assert.Equal(t, order.Assigned, o.Status())
		assert.True(t, o.IsAssignedTo(crew))
		events := o.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventDeliveryAssigned, events[0].Name)
		require.NotNil(t, events[0].DeliveryCrewID)
		assert.True(t, events[0].DeliveryCrewID.IsEqual(crew))
	})

	t.Run("should never overwrite an existing assignee", func(t *testing.T) {
		o := newOrder(t)
		first := kernel.NewUUID()
		require.NoError(t, o.AssignDeliveryCrew(first))
		o.DomainEvents()

		err := o.AssignDeliveryCrew(kernel.NewUUID())

		assert.ErrorIs(t, err, order.ErrAlreadyAssigned)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.True(t, o.IsAssignedTo(first))
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should assign a completed order that has no crew", func(t *testing.T) {
		o := newOrder(t)
		_, err := o.Complete()
		require.NoError(t, err)
		o.DomainEvents()
		crew := kernel.NewUUID()

		require.NoError(t, o.AssignDeliveryCrew(crew))

		assert.Equal(t, order.Completed, o.Status())
		assert.True(t, o.IsAssignedTo(crew))
		events := o.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventDeliveryAssigned, events[0].Name)
	})

	t.Run("should refuse to reassign a completed order", func(t *testing.T) {
		o := newOrder(t)
		first := kernel.NewUUID()
		require.NoError(t, o.AssignDeliveryCrew(first))
		_, err := o.Complete()
		require.NoError(t, err)

		err = o.AssignDeliveryCrew(kernel.NewUUID())

		assert.ErrorIs(t, err, order.ErrAlreadyAssigned)
		assert.True(t, o.IsAssignedTo(first))
	})

	t.Run("should reject an invalid crew id", func(t *testing.T) {
		o := newOrder(t)

		assert.ErrorIs(t, o.AssignDeliveryCrew(kernel.UUID{}), kernel.ErrUUIDIsNotConstructed)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("should complete an assigned order and keep the assignee", func(t *testing.T) {
		o := newOrder(t)
		crew := kernel.NewUUID()
		require.NoError(t, o.AssignDeliveryCrew(crew))
		o.DomainEvents()

		changed, err := o.Complete()

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.Completed, o.Status())
		assert.True(t, o.IsAssignedTo(crew))
		events := o.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventCompleted, events[0].Name)
	})

	t.Run("should complete an unassigned order", func(t *testing.T) {
		o := newOrder(t)

		changed, err := o.Complete()

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Nil(t, o.DeliveryCrew())
	})

	t.Run("completing twice is a no-op", func(t *testing.T) {
		o := newOrder(t)
		_, err := o.Complete()
		require.NoError(t, err)
		o.DomainEvents()

		changed, err := o.Complete()

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Empty(t, o.DomainEvents())
	})
}

func TestOrder_MarkDeleted(t *testing.T) {
	o := newOrder(t)
	o.DomainEvents()

	o.MarkDeleted()

	events := o.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, order.EventDeleted, events[0].Name)
}

func TestRestoreOrder(t *testing.T) {
	crew := kernel.NewUUID()
	placedAt := time.Now()

	t.Run("should restore a consistent order without events", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), &crew, order.Assigned,
			kernel.MustMoney("13.35"), placedAt, newItems(t))

		require.NoError(t, err)
		assert.NoError(t, o.Validate())
		assert.True(t, o.IsAssignedTo(crew))
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should reject a pending order with a crew member", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), &crew, order.Pending,
			kernel.MustMoney("13.35"), placedAt, newItems(t))

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
