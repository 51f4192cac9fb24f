package commands_test

import (
	"context"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, e *cart.Entry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockCartRepository) ListForUpdate(ctx context.Context, userID kernel.UUID) ([]*cart.Entry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.Entry), args.Error(1)
}

func (m *MockCartRepository) Remove(ctx context.Context, userID kernel.UUID, menuItemIDs []kernel.UUID) error {
	return m.Called(ctx, userID, menuItemIDs).Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, userID kernel.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Add(ctx context.Context, c *catalog.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Add(ctx context.Context, item *catalog.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuItemRepository) Update(ctx context.Context, item *catalog.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockRatingRepository struct{ mock.Mock }

func (m *MockRatingRepository) Add(ctx context.Context, r *catalog.Rating) error {
	return m.Called(ctx, r).Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *identity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) GetBySubject(ctx context.Context, subject string) (*identity.User, error) {
	args := m.Called(ctx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Lock(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) Roles(ctx context.Context, id kernel.UUID) (identity.RoleSet, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(identity.RoleSet), args.Error(1)
}

func (m *MockUserRepository) Grant(ctx context.Context, id kernel.UUID, role identity.Role) (bool, error) {
	args := m.Called(ctx, id, role)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Revoke(ctx context.Context, id kernel.UUID, role identity.Role) (bool, error) {
	args := m.Called(ctx, id, role)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every unit of work view the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CartRepository() ports.CartRepository {
	return m.Called().Get(0).(ports.CartRepository)
}

func (m *MockUoW) CategoryRepository() ports.CategoryRepository {
	return m.Called().Get(0).(ports.CategoryRepository)
}

func (m *MockUoW) MenuItemRepository() ports.MenuItemRepository {
	return m.Called().Get(0).(ports.MenuItemRepository)
}

func (m *MockUoW) RatingRepository() ports.RatingRepository {
	return m.Called().Get(0).(ports.RatingRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

// MockUoWFactory hands out the same MockUoW through every factory view.
type MockUoWFactory struct{ mock.Mock }

func (f *MockUoWFactory) uow() *MockUoW { return f.MethodCalled("Create").Get(0).(*MockUoW) }

type (
	cartFactory    struct{ *MockUoWFactory }
	orderFactory   struct{ *MockUoWFactory }
	catalogFactory struct{ *MockUoWFactory }
	ratingFactory  struct{ *MockUoWFactory }
	userFactory    struct{ *MockUoWFactory }
)

func (f cartFactory) Create() commands.CartUoW       { return f.uow() }
func (f orderFactory) Create() commands.OrderUoW     { return f.uow() }
func (f catalogFactory) Create() commands.CatalogUoW { return f.uow() }
func (f ratingFactory) Create() commands.RatingUoW   { return f.uow() }
func (f userFactory) Create() commands.UserUoW       { return f.uow() }

// newUoW returns a factory yielding a unit of work that begins and rolls
// back successfully. Commit is left to each test.
func newUoW(ctx context.Context) (*MockUoWFactory, *MockUoW) {
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Maybe()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow
}

type MockMenuItemCache struct{ mock.Mock }

func (m *MockMenuItemCache) Invalidate(ctx context.Context, id kernel.UUID) {
	m.Called(ctx, id)
}

var policy = services.DefaultAccessPolicy()

func customer() identity.Principal {
	return identity.NewPrincipal(kernel.NewUUID(), "customer", identity.NewRoleSet())
}

func manager() identity.Principal {
	return identity.NewPrincipal(kernel.NewUUID(), "manager", identity.NewRoleSet(identity.Manager))
}

func crewMember() identity.Principal {
	return identity.NewPrincipal(kernel.NewUUID(), "crew", identity.NewRoleSet(identity.DeliveryCrew))
}
