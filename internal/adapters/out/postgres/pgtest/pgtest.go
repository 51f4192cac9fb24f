// Package pgtest starts a disposable PostgreSQL for integration tests and
// seeds the rows most tests need.
package pgtest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"littlelemon/internal/adapters/out/postgres"
	"littlelemon/internal/adapters/out/postgres/cartrepo"
	"littlelemon/internal/adapters/out/postgres/catalogrepo"
	"littlelemon/internal/adapters/out/postgres/orderrepo"
	"littlelemon/internal/adapters/out/postgres/userrepo"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const truncateAll = `TRUNCATE TABLE order_items, orders, cart_entries, ratings, menu_items, categories, role_memberships, users`

// Database is a migrated PostgreSQL running in a container.
type Database struct {
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
}

func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err = postgres.Migrate(db); err != nil {
		return nil, err
	}

	return &Database{Container: container, DB: db}, nil
}

func (d *Database) Truncate() error {
	return d.DB.Exec(truncateAll).Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

// SQLite opens a private in-memory database with foreign keys enforced and
// the full schema migrated. The single connection keeps the shared cache
// alive for the lifetime of the test.
func SQLite(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres.Migrate(db))
	return db
}

func SeedUser(t *testing.T, db *gorm.DB, username string, roles ...identity.Role) *identity.User {
	t.Helper()
	ctx := t.Context()
	user, err := identity.NewUser(kernel.NewUUID(), "sub|"+username, username)
	require.NoError(t, err)

	repo := userrepo.NewGormUserRepository(db)
	require.NoError(t, repo.Add(ctx, user))
	for _, role := range roles {
		_, err = repo.Grant(ctx, user.ID(), role)
		require.NoError(t, err)
	}
	return user
}

func SeedCategory(t *testing.T, db *gorm.DB, slug, title string) *catalog.Category {
	t.Helper()
	category, err := catalog.NewCategory(kernel.NewUUID(), slug, title)
	require.NoError(t, err)
	require.NoError(t, catalogrepo.NewGormCategoryRepository(db).Add(t.Context(), category))
	return category
}

func SeedMenuItem(t *testing.T, db *gorm.DB, category *catalog.Category, title, price string) *catalog.MenuItem {
	t.Helper()
	item, err := catalog.NewMenuItem(kernel.NewUUID(), title, kernel.MustMoney(price), 10, category.ID())
	require.NoError(t, err)
	require.NoError(t, catalogrepo.NewGormMenuItemRepository(db).Add(t.Context(), item))
	return item
}

func SeedCartEntry(t *testing.T, db *gorm.DB, user *identity.User, item *catalog.MenuItem, quantity int) *cart.Entry {
	t.Helper()
	entry, err := cart.NewEntry(user.ID(), item.ID(), quantity, item.Price())
	require.NoError(t, err)
	require.NoError(t, cartrepo.NewGormCartRepository(db).Add(t.Context(), entry))
	return entry
}

// SeedOrder places an order for customer holding one unit of each item.
func SeedOrder(t *testing.T, db *gorm.DB, customer *identity.User, placedAt time.Time, items ...*catalog.MenuItem) *order.Order {
	t.Helper()
	lines := make([]order.Item, 0, len(items))
	for _, item := range items {
		line, err := order.NewItem(item.ID(), 1, item.Price(), item.Price())
		require.NoError(t, err)
		lines = append(lines, line)
	}
	o, err := order.NewOrder(kernel.NewUUID(), customer.ID(), placedAt, lines)
	require.NoError(t, err)
	require.NoError(t, orderrepo.NewGormOrderRepository(db, discard{}).Add(t.Context(), o))
	return o
}

// SaveOrder persists state changes made to o after it was seeded.
func SaveOrder(t *testing.T, db *gorm.DB, o *order.Order) {
	t.Helper()
	require.NoError(t, orderrepo.NewGormOrderRepository(db, discard{}).Update(t.Context(), o))
}

type discard struct{}

func (discard) TrackAggregate(kernel.UUID, any) {}
