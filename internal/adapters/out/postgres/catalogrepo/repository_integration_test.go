package catalogrepo_test

import (
	"context"
	"testing"
	"time"

	"littlelemon/internal/adapters/out/postgres/cartrepo"
	"littlelemon/internal/adapters/out/postgres/catalogrepo"
	"littlelemon/internal/adapters/out/postgres/orderrepo"
	"littlelemon/internal/adapters/out/postgres/pgtest"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type CatalogRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	categories *catalogrepo.GormCategoryRepository
	items      *catalogrepo.GormMenuItemRepository
	ratings    *catalogrepo.GormRatingRepository
	category   *catalog.Category
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	db := suite.pg.DB
	suite.categories = catalogrepo.NewGormCategoryRepository(db)
	suite.items = catalogrepo.NewGormMenuItemRepository(db)
	suite.ratings = catalogrepo.NewGormRatingRepository(db)
	suite.category = pgtest.SeedCategory(suite.T(), db, "desserts", "Desserts")
}

func (suite *CatalogRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestCategory_AddGetAndDuplicateSlug() {
	ctx := suite.T().Context()

	got, err := suite.categories.Get(ctx, suite.category.ID())
	suite.Require().NoError(err)
	suite.Equal("desserts", got.Slug())
	suite.Equal("Desserts", got.Title())

	dup, err := catalog.NewCategory(kernel.NewUUID(), "desserts", "Sweets")
	suite.Require().NoError(err)
	suite.Require().ErrorIs(suite.categories.Add(ctx, dup), errs.ErrConflict)

	_, err = suite.categories.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestMenuItem_RoundTripAndUpdate() {
	ctx := suite.T().Context()
	item := pgtest.SeedMenuItem(suite.T(), suite.pg.DB, suite.category, "Tiramisu", "7.50")

	got, err := suite.items.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal("Tiramisu", got.Title())
	suite.Equal("7.50", got.Price().String())
	suite.True(got.CategoryID().IsEqual(suite.category.ID()))

	price, inventory := kernel.MustMoney("8.25"), 0
	suite.Require().NoError(got.Apply(catalog.MenuItemChanges{Price: &price, Inventory: &inventory}))
	suite.Require().NoError(suite.items.Update(ctx, got))

	again, err := suite.items.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal("8.25", again.Price().String())
	suite.Zero(again.Inventory())
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestMenuItem_TitleIsUnique() {
	ctx := suite.T().Context()
	pgtest.SeedMenuItem(suite.T(), suite.pg.DB, suite.category, "Baklava", "5.00")
	other := pgtest.SeedMenuItem(suite.T(), suite.pg.DB, suite.category, "Cannoli", "5.00")

	dup, err := catalog.NewMenuItem(kernel.NewUUID(), "Baklava", kernel.MustMoney("3.00"), 1, suite.category.ID())
	suite.Require().NoError(err)
	suite.Require().ErrorIs(suite.items.Add(ctx, dup), errs.ErrConflict)

	title := "Baklava"
	suite.Require().NoError(other.Apply(catalog.MenuItemChanges{Title: &title}))
	suite.Require().ErrorIs(suite.items.Update(ctx, other), errs.ErrConflict)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestMenuItem_DeleteCascadesCartEntries() {
	ctx := suite.T().Context()
	db := suite.pg.DB
	item := pgtest.SeedMenuItem(suite.T(), db, suite.category, "Panna Cotta", "6.00")
	user := pgtest.SeedUser(suite.T(), db, "carol")
	entry, err := cart.NewEntry(user.ID(), item.ID(), 1, item.Price())
	suite.Require().NoError(err)
	suite.Require().NoError(cartrepo.NewGormCartRepository(db).Add(ctx, entry))

	suite.Require().NoError(suite.items.Delete(ctx, item.ID()))

	var entries int64
	suite.Require().NoError(db.Model(&cartrepo.EntryDTO{}).Where("user_id = ?", user.ID().Raw()).Count(&entries).Error)
	suite.Zero(entries)

	suite.Require().ErrorIs(suite.items.Delete(ctx, item.ID()), errs.ErrObjectNotFound)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestMenuItem_OrderedItemCannotBeDeleted() {
	ctx := suite.T().Context()
	db := suite.pg.DB
	item := pgtest.SeedMenuItem(suite.T(), db, suite.category, "Gelato", "4.00")
	user := pgtest.SeedUser(suite.T(), db, "dave")
	line, err := order.NewItem(item.ID(), 1, item.Price(), item.Price())
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), user.ID(), time.Now(), []order.Item{line})
	suite.Require().NoError(err)
	suite.Require().NoError(orderrepo.NewGormOrderRepository(db, noopTracker{}).Add(ctx, o))

	err = suite.items.Delete(ctx, item.ID())

	suite.Require().ErrorIs(err, errs.ErrConflict)
	_, err = suite.items.Get(ctx, item.ID())
	suite.Require().NoError(err)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestRating_DuplicateTupleIsConflict() {
	ctx := suite.T().Context()
	db := suite.pg.DB
	item := pgtest.SeedMenuItem(suite.T(), db, suite.category, "Sorbet", "3.50")
	user := pgtest.SeedUser(suite.T(), db, "erin")

	rate := func(score int) error {
		r, err := catalog.NewRating(kernel.NewUUID(), user.ID(), item.ID(), score)
		suite.Require().NoError(err)
		return suite.ratings.Add(ctx, r)
	}

	suite.Require().NoError(rate(4))
	suite.Require().NoError(rate(5), "a different score is a separate rating")
	suite.Require().ErrorIs(rate(4), errs.ErrConflict)
}

func TestCatalogRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CatalogRepositoryIntegrationTestSuite))
}
