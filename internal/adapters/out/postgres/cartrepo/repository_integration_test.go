package cartrepo_test

import (
	"context"
	"testing"

	"littlelemon/internal/adapters/out/postgres/cartrepo"
	"littlelemon/internal/adapters/out/postgres/pgtest"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type CartRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *cartrepo.GormCartRepository

	user  *identity.User
	other *identity.User
	items []*catalog.MenuItem
}

func (suite *CartRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *CartRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())

	t, db := suite.T(), suite.pg.DB
	suite.user = pgtest.SeedUser(t, db, "alice")
	suite.other = pgtest.SeedUser(t, db, "bob")
	mains := pgtest.SeedCategory(t, db, "mains", "Mains")
	suite.items = []*catalog.MenuItem{
		pgtest.SeedMenuItem(t, db, mains, "Pasta", "9.00"),
		pgtest.SeedMenuItem(t, db, mains, "Risotto", "11.00"),
		pgtest.SeedMenuItem(t, db, mains, "Lasagne", "10.50"),
	}
	suite.repository = cartrepo.NewGormCartRepository(db)
}

func (suite *CartRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *CartRepositoryIntegrationTestSuite) add(user *identity.User, item *catalog.MenuItem, quantity int) *cart.Entry {
	entry, err := cart.NewEntry(user.ID(), item.ID(), quantity, item.Price())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(suite.T().Context(), entry))
	return entry
}

func (suite *CartRepositoryIntegrationTestSuite) TestListForUpdate_OwnEntriesInInsertionOrder() {
	ctx := suite.T().Context()
	suite.add(suite.user, suite.items[2], 1)
	suite.add(suite.user, suite.items[0], 3)
	suite.add(suite.other, suite.items[1], 1)

	entries, err := suite.repository.ListForUpdate(ctx, suite.user.ID())

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.True(entries[0].MenuItemID().IsEqual(suite.items[2].ID()))
	suite.True(entries[1].MenuItemID().IsEqual(suite.items[0].ID()))
	suite.Equal("27.00", entries[1].Price().String())
	suite.Equal("9.00", entries[1].UnitPrice().String())
}

func (suite *CartRepositoryIntegrationTestSuite) TestAdd_DuplicateIsConflict() {
	suite.add(suite.user, suite.items[0], 1)

	entry, err := cart.NewEntry(suite.user.ID(), suite.items[0].ID(), 2, suite.items[0].Price())
	suite.Require().NoError(err)
	err = suite.repository.Add(suite.T().Context(), entry)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *CartRepositoryIntegrationTestSuite) TestAdd_UnknownMenuItemIsConflict() {
	entry, err := cart.NewEntry(suite.user.ID(), kernel.NewUUID(), 1, kernel.MustMoney("2.00"))
	suite.Require().NoError(err)

	err = suite.repository.Add(suite.T().Context(), entry)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *CartRepositoryIntegrationTestSuite) TestRemove_OnlyGivenEntries() {
	ctx := suite.T().Context()
	suite.add(suite.user, suite.items[0], 1)
	suite.add(suite.user, suite.items[1], 1)
	suite.add(suite.other, suite.items[0], 1)

	suite.Require().NoError(suite.repository.Remove(ctx, suite.user.ID(), []kernel.UUID{suite.items[0].ID()}))

	left, err := suite.repository.ListForUpdate(ctx, suite.user.ID())
	suite.Require().NoError(err)
	suite.Require().Len(left, 1)
	suite.True(left[0].MenuItemID().IsEqual(suite.items[1].ID()))

	others, err := suite.repository.ListForUpdate(ctx, suite.other.ID())
	suite.Require().NoError(err)
	suite.Len(others, 1)

	suite.Require().NoError(suite.repository.Remove(ctx, suite.user.ID(), nil))
}

func (suite *CartRepositoryIntegrationTestSuite) TestClear_IsIdempotent() {
	ctx := suite.T().Context()
	suite.add(suite.user, suite.items[0], 1)
	suite.add(suite.user, suite.items[1], 2)

	removed, err := suite.repository.Clear(ctx, suite.user.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(2), removed)

	removed, err = suite.repository.Clear(ctx, suite.user.ID())
	suite.Require().NoError(err)
	suite.Zero(removed)
}

func TestCartRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CartRepositoryIntegrationTestSuite))
}
