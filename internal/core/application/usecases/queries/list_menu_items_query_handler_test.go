package queries_test

import (
	"context"
	"math"
	"testing"

	"littlelemon/internal/adapters/out/postgres/pgtest"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ListMenuItemsQueryHandlerTestSuite struct {
	suite.Suite
	db        *gorm.DB
	handler   queries.ListMenuItemsQueryHandler
	principal identity.Principal
	mains     *catalog.Category
	desserts  *catalog.Category
}

func (suite *ListMenuItemsQueryHandlerTestSuite) SetupTest() {
	suite.db = pgtest.SQLite(suite.T())
	suite.handler = queries.NewListMenuItemsQueryHandler(
		suite.db, services.DefaultAccessPolicy(), queries.PageSize{Default: 2, Max: 3},
	)

	user := pgtest.SeedUser(suite.T(), suite.db, "alice")
	suite.principal = identity.NewPrincipal(user.ID(), user.Username(), identity.NewRoleSet())

	suite.mains = pgtest.SeedCategory(suite.T(), suite.db, "mains", "Main Courses")
	suite.desserts = pgtest.SeedCategory(suite.T(), suite.db, "desserts", "Desserts")
	pgtest.SeedMenuItem(suite.T(), suite.db, suite.mains, "Burger", "7.25")
	pgtest.SeedMenuItem(suite.T(), suite.db, suite.mains, "Greek Salad", "5.50")
	pgtest.SeedMenuItem(suite.T(), suite.db, suite.mains, "Pasta_Special", "9.00")
	pgtest.SeedMenuItem(suite.T(), suite.db, suite.desserts, "Cheesecake", "4.00")
	pgtest.SeedMenuItem(suite.T(), suite.db, suite.desserts, "Baklava", "3.00")
}

func (suite *ListMenuItemsQueryHandlerTestSuite) list(filter queries.MenuFilter, ordering string, page, perPage int) queries.ListMenuItemsQueryResponse {
	query, err := queries.NewListMenuItemsQuery(suite.principal, filter, ordering, page, perPage)
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	return resp
}

func titles(items []queries.MenuItemView) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Title)
	}
	return out
}

func (suite *ListMenuItemsQueryHandlerTestSuite) TestHandle_FirstPage() {
	resp := suite.list(queries.MenuFilter{}, "", 1, 2)

	suite.Equal(int64(5), resp.Count)
	suite.Equal([]string{"Baklava", "Burger"}, titles(resp.Items))
	suite.Nil(resp.PreviousPage)
	suite.Require().NotNil(resp.NextPage)
	suite.Equal(2, *resp.NextPage)
}

func (suite *ListMenuItemsQueryHandlerTestSuite) TestHandle_LastPage() {
	resp := suite.list(queries.MenuFilter{}, "", 3, 2)

	suite.Equal(int64(5), resp.Count)
	suite.Len(resp.Items, 1)
	suite.Require().NotNil(resp.PreviousPage)
	suite.Equal(2, *resp.PreviousPage)
	suite.Nil(resp.NextPage)
}

func (suite *ListMenuItemsQueryHandlerTestSuite) TestHandle_PagesDoNotOverlap() {
	seen := map[string]bool{}
	for page := 1; page <= 3; page++ {
		for _, title := range titles(suite.list(queries.MenuFilter{}, "-price", page, 2).Items) {
			suite.False(seen[title], "%s listed twice", title)
			seen[title] = true
		}
	}
	suite.Len(seen, 5)
}

func (suite *ListMenuItemsQueryHandlerTestSuite) TestHandle_PageOutOfRangeIsEmpty() {
	resp := suite.list(queries.MenuFilter{}, "", 9, 2)

	suite.Equal(int64(5), resp.Count)
	suite.Empty(resp.Items)
	suite.Nil(resp.NextPage)
}

func (suite *ListMenuItemsQueryHandlerTestSuite) TestHandle_HugePageIsEmpty() {
	for _, perPage := range []int{2, 3} {
		resp := suite.list(queries.MenuFilter{}, "", math.MaxInt, perPage)

		suite.Equal(int64(5), resp.Count)
		suite.Empty(resp.Items)
		suite.Nil(resp.NextPage)
		suite.Require().NotNil(resp.PreviousPage)
		suite.Equal(math.MaxInt-1, *resp.PreviousPage)
	}
}

func (suite *ListMenuItemsQueryHandlerTestSuite) TestHandle_NoMatchesHasNoLinks() {
	resp := suite.list(queries.MenuFilter{Search: "lobster"}, "", 1, 2)

	suite.Equal(int64(0), resp.Count)
	suite.Empty(resp.Items)
	suite.Nil(resp.PreviousPage)
	suite.Nil(resp.NextPage)
}

func (suite *ListMenuItemsQueryHandlerTestSuite) TestHandle_DefaultAndMaximumPageSize() {
	suite.Len(suite.list(queries.MenuFilter{}, "", 1, 0).Items, 2)

	resp := suite.list(queries.MenuFilter{}, "", 1, 50)
	suite.Len(resp.Items, 3)
	suite.Equal(3, resp.PerPage)
}

func (suite *ListMenuItemsQueryHandlerTestSuite) TestHandle_Ordering() {
	resp := suite.list(queries.MenuFilter{}, "-price", 1, 3)
	suite.Equal([]string{"Pasta_Special", "Burger", "Greek Salad"}, titles(resp.Items))

	resp = suite.list(queries.MenuFilter{}, "price", 1, 3)
	suite.Equal([]string{"Baklava", "Cheesecake", "Greek Salad"}, titles(resp.Items))
}

func (suite *ListMenuItemsQueryHandlerTestSuite) TestHandle_Filters() {
	price := kernel.MustMoney("5.50")

	suite.Run("category substring is case insensitive", func() {
		resp := suite.list(queries.MenuFilter{Category: "dessert"}, "", 1, 3)
		suite.Equal(int64(2), resp.Count)
		suite.Equal([]string{"Baklava", "Cheesecake"}, titles(resp.Items))
	})

	suite.Run("to_price is inclusive", func() {
		resp := suite.list(queries.MenuFilter{ToPrice: &price}, "price", 1, 3)
		suite.Equal(int64(3), resp.Count)
		suite.Equal([]string{"Baklava", "Cheesecake", "Greek Salad"}, titles(resp.Items))
	})

	suite.Run("search matches the literal text left after markup is stripped", func() {
		resp := suite.list(queries.MenuFilter{Search: "<script>x</script>burger"}, "", 1, 3)
		suite.Equal(int64(1), resp.Count)
		suite.Equal([]string{"Burger"}, titles(resp.Items))
	})

	suite.Run("wildcards in search are literal", func() {
		suite.Equal(int64(0), suite.list(queries.MenuFilter{Search: "%"}, "", 1, 3).Count)
		suite.Equal(int64(1), suite.list(queries.MenuFilter{Search: "_"}, "", 1, 3).Count)
	})

	suite.Run("filters combine", func() {
		resp := suite.list(queries.MenuFilter{Category: "main", ToPrice: &price}, "", 1, 3)
		suite.Equal([]string{"Greek Salad"}, titles(resp.Items))
	})
}

func (suite *ListMenuItemsQueryHandlerTestSuite) TestHandle_ItemCarriesCategoryAndTax() {
	resp := suite.list(queries.MenuFilter{Search: "burger"}, "", 1, 2)

	suite.Require().Len(resp.Items, 1)
	item := resp.Items[0]
	suite.Equal("7.25", item.Price.String())
	suite.Equal("7.98", item.PriceAfterTax.String())
	suite.Equal(10, item.Inventory)
	suite.True(item.Category.ID.IsEqual(suite.mains.ID()))
	suite.Equal("mains", item.Category.Slug)
}

func (suite *ListMenuItemsQueryHandlerTestSuite) TestHandle_AnonymousIsForbidden() {
	query, err := queries.NewListMenuItemsQuery(identity.Anonymous(), queries.MenuFilter{}, "", 1, 2)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.ErrorIs(err, errs.ErrForbidden)
}

func TestListMenuItemsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListMenuItemsQueryHandlerTestSuite))
}
