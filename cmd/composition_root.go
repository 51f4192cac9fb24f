package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	httpin "littlelemon/internal/adapters/in/http"
	"littlelemon/internal/adapters/out/credentials"
	"littlelemon/internal/adapters/out/events"
	"littlelemon/internal/adapters/out/postgres"
	"littlelemon/internal/adapters/out/rediscache"
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/core/ports"
	"littlelemon/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	policy     *services.AccessPolicy
	verifier   credentials.Verifier

	menuItemReader queries.MenuItemReader
	menuItemCache  ports.MenuItemCache

	closers []func() error
}

// NewCompositionRoot builds the shared infrastructure. Redis and Kafka are
// optional: without them menu reads go straight to the database and domain
// events are only logged.
func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{cfg: cfg, gormDB: gormDB, logger: logger}

	policy, err := loadAccessPolicy(cfg.AccessPolicyFile)
	if err != nil {
		return nil, err
	}
	c.policy = policy

	if c.verifier, err = newVerifier(ctx, cfg); err != nil {
		return nil, err
	}

	var publisher ports.EventPublisher = events.NewLoggingPublisher(logger)
	if brokers := cfg.KafkaBrokers(); len(brokers) > 0 {
		kafkaPublisher, err := events.NewKafkaPublisher(events.KafkaConfig{
			Brokers: brokers,
			Topic:   cfg.KafkaOrderEventsTopic,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
		}
		c.closers = append(c.closers, kafkaPublisher.Close)
		publisher = kafkaPublisher
	}
	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger)

	var reader queries.MenuItemReader = queries.NewGormMenuItemReader(gormDB)
	c.menuItemReader = reader
	c.menuItemCache = rediscache.NoopMenuItemCache{}
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err = client.Ping(ctx).Err(); err != nil {
			logger.WarnContext(ctx, "redis is unreachable, menu item reads will fall back to the database", "error", err)
		}
		c.closers = append(c.closers, client.Close)
		cache := rediscache.NewCacheAsideMenuItemReader(reader, client, cfg.MenuCacheTTL, logger)
		c.menuItemReader = cache
		c.menuItemCache = cache
	}

	return c, nil
}

func loadAccessPolicy(path string) (*services.AccessPolicy, error) {
	if path == "" {
		return services.DefaultAccessPolicy(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read access policy: %w", err)
	}
	return services.AccessPolicyFromYAML(data)
}

func newVerifier(ctx context.Context, cfg Config) (credentials.Verifier, error) {
	var chain credentials.Chain
	if cfg.AuthJWTSecret != "" {
		v, err := credentials.NewJWTVerifier(cfg.AuthJWTSecret)
		if err != nil {
			return nil, err
		}
		chain = append(chain, v)
	}
	if cfg.AuthOIDCIssuer != "" {
		v, err := credentials.NewOIDCVerifier(ctx, cfg.AuthOIDCIssuer, cfg.AuthOIDCClientID)
		if err != nil {
			return nil, fmt.Errorf("failed to discover OIDC issuer: %w", err)
		}
		chain = append(chain, v)
	}
	if len(chain) == 0 {
		return nil, errors.New("no token verifier configured")
	}
	return chain, nil
}

// Close releases the Kafka writer and the Redis client.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errList = append(errList, c.closers[i]())
	}
	return errors.Join(errList...)
}

func (c *CompositionRoot) Verifier() credentials.Verifier {
	return c.verifier
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) ratingUoWFactory() commands.RatingUoWFactory {
	return FuncRatingUoWFactory(func() commands.RatingUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) CreateResolvePrincipalCommandHandler() commands.ResolvePrincipalCommandHandler {
	return commands.NewResolvePrincipalCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	return commands.NewCreateCategoryCommandHandler(c.catalogUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.catalogUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.catalogUoWFactory(), c.policy, c.menuItemCache)
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	return commands.NewDeleteMenuItemCommandHandler(c.catalogUoWFactory(), c.policy, c.menuItemCache)
}

func (c *CompositionRoot) CreateRateMenuItemCommandHandler() commands.RateMenuItemCommandHandler {
	return commands.NewRateMenuItemCommandHandler(c.ratingUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateAddRoleMemberCommandHandler() commands.AddRoleMemberCommandHandler {
	return commands.NewAddRoleMemberCommandHandler(c.userUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateRemoveRoleMemberCommandHandler() commands.RemoveRoleMemberCommandHandler {
	return commands.NewRemoveRoleMemberCommandHandler(c.userUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateListCategoriesQueryHandler() queries.ListCategoriesQueryHandler {
	return queries.NewListCategoriesQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateListMenuItemsQueryHandler() queries.ListMenuItemsQueryHandler {
	return queries.NewListMenuItemsQueryHandler(c.gormDB, c.policy, queries.PageSize{
		Default: c.cfg.MenuDefaultPageSize,
		Max:     c.cfg.MenuMaxPageSize,
	})
}

func (c *CompositionRoot) CreateGetMenuItemQueryHandler() queries.GetMenuItemQueryHandler {
	return queries.NewGetMenuItemQueryHandler(c.menuItemReader, c.policy)
}

func (c *CompositionRoot) CreateListRatingsQueryHandler() queries.ListRatingsQueryHandler {
	return queries.NewListRatingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRoleMembersQueryHandler() queries.ListRoleMembersQueryHandler {
	return queries.NewListRoleMembersQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateListCartItemsQueryHandler() queries.ListCartItemsQueryHandler {
	return queries.NewListCartItemsQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetOrdersSummaryQueryHandler() queries.GetOrdersSummaryQueryHandler {
	return queries.NewGetOrdersSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOrdersSummaryQueryHandler(), c.cfg.ReportSchedule, c.logger)
}

func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		ResolvePrincipal: c.CreateResolvePrincipalCommandHandler(),

		CreateCategory:   c.CreateCreateCategoryCommandHandler(),
		CreateMenuItem:   c.CreateCreateMenuItemCommandHandler(),
		UpdateMenuItem:   c.CreateUpdateMenuItemCommandHandler(),
		DeleteMenuItem:   c.CreateDeleteMenuItemCommandHandler(),
		RateMenuItem:     c.CreateRateMenuItemCommandHandler(),
		AddRoleMember:    c.CreateAddRoleMemberCommandHandler(),
		RemoveRoleMember: c.CreateRemoveRoleMemberCommandHandler(),
		AddCartItem:      c.CreateAddCartItemCommandHandler(),
		ClearCart:        c.CreateClearCartCommandHandler(),
		PlaceOrder:       c.CreatePlaceOrderCommandHandler(),
		UpdateOrder:      c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:      c.CreateDeleteOrderCommandHandler(),

		ListCategories:  c.CreateListCategoriesQueryHandler(),
		ListMenuItems:   c.CreateListMenuItemsQueryHandler(),
		GetMenuItem:     c.CreateGetMenuItemQueryHandler(),
		ListRatings:     c.CreateListRatingsQueryHandler(),
		ListRoleMembers: c.CreateListRoleMembersQueryHandler(),
		ListCartItems:   c.CreateListCartItemsQueryHandler(),
		ListOrders:      c.CreateListOrdersQueryHandler(),
		GetOrder:        c.CreateGetOrderQueryHandler(),
	}
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
