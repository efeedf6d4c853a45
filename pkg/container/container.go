package container

import (
	"context"
	"fmt"
	"time"

	"bookshelf-graphql/internal/config"
	authorRepo "bookshelf-graphql/internal/domains/author/repository"
	authorService "bookshelf-graphql/internal/domains/author/service"
	bookRepo "bookshelf-graphql/internal/domains/book/repository"
	bookService "bookshelf-graphql/internal/domains/book/service"
	userRepo "bookshelf-graphql/internal/domains/user/repository"
	userService "bookshelf-graphql/internal/domains/user/service"
	"bookshelf-graphql/internal/graphql/executor"
	"bookshelf-graphql/internal/graphql/handler"
	"bookshelf-graphql/internal/graphql/resolver"
	"bookshelf-graphql/internal/graphql/schema"
	infraCache "bookshelf-graphql/internal/infrastructure/cache"
	"bookshelf-graphql/internal/infrastructure/database"
	"bookshelf-graphql/internal/infrastructure/mongodb"
	"bookshelf-graphql/internal/seed"
	"bookshelf-graphql/pkg/cache"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Container is the root of the dependency graph.
// Initialization order: config, stores, cache, repositories, services, GraphQL.
type Container struct {
	Config *config.Config

	// Infrastructure. DB and Mongo are nil unless selected by STORE_DRIVER,
	// Cache is nil unless REDIS_ENABLED is set.
	DB    *database.PostgresDB
	Mongo *mongodb.Client
	Cache cache.Cache

	AuthorRepo authorRepo.RepositoryInterface
	BookRepo   bookRepo.RepositoryInterface
	UserRepo   userRepo.RepositoryInterface

	AuthorService authorService.ServiceInterface
	BookService   bookService.ServiceInterface
	UserService   userService.ServiceInterface

	Executor       *executor.Executor
	GraphQLHandler *handler.GraphQLHandler
	Seeder         *seed.Seeder
}

// NewContainer loads the configuration from the environment and builds the graph.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return New(ctx, cfg)
}

// New builds the graph for cfg. On error every resource opened so far is released.
func New(ctx context.Context, cfg *config.Config) (_ *Container, err error) {
	log.Info().Str("env", cfg.App.Environment).Str("store", cfg.Store.Driver).Msg("initializing container")

	c := &Container{Config: cfg}
	defer func() {
		if err != nil {
			c.Cleanup()
		}
	}()

	if err = c.initStores(ctx); err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}
	if err = c.initCache(ctx); err != nil {
		return nil, fmt.Errorf("failed to init cache: %w", err)
	}
	c.initRepositories()
	c.initServices()
	if err = c.initGraphQL(); err != nil {
		return nil, fmt.Errorf("failed to init graphql: %w", err)
	}

	if cfg.Store.SeedDemoData {
		if _, err = c.Seeder.Run(ctx, false); err != nil {
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	log.Info().Msg("container initialized")
	return c, nil
}

func (c *Container) initStores(ctx context.Context) error {
	switch c.Config.Store.Driver {
	case config.StorePostgres:
		db := database.NewPostgresDB(c.Config.Database)

		connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		if err := db.Connect(connectCtx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db

		if err := db.HealthCheck(ctx); err != nil {
			return fmt.Errorf("database health check failed: %w", err)
		}
		if err := database.EnsureSchema(ctx, db.Pool); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}

	case config.StoreMongo:
		client := mongodb.New(mongodb.Config{
			URI:            c.Config.Mongo.URI,
			Database:       c.Config.Mongo.Database,
			ConnectTimeout: c.Config.Mongo.ConnectTimeout,
		})
		if err := client.Connect(ctx); err != nil {
			return err
		}
		c.Mongo = client
	}
	return nil
}

// initCache is non-critical: a Redis that cannot be reached is logged and skipped.
func (c *Container) initCache(ctx context.Context) error {
	if !c.Config.Redis.Enabled {
		return nil
	}

	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)
	if err := redisCache.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("redis connection failed, continuing without cache")
		_ = redisCache.Close()
		return nil
	}
	c.Cache = redisCache
	return nil
}

func (c *Container) initRepositories() {
	switch {
	case c.DB != nil:
		c.AuthorRepo = authorRepo.NewPostgresRepository(c.DB.Pool)
		c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool)
		c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool)
	case c.Mongo != nil:
		c.AuthorRepo = authorRepo.NewMongoRepository(c.Mongo.Database)
		c.BookRepo = bookRepo.NewMongoRepository(c.Mongo.Database)
		c.UserRepo = userRepo.NewMongoRepository(c.Mongo.Database)
	default:
		c.AuthorRepo = authorRepo.NewMemoryRepository()
		c.BookRepo = bookRepo.NewMemoryRepository()
		c.UserRepo = userRepo.NewMemoryRepository()
	}

	if c.Cache != nil {
		c.AuthorRepo = authorRepo.NewCachedRepository(c.AuthorRepo, c.Cache, c.Config.Redis.TTL)
		c.BookRepo = bookRepo.NewCachedRepository(c.BookRepo, c.Cache, c.Config.Redis.TTL)
	}
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)

	authors := c.AuthorService
	linker := bookService.AuthorLinkerFunc(func(ctx context.Context, authorID, bookID uuid.UUID) error {
		_, err := authors.LinkBook(ctx, authorID, bookID)
		return err
	})
	c.BookService = bookService.NewBookService(c.BookRepo, linker)
	c.UserService = userService.NewUserService(c.UserRepo)

	c.Seeder = seed.New(c.AuthorService, c.BookService, c.UserService)
}

func (c *Container) initGraphQL() error {
	s, err := schema.Load()
	if err != nil {
		return err
	}

	r := resolver.New(c.AuthorService, c.BookService, c.UserService)
	exec, err := resolver.NewExecutor(s, r, executor.WithMaxConcurrency(c.Config.GraphQL.MaxConcurrency))
	if err != nil {
		return err
	}

	c.Executor = exec
	c.GraphQLHandler = handler.NewGraphQLHandler(exec, c.Config.GraphQL.MaxBodyBytes)
	return nil
}

// HealthCheck reports the status of each configured backend.
// The error is non-nil when the primary store is unhealthy; cache failures only degrade.
func (c *Container) HealthCheck(ctx context.Context) (map[string]string, error) {
	status := map[string]string{"store": c.Config.Store.Driver}
	var storeErr error

	switch {
	case c.DB != nil:
		storeErr = c.DB.HealthCheck(ctx)
	case c.Mongo != nil:
		storeErr = c.Mongo.HealthCheck(ctx)
	}
	if storeErr != nil {
		status["database"] = "unhealthy"
	} else {
		status["database"] = "healthy"
	}

	switch {
	case c.Cache == nil:
		status["cache"] = "disabled"
	case c.Cache.Ping(ctx) != nil:
		status["cache"] = "degraded"
	default:
		status["cache"] = "healthy"
	}

	return status, storeErr
}

// Cleanup releases every opened resource. Called on graceful shutdown.
func (c *Container) Cleanup() {
	log.Info().Msg("cleaning up container resources")

	if c.DB != nil {
		c.DB.Close()
		c.DB = nil
	}

	if c.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := c.Mongo.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to disconnect mongodb")
		}
		cancel()
		c.Mongo = nil
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis")
		}
	}
	c.Cache = nil
}
