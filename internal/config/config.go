package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"bookshelf-graphql/internal/infrastructure/database"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

// Config holds the whole application configuration.
// It is populated from environment variables.
type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database *database.DBConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	GraphQL  GraphQLConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
}

type StoreConfig struct {
	Driver       string // memory, postgres, mongo
	SeedDemoData bool
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Password string
	DB       int
	TTL      time.Duration
}

type GraphQLConfig struct {
	Path           string
	MaxConcurrency int
	MaxBodyBytes   int64
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	dbConfig, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Bookshelf GraphQL"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "4000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Store: StoreConfig{
			Driver:       strings.ToLower(getEnv("STORE_DRIVER", StoreMemory)),
			SeedDemoData: getEnvBool("SEED_DEMO_DATA", false),
		},
		Database: dbConfig,
		Mongo: MongoConfig{
			URI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGO_DATABASE", "bookshelf"),
			ConnectTimeout: getEnvDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      getEnvDuration("REDIS_TTL", 5*time.Minute),
		},
		GraphQL: GraphQLConfig{
			Path:           getEnv("GRAPHQL_PATH", "/graphql"),
			MaxConcurrency: getEnvInt("GRAPHQL_MAX_CONCURRENCY", 16),
			MaxBodyBytes:   int64(getEnvInt("GRAPHQL_MAX_BODY_BYTES", 1<<20)),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail late at startup.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory, StorePostgres, StoreMongo:
	default:
		return fmt.Errorf("STORE_DRIVER must be one of %s, %s, %s; got %q",
			StoreMemory, StorePostgres, StoreMongo, c.Store.Driver)
	}

	if !strings.HasPrefix(c.GraphQL.Path, "/") {
		return fmt.Errorf("GRAPHQL_PATH must start with '/'")
	}
	if c.GraphQL.MaxConcurrency < 1 {
		return fmt.Errorf("GRAPHQL_MAX_CONCURRENCY must be positive")
	}
	if c.GraphQL.MaxBodyBytes < 1 {
		return fmt.Errorf("GRAPHQL_MAX_BODY_BYTES must be positive")
	}
	if c.Redis.Enabled && c.Redis.TTL <= 0 {
		return fmt.Errorf("REDIS_TTL must be positive when REDIS_ENABLED is set")
	}

	if c.IsProduction() {
		if c.Store.Driver == StorePostgres && c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.Store.Driver == StoreMemory {
			return fmt.Errorf("STORE_DRIVER=memory is not allowed in production")
		}
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
