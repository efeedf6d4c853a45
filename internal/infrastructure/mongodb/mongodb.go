package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// Client owns the MongoDB connection and the selected database.
type Client struct {
	Client   *mongo.Client
	Database *mongo.Database
	config   Config
}

func New(config Config) *Client {
	if config.ConnectTimeout <= 0 {
		config.ConnectTimeout = 10 * time.Second
	}
	return &Client{config: config}
}

func (c *Client) Connect(ctx context.Context) error {
	log.Info().Str("database", c.config.Database).Msg("[MONGODB] Connecting")

	connectCtx, cancel := context.WithTimeout(ctx, c.config.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(c.config.URI).
		SetConnectTimeout(c.config.ConnectTimeout).
		SetServerSelectionTimeout(c.config.ConnectTimeout)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return fmt.Errorf("mongodb connect failed: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("mongodb ping failed: %w", err)
	}

	c.Client = client
	c.Database = client.Database(c.config.Database)

	log.Info().Str("database", c.config.Database).Msg("[MONGODB] Connected")
	return nil
}

func (c *Client) HealthCheck(ctx context.Context) error {
	if c.Client == nil {
		return fmt.Errorf("mongodb client is not initialized")
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := c.Client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb ping failed: %w", err)
	}
	return nil
}

func (c *Client) Close(ctx context.Context) error {
	if c.Client == nil {
		return nil
	}
	log.Info().Msg("[MONGODB] Disconnecting")
	err := c.Client.Disconnect(ctx)
	c.Client = nil
	c.Database = nil
	return err
}
