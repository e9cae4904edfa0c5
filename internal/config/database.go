package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sweet-moments/storefront-api/internal/logging"
	"github.com/sweet-moments/storefront-api/internal/redisclient"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.uber.org/zap"
)

// InitMongoDB connects to MongoDB and ensures the indexes this service relies on.
func InitMongoDB(cfg *Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetMonitor(otelmongo.NewMonitor()).
		SetMaxPoolSize(100).
		SetMinPoolSize(10).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(cfg.MongoDatabase)

	if err := ensureIndexes(ctx, cfg, db); err != nil {
		logging.Logger.Error("failed to ensure indexes on startup", zap.Error(err))
	}

	return db, nil
}

// ensureIndexes creates the indexes the storefront queries depend on. Index
// creation is idempotent, so re-running on startup is safe.
func ensureIndexes(ctx context.Context, cfg *Config, db *mongo.Database) error {
	authCodeIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection(cfg.AuthCodeCollection).Indexes().CreateMany(ctx, authCodeIndexes); err != nil {
		return fmt.Errorf("auth code indexes: %w", err)
	}

	orderIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "customer_email", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	if _, err := db.Collection(cfg.OrderCollection).Indexes().CreateMany(ctx, orderIndexes); err != nil {
		return fmt.Errorf("order indexes: %w", err)
	}

	enquiryIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	if _, err := db.Collection(cfg.EnquiryCollection).Indexes().CreateMany(ctx, enquiryIndexes); err != nil {
		return fmt.Errorf("enquiry indexes: %w", err)
	}

	faqIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "order_index", Value: 1}}},
	}
	if _, err := db.Collection(cfg.FAQCollection).Indexes().CreateMany(ctx, faqIndexes); err != nil {
		return fmt.Errorf("faq indexes: %w", err)
	}

	return nil
}

// InitRedis connects to Redis and wraps the client with tracing.
func InitRedis(cfg *Config) (*redisclient.Client, error) {
	opts, err := redis.ParseURL(cfg.RedisURI)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URI: %w", err)
	}
	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}
	opts.DB = cfg.RedisDB

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return redisclient.NewClient(client), nil
}
