package tests

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/sweet-moments/storefront-api/internal/logging"
	"github.com/sweet-moments/storefront-api/internal/redisclient"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestContainers holds references to test containers
type TestContainers struct {
	MongoContainer *mongodb.MongoDBContainer
	RedisContainer *redis.RedisContainer
	MongoDB        *mongo.Database
	Redis          *redisclient.Client
	Cleanup        func()
}

// SetupTestContainers starts MongoDB and Redis containers for testing
func SetupTestContainers(t *testing.T) *TestContainers {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, logging.InitLogger())

	mongoContainer, err := mongodb.Run(ctx,
		"mongo:7.0",
		mongodb.WithUsername("root"),
		mongodb.WithPassword("password"),
	)
	require.NoError(t, err, "Failed to start MongoDB container")

	redisContainer, err := redis.Run(ctx,
		"redis:7-alpine",
	)
	require.NoError(t, err, "Failed to start Redis container")

	mongoURI, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err, "Failed to get MongoDB connection string")

	redisURI, err := redisContainer.ConnectionString(ctx)
	require.NoError(t, err, "Failed to get Redis connection string")

	clientOptions := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(ctx, clientOptions)
	require.NoError(t, err, "Failed to connect to MongoDB")

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	require.NoError(t, mongoClient.Ping(pingCtx, nil), "Failed to ping MongoDB")

	redisOpts, err := goredis.ParseURL(redisURI)
	require.NoError(t, err, "Failed to parse Redis connection string")
	rawRedis := goredis.NewClient(redisOpts)
	require.NoError(t, rawRedis.Ping(ctx).Err(), "Failed to ping Redis")

	cleanup := func() {
		_ = mongoClient.Disconnect(ctx)
		_ = rawRedis.Close()
		_ = redisContainer.Terminate(ctx)
		_ = mongoContainer.Terminate(ctx)
	}

	return &TestContainers{
		MongoContainer: mongoContainer,
		RedisContainer: redisContainer,
		MongoDB:        mongoClient.Database("storefront_test"),
		Redis:          redisclient.NewClient(rawRedis),
		Cleanup:        cleanup,
	}
}
