package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sweet-moments/storefront-api/internal/models"
	"github.com/sweet-moments/storefront-api/internal/observability"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CodeStore is the keyed record store for pending one-time codes. At most one
// record exists per email; Upsert replaces any previous one. Find matches
// email and code exactly and does not consider expiry — the handshake checks
// expiry explicitly so cleanup can also enforce single use.
type CodeStore interface {
	Upsert(ctx context.Context, email, code string, createdAt, expiresAt time.Time) error
	Find(ctx context.Context, email, code string) (*models.PendingCode, error)
	Delete(ctx context.Context, email string) error
}

// MongoCodeStore stores pending codes in a MongoDB collection with a unique
// index on email.
type MongoCodeStore struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewMongoCodeStore creates a code store backed by the given collection.
func NewMongoCodeStore(coll *mongo.Collection) *MongoCodeStore {
	return &MongoCodeStore{
		coll:   coll,
		logger: observability.Logger(),
	}
}

// Upsert writes the pending code for email, replacing any existing one.
func (s *MongoCodeStore) Upsert(ctx context.Context, email, code string, createdAt, expiresAt time.Time) error {
	update := bson.M{
		"$set": bson.M{
			"code":       code,
			"created_at": createdAt,
			"expires_at": expiresAt,
		},
	}

	_, err := s.coll.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("auth_code_upsert", "error").Inc()
		return fmt.Errorf("failed to upsert pending code: %w", err)
	}

	observability.DatabaseOperations.WithLabelValues("auth_code_upsert", "success").Inc()
	return nil
}

// Find returns the pending code matching both email and code exactly, or
// (nil, nil) when no such record exists.
func (s *MongoCodeStore) Find(ctx context.Context, email, code string) (*models.PendingCode, error) {
	var pending models.PendingCode
	err := s.coll.FindOne(ctx, bson.M{"email": email, "code": code}).Decode(&pending)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		observability.DatabaseOperations.WithLabelValues("auth_code_find", "error").Inc()
		return nil, fmt.Errorf("failed to find pending code: %w", err)
	}

	observability.DatabaseOperations.WithLabelValues("auth_code_find", "success").Inc()
	return &pending, nil
}

// Delete removes the pending code for email. Deleting a missing record is
// not an error.
func (s *MongoCodeStore) Delete(ctx context.Context, email string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("auth_code_delete", "error").Inc()
		return fmt.Errorf("failed to delete pending code: %w", err)
	}

	observability.DatabaseOperations.WithLabelValues("auth_code_delete", "success").Inc()
	return nil
}
