package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweet-moments/storefront-api/internal/services"
)

func TestMongoCodeStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	tc := SetupTestContainers(t)
	defer tc.Cleanup()

	store := services.NewMongoCodeStore(tc.MongoDB.Collection("auth_codes"))
	ctx := context.Background()

	issued := time.Now().UTC().Truncate(time.Millisecond)
	expiry := issued.Add(10 * time.Minute)

	t.Run("upsert and find", func(t *testing.T) {
		require.NoError(t, store.Upsert(ctx, "alice@example.com", "1234", issued, expiry))

		pending, err := store.Find(ctx, "alice@example.com", "1234")
		require.NoError(t, err)
		require.NotNil(t, pending)
		assert.Equal(t, "alice@example.com", pending.Email)
		assert.Equal(t, "1234", pending.Code)
		assert.WithinDuration(t, expiry, pending.ExpiresAt, time.Millisecond)
	})

	t.Run("find requires exact code match", func(t *testing.T) {
		pending, err := store.Find(ctx, "alice@example.com", "9999")
		require.NoError(t, err)
		assert.Nil(t, pending)
	})

	t.Run("find unknown email", func(t *testing.T) {
		pending, err := store.Find(ctx, "nobody@example.com", "1234")
		require.NoError(t, err)
		assert.Nil(t, pending)
	})

	t.Run("upsert overwrites previous code", func(t *testing.T) {
		require.NoError(t, store.Upsert(ctx, "alice@example.com", "5678", issued, expiry))

		old, err := store.Find(ctx, "alice@example.com", "1234")
		require.NoError(t, err)
		assert.Nil(t, old, "old code must be dead after overwrite")

		current, err := store.Find(ctx, "alice@example.com", "5678")
		require.NoError(t, err)
		require.NotNil(t, current)
	})

	t.Run("delete consumes the code", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "alice@example.com"))

		pending, err := store.Find(ctx, "alice@example.com", "5678")
		require.NoError(t, err)
		assert.Nil(t, pending)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "alice@example.com"))
	})
}
