package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweet-moments/storefront-api/internal/models"
)

func TestNotificationRelay_Publish(t *testing.T) {
	var mu sync.Mutex
	var received []map[string]interface{}
	var secrets []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &payload))

		mu.Lock()
		received = append(received, payload)
		secrets = append(secrets, r.Header.Get("X-Webhook-Secret"))
		mu.Unlock()

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	relay := NewNotificationRelay(server.URL, "topsecret")

	issued := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	relay.Publish(models.NewAuthCodeEvent("alice@example.com", "4821", "login", issued))
	relay.Publish(models.NewWelcomeEvent("alice@example.com"))

	// Close drains the queue before returning.
	relay.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 2)

	assert.Equal(t, "auth_code_request", received[0]["type"])
	assert.Equal(t, "alice@example.com", received[0]["email"])
	assert.Equal(t, "4821", received[0]["code"])
	assert.Equal(t, "login", received[0]["mode"])
	assert.Equal(t, "2026-03-01T09:00:00Z", received[0]["timestamp"])

	assert.Equal(t, "welcome_message", received[1]["type"])
	assert.Equal(t, "alice@example.com", received[1]["email"])

	assert.Equal(t, []string{"topsecret", "topsecret"}, secrets)
}

func TestNotificationRelay_UnconfiguredDropsEvents(t *testing.T) {
	relay := NewNotificationRelay("", "")

	relay.Publish(models.NewWelcomeEvent("alice@example.com"))
	relay.Close()
}

func TestNotificationRelay_RejectedDelivery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	relay := NewNotificationRelay(server.URL, "topsecret")
	relay.Publish(models.NewWelcomeEvent("alice@example.com"))

	// Rejection is swallowed; Close still returns cleanly.
	relay.Close()
}

func TestNotificationRelay_CloseIsIdempotent(t *testing.T) {
	relay := NewNotificationRelay("", "")
	relay.Close()
	relay.Close()
}
