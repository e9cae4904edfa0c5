package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweet-moments/storefront-api/internal/models"
)

func TestIdentityClient_EnsureUser(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		response    string
		wantOutcome models.IdentityOutcome
		wantErr     bool
	}{
		{
			name:        "created",
			status:      http.StatusOK,
			response:    `{"id":"u1","email":"alice@example.com"}`,
			wantOutcome: models.IdentityCreated,
		},
		{
			name:        "already registered",
			status:      http.StatusUnprocessableEntity,
			response:    `{"code":422,"error_code":"email_exists","msg":"A user with this email address has already been registered"}`,
			wantOutcome: models.IdentityAlreadyExists,
		},
		{
			name:        "conflict with structured code",
			status:      http.StatusConflict,
			response:    `{"error_code":"email_exists"}`,
			wantOutcome: models.IdentityAlreadyExists,
		},
		{
			name:        "validation failure is not existence",
			status:      http.StatusUnprocessableEntity,
			response:    `{"error_code":"validation_failed","msg":"invalid email"}`,
			wantOutcome: models.IdentityFailed,
			wantErr:     true,
		},
		{
			name:        "server error",
			status:      http.StatusInternalServerError,
			response:    `{"msg":"boom"}`,
			wantOutcome: models.IdentityFailed,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/auth/v1/admin/users", r.URL.Path)
				assert.Equal(t, "service-key", r.Header.Get("apikey"))
				assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))

				var body map[string]interface{}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "alice@example.com", body["email"])
				assert.Equal(t, true, body["email_confirm"])

				w.WriteHeader(tt.status)
				w.Write([]byte(tt.response))
			}))
			defer server.Close()

			client := NewIdentityClient(server.URL, "service-key")
			outcome, err := client.EnsureUser(context.Background(), "alice@example.com")

			assert.Equal(t, tt.wantOutcome, outcome)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIdentityClient_MintSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/admin/generate_link", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "magiclink", body["type"])
		assert.Equal(t, "alice@example.com", body["email"])

		json.NewEncoder(w).Encode(map[string]string{
			"action_link": "https://id.example.com/verify?token=abc#access_token=tok123&refresh_token=ref456&token_type=bearer",
		})
	}))
	defer server.Close()

	client := NewIdentityClient(server.URL, "service-key")
	fragment, err := client.MintSession(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "#access_token=tok123&refresh_token=ref456&token_type=bearer", fragment)
}

func TestIdentityClient_MintSessionNoFragment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"action_link": "https://id.example.com/verify?token=abc",
		})
	}))
	defer server.Close()

	client := NewIdentityClient(server.URL, "service-key")
	_, err := client.MintSession(context.Background(), "alice@example.com")
	assert.Error(t, err)
}

func TestIdentityClient_MintSessionProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"msg":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewIdentityClient(server.URL, "service-key")
	_, err := client.MintSession(context.Background(), "alice@example.com")
	assert.Error(t, err)
}
