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

func TestAssistantService_Explain(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-3-flash-preview:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Contains(t, req, "contents")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]interface{}{
						{"text": "A silky Italian buttercream with a glossy finish."},
					},
				}},
			},
		})
	}))
	defer server.Close()

	svc := NewAssistantService(server.URL, "test-key", "", "")
	text := svc.Explain(context.Background(), "Swiss Meringue", "frosting")
	assert.Equal(t, "A silky Italian buttercream with a glossy finish.", text)
}

func TestAssistantService_ExplainFallsBack(t *testing.T) {
	t.Run("no api key", func(t *testing.T) {
		svc := NewAssistantService("http://unused", "", "", "")
		assert.Equal(t, fallbackExplanation, svc.Explain(context.Background(), "Ganache", "filling"))
	})

	t.Run("provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer server.Close()

		svc := NewAssistantService(server.URL, "test-key", "", "")
		assert.Equal(t, fallbackExplanation, svc.Explain(context.Background(), "Ganache", "filling"))
	})

	t.Run("empty response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
		}))
		defer server.Close()

		svc := NewAssistantService(server.URL, "test-key", "", "")
		assert.Equal(t, fallbackExplanation, svc.Explain(context.Background(), "Ganache", "filling"))
	})
}

func TestAssistantService_Mockup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash-image:generateContent", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		genConfig, ok := req["generationConfig"].(map[string]interface{})
		require.True(t, ok)
		imageConfig, ok := genConfig["imageConfig"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "1:1", imageConfig["aspectRatio"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]interface{}{
						{"inlineData": map[string]interface{}{"mimeType": "image/png", "data": "aW1hZ2U="}},
					},
				}},
			},
		})
	}))
	defer server.Close()

	svc := NewAssistantService(server.URL, "test-key", "", "")
	image, err := svc.Mockup(context.Background(), &models.MockupRequest{
		Type:     "Celebration Cake",
		Flavour:  "Vanilla",
		Frosting: "Buttercream",
	})
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,aW1hZ2U=", image)
}

func TestAssistantService_MockupUnavailable(t *testing.T) {
	t.Run("no api key", func(t *testing.T) {
		svc := NewAssistantService("http://unused", "", "", "")
		_, err := svc.Mockup(context.Background(), &models.MockupRequest{Type: "Cake", Flavour: "Vanilla"})
		assert.ErrorIs(t, err, models.ErrAssistantUnavailable)
	})

	t.Run("no image in response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
		}))
		defer server.Close()

		svc := NewAssistantService(server.URL, "test-key", "", "")
		_, err := svc.Mockup(context.Background(), &models.MockupRequest{Type: "Cake", Flavour: "Vanilla"})
		assert.ErrorIs(t, err, models.ErrAssistantUnavailable)
	})
}

func TestAssistantService_Chat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "chat-secret", r.Header.Get("X-Webhook-Secret"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Do you deliver on Sundays?", req["message"])
		assert.Equal(t, "sess-1", req["sessionId"])

		json.NewEncoder(w).Encode(map[string]string{"output": "We deliver every day except Mondays."})
	}))
	defer server.Close()

	svc := NewAssistantService("http://unused", "", server.URL, "chat-secret")
	output, err := svc.Chat(context.Background(), &models.ChatRequest{
		Message:   "Do you deliver on Sundays?",
		SessionID: "sess-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "We deliver every day except Mondays.", output)
}

func TestAssistantService_ChatFallsBackToMessageField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "Hello!"})
	}))
	defer server.Close()

	svc := NewAssistantService("http://unused", "", server.URL, "")
	output, err := svc.Chat(context.Background(), &models.ChatRequest{Message: "Hi"})
	require.NoError(t, err)
	assert.Equal(t, "Hello!", output)
}

func TestAssistantService_ChatNotConfigured(t *testing.T) {
	svc := NewAssistantService("http://unused", "", "", "")
	_, err := svc.Chat(context.Background(), &models.ChatRequest{Message: "Hi"})
	assert.ErrorIs(t, err, models.ErrChatNotConfigured)
}
