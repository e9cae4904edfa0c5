package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweet-moments/storefront-api/internal/models"
	"github.com/sweet-moments/storefront-api/internal/services"
)

func assistantRouter(svc *services.AssistantService) *gin.Engine {
	h := NewAssistantHandlers(svc)
	router := gin.New()
	router.POST("/assistant/explain", h.Explain)
	router.POST("/assistant/mockup", h.Mockup)
	router.POST("/chat", h.Chat)
	return router
}

func TestExplainAlwaysSucceeds(t *testing.T) {
	// No API key configured; the endpoint still answers with fallback copy.
	router := assistantRouter(services.NewAssistantService("http://unused", "", "", ""))

	w := postJSON(t, router, "/assistant/explain", `{"term":"Ganache","category":"filling"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["text"])
}

func TestExplainBadBody(t *testing.T) {
	router := assistantRouter(services.NewAssistantService("http://unused", "", "", ""))

	w := postJSON(t, router, "/assistant/explain", `{"term":"Ganache"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMockupUnavailable(t *testing.T) {
	router := assistantRouter(services.NewAssistantService("http://unused", "", "", ""))

	w := postJSON(t, router, "/assistant/mockup", `{"type":"Classic Round","flavour":"Madagascar Vanilla"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestChatFallsBackWhenUnconfigured(t *testing.T) {
	router := assistantRouter(services.NewAssistantService("http://unused", "", "", ""))

	w := postJSON(t, router, "/chat", `{"message":"Do you deliver?"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, chatFallback, resp.Output)
}

func TestChatPassesThroughWebhookReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"output": "We deliver locally for a flat fee."})
	}))
	defer server.Close()

	router := assistantRouter(services.NewAssistantService("http://unused", "", server.URL, "secret"))

	w := postJSON(t, router, "/chat", `{"message":"Do you deliver?","sessionId":"sess-1"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "We deliver locally for a flat fee.", resp.Output)
}
