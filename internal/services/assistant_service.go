package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sweet-moments/storefront-api/internal/models"
	"github.com/sweet-moments/storefront-api/internal/observability"
	"github.com/sweet-moments/storefront-api/internal/utils/httpclient"
	"go.uber.org/zap"
)

const (
	explainModel = "gemini-3-flash-preview"
	mockupModel  = "gemini-2.5-flash-image"

	// fallbackExplanation is shown when the generative service is
	// unavailable; the storefront degrades gracefully rather than erroring.
	fallbackExplanation = "A premium selection for your bespoke cake."
)

// AssistantService proxies the storefront's generative-AI features: cake
// term explanations, visual mockups, and the chat assistant webhook.
type AssistantService struct {
	geminiBaseURL string
	geminiAPIKey  string
	chatURL       string
	relaySecret   string
	pool          *httpclient.Pool
	logger        *zap.Logger
}

// NewAssistantService creates the assistant service.
func NewAssistantService(geminiBaseURL, geminiAPIKey, chatURL, relaySecret string) *AssistantService {
	return &AssistantService{
		geminiBaseURL: strings.TrimRight(geminiBaseURL, "/"),
		geminiAPIKey:  geminiAPIKey,
		chatURL:       chatURL,
		relaySecret:   relaySecret,
		pool:          httpclient.GetGlobalPool(),
		logger:        observability.Logger(),
	}
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiGenerationConfig struct {
	ImageConfig *geminiImageConfig `json:"imageConfig,omitempty"`
}

type geminiImageConfig struct {
	AspectRatio string `json:"aspectRatio"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Explain returns a short explanation of a cake term. Provider failures fall
// back to neutral copy; the storefront never surfaces an error for this.
func (s *AssistantService) Explain(ctx context.Context, term, category string) string {
	if s.geminiAPIKey == "" {
		return fallbackExplanation
	}

	prompt := fmt.Sprintf(`You are a professional artisan baker. Briefly explain what %q is in the context of a cake's %q.
Keep the explanation under 30 words, elegant, and helpful for someone who isn't a baker.
Focus on the sensory experience (taste/texture/look).`, term, category)

	resp, err := s.generate(ctx, explainModel, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		s.logger.Warn("term explanation failed", zap.String("term", term), zap.Error(err))
		return fallbackExplanation
	}

	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return fallbackExplanation
}

// Mockup generates a photographic cake mockup and returns it as a data URL.
func (s *AssistantService) Mockup(ctx context.Context, req *models.MockupRequest) (string, error) {
	if s.geminiAPIKey == "" {
		return "", models.ErrAssistantUnavailable
	}

	prompt := fmt.Sprintf(`A professional, high-end food photography shot of a %s cake.
Culinary Details:
- Base Flavour: %s
- Filling: %s
- Frosting: %s
- Custom Elements: %s

Aesthetic Direction: Premium artisan bakery style, elegant presentation on a ceramic pedestal, soft natural morning light, magazine-quality, Ottolenghi aesthetic.
The photograph should look like a real, finished custom cake from a luxury bakery.`,
		req.Type, req.Flavour, req.Filling, req.Frosting, req.Message)

	parts := []geminiPart{{Text: prompt}}
	if req.InspirationImage != nil {
		parts[0].Text += "\nIncorporate the visual style, color palette, or decorative spirit of the attached inspiration image into this specific cake type."
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{
			MimeType: req.InspirationImage.MimeType,
			Data:     req.InspirationImage.Data,
		}})
	}

	resp, err := s.generate(ctx, mockupModel, geminiRequest{
		Contents:         []geminiContent{{Parts: parts}},
		GenerationConfig: &geminiGenerationConfig{ImageConfig: &geminiImageConfig{AspectRatio: "1:1"}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrAssistantUnavailable, err)
	}

	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				return "data:image/png;base64," + part.InlineData.Data, nil
			}
		}
	}
	return "", fmt.Errorf("%w: response carried no image", models.ErrAssistantUnavailable)
}

func (s *AssistantService) generate(ctx context.Context, model string, payload geminiRequest) (*geminiResponse, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generation request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.geminiBaseURL, model, s.geminiAPIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.pool.Get()
	defer s.pool.Put(client)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read generation response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generation request failed with status %d", resp.StatusCode)
	}

	var out geminiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode generation response: %w", err)
	}
	return &out, nil
}

// Chat forwards a customer message to the chat automation webhook and
// returns its reply.
func (s *AssistantService) Chat(ctx context.Context, req *models.ChatRequest) (string, error) {
	if s.chatURL == "" {
		return "", models.ErrChatNotConfigured
	}

	jsonBody, err := json.Marshal(map[string]string{
		"message":   req.Message,
		"sessionId": req.SessionID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.chatURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.relaySecret != "" {
		httpReq.Header.Set(relaySecretHeader, s.relaySecret)
	}

	client := s.pool.Get()
	defer s.pool.Put(client)

	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("chat webhook failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read chat response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat webhook failed with status %d", resp.StatusCode)
	}

	var chatResp struct {
		Output  string `json:"output"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	if chatResp.Output != "" {
		return chatResp.Output, nil
	}
	return chatResp.Message, nil
}
