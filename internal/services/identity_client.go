package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sweet-moments/storefront-api/internal/models"
	"github.com/sweet-moments/storefront-api/internal/observability"
	"github.com/sweet-moments/storefront-api/internal/utils/httpclient"
	"go.uber.org/zap"
)

// IdentityProvider is the upstream auth service the handshake exchanges a
// verified email for a session with. The session artifact is opaque here;
// the client redeems it with the provider directly.
type IdentityProvider interface {
	EnsureUser(ctx context.Context, email string) (models.IdentityOutcome, error)
	MintSession(ctx context.Context, email string) (string, error)
}

// IdentityClient talks to a GoTrue-style admin API using the service-role
// credential.
type IdentityClient struct {
	baseURL    string
	serviceKey string
	pool       *httpclient.Pool
	logger     *zap.Logger
}

// NewIdentityClient creates an identity provider client.
func NewIdentityClient(baseURL, serviceKey string) *IdentityClient {
	return &IdentityClient{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		pool:       httpclient.GetGlobalPool(),
		logger:     observability.Logger(),
	}
}

type adminUserRequest struct {
	Email        string `json:"email"`
	EmailConfirm bool   `json:"email_confirm"`
}

type providerError struct {
	ErrorCode string `json:"error_code"`
	Msg       string `json:"msg"`
	Message   string `json:"message"`
}

type generateLinkRequest struct {
	Type  string `json:"type"`
	Email string `json:"email"`
}

type generateLinkResponse struct {
	ActionLink string `json:"action_link"`
}

// EnsureUser creates a pre-confirmed identity for email if none exists. The
// provider's structured error code distinguishes "already registered" from a
// real failure; the outcome is typed so callers never match on message text.
func (c *IdentityClient) EnsureUser(ctx context.Context, email string) (models.IdentityOutcome, error) {
	body, status, err := c.post(ctx, "/auth/v1/admin/users", adminUserRequest{
		Email:        email,
		EmailConfirm: true,
	})
	if err != nil {
		return models.IdentityFailed, err
	}

	switch {
	case status == http.StatusOK || status == http.StatusCreated:
		return models.IdentityCreated, nil
	case status == http.StatusUnprocessableEntity || status == http.StatusConflict:
		var perr providerError
		if jsonErr := json.Unmarshal(body, &perr); jsonErr == nil && perr.ErrorCode == "email_exists" {
			return models.IdentityAlreadyExists, nil
		}
		return models.IdentityFailed, fmt.Errorf("identity creation rejected with status %d", status)
	default:
		return models.IdentityFailed, fmt.Errorf("identity creation failed with status %d", status)
	}
}

// MintSession asks the provider for a magiclink and returns the redeemable
// URL fragment carried on the action link. The fragment includes its leading
// "#" so the client can apply it to the location hash directly.
func (c *IdentityClient) MintSession(ctx context.Context, email string) (string, error) {
	body, status, err := c.post(ctx, "/auth/v1/admin/generate_link", generateLinkRequest{
		Type:  "magiclink",
		Email: email,
	})
	if err != nil {
		return "", err
	}

	if status != http.StatusOK {
		return "", fmt.Errorf("generate link failed with status %d", status)
	}

	var resp generateLinkResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode generate link response: %w", err)
	}

	link, err := url.Parse(resp.ActionLink)
	if err != nil {
		return "", fmt.Errorf("failed to parse action link: %w", err)
	}
	if link.Fragment == "" {
		return "", fmt.Errorf("action link carries no session fragment")
	}

	return "#" + link.Fragment, nil
}

func (c *IdentityClient) post(ctx context.Context, path string, payload interface{}) ([]byte, int, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	client := c.pool.Get()
	defer c.pool.Put(client)

	resp, err := client.Do(req)
	if err != nil {
		c.logger.Error("identity provider request failed", zap.String("path", path), zap.Error(err))
		return nil, 0, fmt.Errorf("identity provider request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read identity provider response: %w", err)
	}

	return body, resp.StatusCode, nil
}
