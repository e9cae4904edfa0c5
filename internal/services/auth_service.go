package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sweet-moments/storefront-api/internal/models"
	"github.com/sweet-moments/storefront-api/internal/observability"
	"github.com/sweet-moments/storefront-api/internal/redisclient"
	"github.com/sweet-moments/storefront-api/internal/utils"
	"go.uber.org/zap"
)

// Cooldown limits how often a single email may re-request a code.
type Cooldown interface {
	// TryAcquire returns false while a previous acquisition for key is still
	// within the cooldown window.
	TryAcquire(ctx context.Context, key string) (bool, error)
}

// RedisCooldown implements Cooldown with a SET NX key per email.
type RedisCooldown struct {
	redis  *redisclient.Client
	window time.Duration
}

// NewRedisCooldown creates a cooldown with the given window.
func NewRedisCooldown(redis *redisclient.Client, window time.Duration) *RedisCooldown {
	return &RedisCooldown{redis: redis, window: window}
}

// TryAcquire attempts to take the cooldown slot for key.
func (c *RedisCooldown) TryAcquire(ctx context.Context, key string) (bool, error) {
	ok, err := c.redis.SetNX(ctx, "auth:cooldown:"+key, 1, c.window).Result()
	if err != nil {
		return false, fmt.Errorf("cooldown check failed: %w", err)
	}
	return ok, nil
}

// AuthService orchestrates the one-time code handshake: request a code,
// store it, relay it for delivery, verify it, exchange the verified email
// for a session with the identity provider, and consume the code.
type AuthService struct {
	store     CodeStore
	generator *CodeGenerator
	identity  IdentityProvider
	relay     RelayPublisher
	cooldown  Cooldown
	now       func() time.Time
	logger    *zap.Logger
}

// NewAuthService creates the handshake service. cooldown may be nil to
// disable resend throttling.
func NewAuthService(store CodeStore, generator *CodeGenerator, identity IdentityProvider, relay RelayPublisher, cooldown Cooldown) *AuthService {
	return &AuthService{
		store:     store,
		generator: generator,
		identity:  identity,
		relay:     relay,
		cooldown:  cooldown,
		now:       time.Now,
		logger:    observability.Logger(),
	}
}

// RequestCode issues a fresh one-time code for email, overwriting a previous
// unconsumed one, and hands it to the relay for delivery. The code never
// appears in the return path.
func (s *AuthService) RequestCode(ctx context.Context, email, mode string) error {
	logger := s.logger.With(zap.String("email", observability.MaskEmail(email)))

	if !utils.ValidateEmail(email) {
		observability.AuthCodeRequests.WithLabelValues("invalid_email").Inc()
		return models.ErrInvalidEmail
	}

	if s.cooldown != nil {
		ok, err := s.cooldown.TryAcquire(ctx, email)
		if err != nil {
			// Cooldown is a throttle, not a correctness gate; fail open.
			logger.Warn("cooldown check failed, allowing request", zap.Error(err))
		} else if !ok {
			observability.AuthCodeRequests.WithLabelValues("cooldown").Inc()
			return models.ErrResendCooldown
		}
	}

	code, expiresAt := s.generator.Generate()

	if err := s.store.Upsert(ctx, email, code, s.now(), expiresAt); err != nil {
		observability.AuthCodeRequests.WithLabelValues("store_error").Inc()
		logger.Error("failed to store pending code", zap.Error(err))
		return fmt.Errorf("%w: %v", models.ErrCodeStore, err)
	}

	// The code is now authoritative; delivery is a separate best-effort
	// concern and must not fail the request.
	s.relay.Publish(models.NewAuthCodeEvent(email, code, mode, s.now()))

	observability.AuthCodeRequests.WithLabelValues("success").Inc()
	logger.Info("one-time code issued", zap.Time("expires_at", expiresAt))
	return nil
}

// VerifyCode checks a submitted code and, when valid, exchanges it for a
// redeemable session fragment. The pending code is deleted only after the
// session mint succeeds, so a transient provider failure leaves it usable
// for a retry.
func (s *AuthService) VerifyCode(ctx context.Context, email, code string) (string, error) {
	logger := s.logger.With(zap.String("email", observability.MaskEmail(email)))

	pending, err := s.store.Find(ctx, email, code)
	if err != nil {
		observability.AuthVerifications.WithLabelValues("store_error").Inc()
		logger.Error("failed to look up pending code", zap.Error(err))
		return "", fmt.Errorf("%w: %v", models.ErrCodeStore, err)
	}
	if pending == nil {
		// A wrong code and a missing code are indistinguishable by design.
		observability.AuthVerifications.WithLabelValues("not_found").Inc()
		return "", models.ErrCodeNotFound
	}

	if pending.Expired(s.now()) {
		// The record is kept; re-checking an expired code stays idempotent
		// and the next request-code overwrites it.
		observability.AuthVerifications.WithLabelValues("expired").Inc()
		return "", models.ErrCodeExpired
	}

	outcome, err := s.identity.EnsureUser(ctx, email)
	if err != nil {
		observability.AuthVerifications.WithLabelValues("identity_error").Inc()
		logger.Error("failed to ensure identity", zap.Error(err))
		return "", fmt.Errorf("%w: %v", models.ErrIdentityProvider, err)
	}
	logger.Debug("identity ensured", zap.String("outcome", outcome.String()))

	fragment, err := s.identity.MintSession(ctx, email)
	if err != nil {
		observability.AuthVerifications.WithLabelValues("mint_error").Inc()
		logger.Error("failed to mint session", zap.Error(err))
		return "", fmt.Errorf("%w: %v", models.ErrIdentityProvider, err)
	}

	// Single-use enforcement point: the session exists, consume the code.
	if err := s.store.Delete(ctx, email); err != nil {
		observability.AuthVerifications.WithLabelValues("store_error").Inc()
		logger.Error("failed to consume pending code", zap.Error(err))
		return "", fmt.Errorf("%w: %v", models.ErrCodeStore, err)
	}

	s.relay.Publish(models.NewWelcomeEvent(email))

	observability.AuthVerifications.WithLabelValues("success").Inc()
	logger.Info("verification succeeded")
	return fragment, nil
}
