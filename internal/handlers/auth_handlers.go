package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweet-moments/storefront-api/internal/models"
	"github.com/sweet-moments/storefront-api/internal/observability"
	"go.uber.org/zap"
)

// authService is the slice of the handshake the HTTP layer needs.
type authService interface {
	RequestCode(ctx context.Context, email, mode string) error
	VerifyCode(ctx context.Context, email, code string) (string, error)
}

// AuthHandlers contains the one-time code endpoints
type AuthHandlers struct {
	auth   authService
	logger *zap.Logger
}

// NewAuthHandlers creates a new AuthHandlers instance
func NewAuthHandlers(auth authService) *AuthHandlers {
	return &AuthHandlers{
		auth:   auth,
		logger: observability.Logger(),
	}
}

// RequestCode godoc
// @Summary Request a one-time login code
// @Description Issues a 4-digit code for the email and forwards it to the delivery workflow. The code is never returned in the response.
// @Tags auth
// @Accept json
// @Produce json
// @Param data body models.RequestCodeRequest true "Email and optional mode"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/request-code [post]
func (h *AuthHandlers) RequestCode(c *gin.Context) {
	var req models.RequestCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return
	}

	err := h.auth.RequestCode(c.Request.Context(), req.Email, req.Mode)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, SuccessResponse{Success: true})
	case errors.Is(err, models.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidEmail})
	case errors.Is(err, models.ErrResendCooldown):
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: msgResendCooldown})
	default:
		h.logger.Error("request code failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
	}
}

// VerifyCode godoc
// @Summary Verify a one-time login code
// @Description Verifies the submitted code and returns a redeemable session fragment. Wrong, missing and expired codes share one error.
// @Tags auth
// @Accept json
// @Produce json
// @Param data body models.VerifyCodeRequest true "Email and code"
// @Success 200 {object} models.VerifyCodeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/verify-code [post]
func (h *AuthHandlers) VerifyCode(c *gin.Context) {
	var req models.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return
	}

	hash, err := h.auth.VerifyCode(c.Request.Context(), req.Email, req.Code)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, models.VerifyCodeResponse{Success: true, Hash: hash})
	case errors.Is(err, models.ErrCodeNotFound), errors.Is(err, models.ErrCodeExpired):
		// One body for both conditions, so callers cannot probe whether an
		// email has a pending code.
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: msgInvalidOrExpired})
	default:
		h.logger.Error("verify code failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
	}
}
