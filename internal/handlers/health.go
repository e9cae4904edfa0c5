package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sweet-moments/storefront-api/internal/observability"
	"github.com/sweet-moments/storefront-api/internal/redisclient"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthHandlers reports liveness of the API and its dependencies
type HealthHandlers struct {
	db     *mongo.Database
	redis  *redisclient.Client
	logger *zap.Logger
}

// NewHealthHandlers creates a new HealthHandlers instance
func NewHealthHandlers(db *mongo.Database, redis *redisclient.Client) *HealthHandlers {
	return &HealthHandlers{
		db:     db,
		redis:  redis,
		logger: observability.Logger(),
	}
}

// HealthCheck godoc
// @Summary Health check
// @Description Checks the API and its dependencies (MongoDB and Redis) and reports per-service status.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandlers) HealthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	health := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Services:  make(map[string]string),
	}

	if err := h.db.Client().Ping(ctx, nil); err != nil {
		h.logger.Warn("mongodb ping failed", zap.Error(err))
		health.Status = "unhealthy"
		health.Services["mongodb"] = "unhealthy"
	} else {
		health.Services["mongodb"] = "healthy"
	}

	if err := h.redis.Ping(ctx).Err(); err != nil {
		h.logger.Warn("redis ping failed", zap.Error(err))
		health.Status = "unhealthy"
		health.Services["redis"] = "unhealthy"
	} else {
		health.Services["redis"] = "healthy"
	}

	if health.Status != "healthy" {
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}
	c.JSON(http.StatusOK, health)
}
