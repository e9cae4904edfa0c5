package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweet-moments/storefront-api/internal/observability"
	"github.com/sweet-moments/storefront-api/internal/services"
	"go.uber.org/zap"
)

// SiteConfigHandlers serves the storefront catalogue content
type SiteConfigHandlers struct {
	siteConfig *services.SiteConfigService
	logger     *zap.Logger
}

// NewSiteConfigHandlers creates a new SiteConfigHandlers instance
func NewSiteConfigHandlers(siteConfig *services.SiteConfigService) *SiteConfigHandlers {
	return &SiteConfigHandlers{
		siteConfig: siteConfig,
		logger:     observability.Logger(),
	}
}

// GetSiteConfig godoc
// @Summary Get the storefront catalogue and pricing configuration
// @Tags content
// @Produce json
// @Success 200 {object} models.SiteConfig
// @Failure 500 {object} ErrorResponse
// @Router /config [get]
func (h *SiteConfigHandlers) GetSiteConfig(c *gin.Context) {
	cfg, err := h.siteConfig.Get(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load site config", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// GetFAQs godoc
// @Summary Get the storefront FAQs in display order
// @Tags content
// @Produce json
// @Success 200 {array} models.FAQ
// @Failure 500 {object} ErrorResponse
// @Router /faqs [get]
func (h *SiteConfigHandlers) GetFAQs(c *gin.Context) {
	faqs, err := h.siteConfig.FAQs(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load FAQs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
		return
	}
	c.JSON(http.StatusOK, faqs)
}
