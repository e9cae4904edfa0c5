package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweet-moments/storefront-api/internal/models"
	"github.com/sweet-moments/storefront-api/internal/observability"
	"github.com/sweet-moments/storefront-api/internal/services"
	"go.uber.org/zap"
)

// EnquiryHandlers contains the contact-form endpoints
type EnquiryHandlers struct {
	enquiries *services.EnquiryService
	logger    *zap.Logger
}

// NewEnquiryHandlers creates a new EnquiryHandlers instance
func NewEnquiryHandlers(enquiries *services.EnquiryService) *EnquiryHandlers {
	return &EnquiryHandlers{
		enquiries: enquiries,
		logger:    observability.Logger(),
	}
}

// CreateEnquiry godoc
// @Summary Submit a contact enquiry
// @Tags enquiries
// @Accept json
// @Produce json
// @Param data body models.CreateEnquiryRequest true "Enquiry details"
// @Success 201 {object} models.Enquiry
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /enquiries [post]
func (h *EnquiryHandlers) CreateEnquiry(c *gin.Context) {
	var req models.CreateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return
	}

	enquiry, err := h.enquiries.Create(c.Request.Context(), &req)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, enquiry)
	case errors.Is(err, models.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidEmail})
	case errors.Is(err, models.ErrInvalidPhone):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Please provide a valid phone number"})
	default:
		h.logger.Error("failed to create enquiry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
	}
}

// ListEnquiries godoc
// @Summary List all enquiries
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Enquiry
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/enquiries [get]
func (h *EnquiryHandlers) ListEnquiries(c *gin.Context) {
	enquiries, err := h.enquiries.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list enquiries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
		return
	}
	c.JSON(http.StatusOK, enquiries)
}

// UpdateEnquiryStatus godoc
// @Summary Update an enquiry's status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enquiry ID"
// @Param data body models.UpdateEnquiryStatusRequest true "New status"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/enquiries/{id}/status [patch]
func (h *EnquiryHandlers) UpdateEnquiryStatus(c *gin.Context) {
	var req models.UpdateEnquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return
	}

	err := h.enquiries.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, SuccessResponse{Success: true})
	case errors.Is(err, models.ErrEnquiryNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Enquiry not found"})
	default:
		h.logger.Error("failed to update enquiry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
	}
}

// DeleteEnquiry godoc
// @Summary Delete an enquiry
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enquiry ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/enquiries/{id} [delete]
func (h *EnquiryHandlers) DeleteEnquiry(c *gin.Context) {
	err := h.enquiries.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, SuccessResponse{Success: true})
	case errors.Is(err, models.ErrEnquiryNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Enquiry not found"})
	default:
		h.logger.Error("failed to delete enquiry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
	}
}
