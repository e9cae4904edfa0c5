package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweet-moments/storefront-api/internal/middleware"
	"github.com/sweet-moments/storefront-api/internal/models"
	"github.com/sweet-moments/storefront-api/internal/observability"
	"github.com/sweet-moments/storefront-api/internal/services"
	"go.uber.org/zap"
)

// OrderHandlers contains the order endpoints
type OrderHandlers struct {
	orders    *services.OrderService
	enquiries *services.EnquiryService
	logger    *zap.Logger
}

// NewOrderHandlers creates a new OrderHandlers instance
func NewOrderHandlers(orders *services.OrderService, enquiries *services.EnquiryService) *OrderHandlers {
	return &OrderHandlers{
		orders:    orders,
		enquiries: enquiries,
		logger:    observability.Logger(),
	}
}

// CreateOrder godoc
// @Summary Create a cake order
// @Description Validates and prices the order server-side, persists it and notifies the bakery workflow.
// @Tags orders
// @Accept json
// @Produce json
// @Param data body models.CreateOrderRequest true "Order details"
// @Success 201 {object} models.Order
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /orders [post]
func (h *OrderHandlers) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return
	}

	order, err := h.orders.Create(c.Request.Context(), &req, c.GetString(middleware.ContextUserID))
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, order)
	case errors.Is(err, models.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidEmail})
	case errors.Is(err, models.ErrInvalidPhone):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Please provide a valid phone number"})
	case errors.Is(err, models.ErrDeliveryDisabled):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Delivery is not currently offered"})
	case errors.Is(err, models.ErrDeliveryDateTooSoon):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "The chosen date does not meet our minimum notice"})
	case errors.Is(err, models.ErrUnknownCakeType), errors.Is(err, models.ErrUnknownSize):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown cake selection"})
	default:
		h.logger.Error("failed to create order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
	}
}

// ListMyOrders godoc
// @Summary List the authenticated customer's orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Order
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /orders [get]
func (h *OrderHandlers) ListMyOrders(c *gin.Context) {
	email := c.GetString(middleware.ContextUserEmail)

	orders, err := h.orders.ListByEmail(c.Request.Context(), email)
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// ListAllOrders godoc
// @Summary List all orders
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Order
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/orders [get]
func (h *OrderHandlers) ListAllOrders(c *gin.Context) {
	orders, err := h.orders.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus godoc
// @Summary Update an order's status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param data body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Order
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/orders/{id}/status [patch]
func (h *OrderHandlers) UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, order)
	case errors.Is(err, models.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
	case errors.Is(err, models.ErrInvalidStatusTransition):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid status change"})
	default:
		h.logger.Error("failed to update order status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
	}
}

// DeleteOrder godoc
// @Summary Delete an order
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/orders/{id} [delete]
func (h *OrderHandlers) DeleteOrder(c *gin.Context) {
	err := h.orders.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, SuccessResponse{Success: true})
	case errors.Is(err, models.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
	default:
		h.logger.Error("failed to delete order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
	}
}

// AnalyticsSummary godoc
// @Summary Order and enquiry analytics for the admin dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AnalyticsSummary
// @Failure 500 {object} ErrorResponse
// @Router /admin/analytics/summary [get]
func (h *OrderHandlers) AnalyticsSummary(c *gin.Context) {
	summary, err := h.orders.Summary(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to aggregate orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
		return
	}

	total, unread, err := h.enquiries.Counts(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to count enquiries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
		return
	}
	summary.TotalEnquiries = total
	summary.NewEnquiries = unread

	c.JSON(http.StatusOK, summary)
}
