package models

import (
	"time"
)

// CakeItem is a single configured cake within an order.
type CakeItem struct {
	ID              string   `bson:"id" json:"id"`
	CakeTypeID      string   `bson:"cake_type_id" json:"cake_type_id" binding:"required"`
	SizeID          string   `bson:"size_id" json:"size_id" binding:"required"`
	Quantity        int      `bson:"quantity" json:"quantity" binding:"required,min=1"`
	Flavour         string   `bson:"flavour" json:"flavour"`
	Filling         string   `bson:"filling" json:"filling"`
	Frosting        string   `bson:"frosting" json:"frosting"`
	CustomMessage   string   `bson:"custom_message" json:"custom_message"`
	InspirationURL  string   `bson:"inspiration_url,omitempty" json:"inspiration_url,omitempty"`
	DietaryReqs     []string `bson:"dietary_reqs" json:"dietary_reqs"`
	MockupURL       string   `bson:"mockup_url,omitempty" json:"mockup_url,omitempty"`
	UnitPrice       float64  `bson:"unit_price" json:"unit_price"`
}

// Order statuses form a simple pipeline; cancellation is allowed from any
// state before delivery.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusBaking    = "baking"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order is a customer cake order.
type Order struct {
	ID              string     `bson:"_id" json:"id"`
	UserID          string     `bson:"user_id,omitempty" json:"user_id,omitempty"`
	CustomerName    string     `bson:"customer_name" json:"customer_name"`
	CustomerEmail   string     `bson:"customer_email" json:"customer_email"`
	CustomerPhone   string     `bson:"customer_phone" json:"customer_phone"`
	DeliveryMethod  string     `bson:"delivery_method" json:"delivery_method"`
	DeliveryDate    string     `bson:"delivery_date" json:"delivery_date"`
	DeliveryAddress string     `bson:"delivery_address,omitempty" json:"delivery_address,omitempty"`
	Items           []CakeItem `bson:"items" json:"items"`
	TotalPrice      float64    `bson:"total_price" json:"total_price"`
	Status          string     `bson:"status" json:"status"`
	CreatedAt       time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `bson:"updated_at" json:"updated_at"`
}

// CreateOrderRequest is the body for POST /orders. The total price is always
// computed server-side from the live site configuration.
type CreateOrderRequest struct {
	CustomerName    string     `json:"customer_name" binding:"required"`
	CustomerEmail   string     `json:"customer_email" binding:"required"`
	CustomerPhone   string     `json:"customer_phone" binding:"required"`
	DeliveryMethod  string     `json:"delivery_method" binding:"required,oneof=pickup delivery"`
	DeliveryDate    string     `json:"delivery_date" binding:"required"`
	DeliveryAddress string     `json:"delivery_address"`
	Items           []CakeItem `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest is the body for PATCH /admin/orders/:id/status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed baking delivered cancelled"`
}

// ValidStatusTransition reports whether an order may move from one status to
// another.
func ValidStatusTransition(from, to string) bool {
	if from == to {
		return false
	}
	switch to {
	case OrderStatusCancelled:
		return from != OrderStatusDelivered && from != OrderStatusCancelled
	case OrderStatusConfirmed:
		return from == OrderStatusPending
	case OrderStatusBaking:
		return from == OrderStatusConfirmed
	case OrderStatusDelivered:
		return from == OrderStatusBaking
	default:
		return false
	}
}

// AnalyticsSummary aggregates order and enquiry counts for the admin dashboard.
type AnalyticsSummary struct {
	TotalOrders     int64              `json:"total_orders"`
	OrdersByStatus  map[string]int64   `json:"orders_by_status"`
	TotalRevenue    float64            `json:"total_revenue"`
	PendingRevenue  float64            `json:"pending_revenue"`
	TotalEnquiries  int64              `json:"total_enquiries"`
	NewEnquiries    int64              `json:"new_enquiries"`
}
