package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sweet-moments/storefront-api/internal/models"
	"github.com/sweet-moments/storefront-api/internal/observability"
	"github.com/sweet-moments/storefront-api/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// PriceOrder prices the given items against the live catalogue and returns
// the order total along with the items annotated with their unit prices.
// Pricing always happens server-side; client-sent prices are ignored.
func PriceOrder(cfg *models.SiteConfig, items []models.CakeItem, deliveryMethod string) (float64, []models.CakeItem, error) {
	total := 0.0
	priced := make([]models.CakeItem, len(items))

	for i, item := range items {
		cakeType, ok := cfg.CakeType(item.CakeTypeID)
		if !ok {
			return 0, nil, fmt.Errorf("%w: %s", models.ErrUnknownCakeType, item.CakeTypeID)
		}
		size, ok := cfg.Size(item.SizeID)
		if !ok {
			return 0, nil, fmt.Errorf("%w: %s", models.ErrUnknownSize, item.SizeID)
		}

		unit := cakeType.BasePrice * size.Multiplier
		line := unit * float64(item.Quantity)
		// Dietary and fondant surcharges apply per line, not per cake.
		line += float64(len(item.DietaryReqs)) * cfg.Surcharges.DietaryPerItem
		if item.Frosting == "Fondant" {
			line += cfg.Surcharges.FondantPremium
		}

		item.UnitPrice = unit
		priced[i] = item
		total += line
	}

	if deliveryMethod == "delivery" {
		total += cfg.Surcharges.DeliveryFee
	}

	return total, priced, nil
}

// OrderService manages customer cake orders.
type OrderService struct {
	coll       *mongo.Collection
	siteConfig *SiteConfigService
	relay      RelayPublisher
	now        func() time.Time
	logger     *zap.Logger
}

// NewOrderService creates the order service.
func NewOrderService(coll *mongo.Collection, siteConfig *SiteConfigService, relay RelayPublisher) *OrderService {
	return &OrderService{
		coll:       coll,
		siteConfig: siteConfig,
		relay:      relay,
		now:        time.Now,
		logger:     observability.Logger(),
	}
}

// Create validates and persists a new order, then notifies the automation
// webhook best-effort.
func (s *OrderService) Create(ctx context.Context, req *models.CreateOrderRequest, userID string) (*models.Order, error) {
	if !utils.ValidateEmail(req.CustomerEmail) {
		return nil, models.ErrInvalidEmail
	}

	phone, err := utils.NormalizePhone(req.CustomerPhone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidPhone, err)
	}

	cfg, err := s.siteConfig.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.DeliveryMethod == "delivery" && !cfg.DeliveryEnabled {
		return nil, models.ErrDeliveryDisabled
	}

	if err := s.checkDeliveryDate(req.DeliveryDate, cfg.MinDaysNotice); err != nil {
		return nil, err
	}

	total, items, err := PriceOrder(cfg, req.Items, req.DeliveryMethod)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
	}

	now := s.now()
	order := &models.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   phone,
		DeliveryMethod:  req.DeliveryMethod,
		DeliveryDate:    req.DeliveryDate,
		DeliveryAddress: req.DeliveryAddress,
		Items:           items,
		TotalPrice:      total,
		Status:          models.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := s.coll.InsertOne(ctx, order); err != nil {
		observability.DatabaseOperations.WithLabelValues("order_insert", "error").Inc()
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("order_insert", "success").Inc()
	observability.OrdersCreated.Inc()

	s.relay.Publish(models.NewOrderCreatedEvent(order))

	s.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("customer_email", observability.MaskEmail(order.CustomerEmail)),
		zap.Float64("total_price", order.TotalPrice))
	return order, nil
}

// checkDeliveryDate rejects dates that fall before the minimum notice period.
func (s *OrderService) checkDeliveryDate(dateStr string, minDays int) error {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrDeliveryDateTooSoon, err)
	}

	today := s.now().Truncate(24 * time.Hour)
	earliest := today.AddDate(0, 0, minDays)
	if date.Before(earliest) {
		return models.ErrDeliveryDateTooSoon
	}
	return nil
}

// ListByEmail returns a customer's orders, newest first.
func (s *OrderService) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return s.list(ctx, bson.M{"customer_email": email})
}

// ListAll returns all orders, newest first.
func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.list(ctx, bson.M{})
}

func (s *OrderService) list(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cursor, err := s.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("order_find", "error").Inc()
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("order_find", "success").Inc()
	return orders, nil
}

// UpdateStatus moves an order along its pipeline, enforcing the allowed
// transitions.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*models.Order, error) {
	var order models.Order
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	if !models.ValidStatusTransition(order.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", models.ErrInvalidStatusTransition, order.Status, status)
	}

	now := s.now()
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": order.Status},
		bson.M{"$set": bson.M{"status": status, "updated_at": now}})
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("order_update", "error").Inc()
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("order_update", "success").Inc()

	order.Status = status
	order.UpdatedAt = now
	s.logger.Info("order status updated", zap.String("order_id", id), zap.String("status", status))
	return &order, nil
}

// Delete removes an order.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("order_delete", "error").Inc()
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrOrderNotFound
	}
	observability.DatabaseOperations.WithLabelValues("order_delete", "success").Inc()
	return nil
}

// Summary aggregates order counts and revenue for the admin dashboard.
// Revenue counts delivered orders; pending revenue covers the rest of the
// active pipeline.
func (s *OrderService) Summary(ctx context.Context) (*models.AnalyticsSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":     "$status",
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$total_price"},
		}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("order_aggregate", "error").Inc()
		return nil, fmt.Errorf("failed to aggregate orders: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status  string  `bson:"_id"`
		Count   int64   `bson:"count"`
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode order aggregation: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("order_aggregate", "success").Inc()

	summary := &models.AnalyticsSummary{OrdersByStatus: map[string]int64{}}
	for _, row := range rows {
		summary.TotalOrders += row.Count
		summary.OrdersByStatus[row.Status] = row.Count
		switch row.Status {
		case models.OrderStatusDelivered:
			summary.TotalRevenue += row.Revenue
		case models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusBaking:
			summary.PendingRevenue += row.Revenue
		}
	}
	return summary, nil
}
