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

// EnquiryService manages contact-form enquiries.
type EnquiryService struct {
	coll   *mongo.Collection
	relay  RelayPublisher
	now    func() time.Time
	logger *zap.Logger
}

// NewEnquiryService creates the enquiry service.
func NewEnquiryService(coll *mongo.Collection, relay RelayPublisher) *EnquiryService {
	return &EnquiryService{
		coll:   coll,
		relay:  relay,
		now:    time.Now,
		logger: observability.Logger(),
	}
}

// Create persists a new enquiry and notifies the automation webhook.
func (s *EnquiryService) Create(ctx context.Context, req *models.CreateEnquiryRequest) (*models.Enquiry, error) {
	if !utils.ValidateEmail(req.Email) {
		return nil, models.ErrInvalidEmail
	}

	phone := req.Phone
	if phone != "" {
		normalized, err := utils.NormalizePhone(phone)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrInvalidPhone, err)
		}
		phone = normalized
	}

	enquiry := &models.Enquiry{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     phone,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    models.EnquiryStatusNew,
		CreatedAt: s.now(),
	}

	if _, err := s.coll.InsertOne(ctx, enquiry); err != nil {
		observability.DatabaseOperations.WithLabelValues("enquiry_insert", "error").Inc()
		return nil, fmt.Errorf("failed to insert enquiry: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("enquiry_insert", "success").Inc()

	s.relay.Publish(models.NewEnquiryEvent(enquiry))

	s.logger.Info("enquiry created",
		zap.String("enquiry_id", enquiry.ID),
		zap.String("email", observability.MaskEmail(enquiry.Email)))
	return enquiry, nil
}

// List returns all enquiries, newest first.
func (s *EnquiryService) List(ctx context.Context) ([]models.Enquiry, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("enquiry_find", "error").Inc()
		return nil, fmt.Errorf("failed to list enquiries: %w", err)
	}
	defer cursor.Close(ctx)

	enquiries := []models.Enquiry{}
	if err := cursor.All(ctx, &enquiries); err != nil {
		return nil, fmt.Errorf("failed to decode enquiries: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("enquiry_find", "success").Inc()
	return enquiries, nil
}

// UpdateStatus marks an enquiry as read or replied.
func (s *EnquiryService) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("enquiry_update", "error").Inc()
		return fmt.Errorf("failed to update enquiry: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.ErrEnquiryNotFound
	}
	observability.DatabaseOperations.WithLabelValues("enquiry_update", "success").Inc()
	return nil
}

// Delete removes an enquiry.
func (s *EnquiryService) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("enquiry_delete", "error").Inc()
		return fmt.Errorf("failed to delete enquiry: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrEnquiryNotFound
	}
	observability.DatabaseOperations.WithLabelValues("enquiry_delete", "success").Inc()
	return nil
}

// Counts returns total and unread enquiry counts for the admin summary.
func (s *EnquiryService) Counts(ctx context.Context) (total, unread int64, err error) {
	total, err = s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count enquiries: %w", err)
	}
	unread, err = s.coll.CountDocuments(ctx, bson.M{"status": models.EnquiryStatusNew})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count new enquiries: %w", err)
	}
	return total, unread, nil
}
