package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sweet-moments/storefront-api/internal/models"
	"github.com/sweet-moments/storefront-api/internal/observability"
	"github.com/sweet-moments/storefront-api/internal/redisclient"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	siteConfigCacheKey = "cache:site_config"
	faqCacheKey        = "cache:faqs"
)

// SiteConfigService serves the storefront catalogue and FAQ content with a
// Redis read-through cache in front of MongoDB.
type SiteConfigService struct {
	configColl *mongo.Collection
	faqColl    *mongo.Collection
	redis      *redisclient.Client
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewSiteConfigService creates the site config service.
func NewSiteConfigService(configColl, faqColl *mongo.Collection, redis *redisclient.Client, cacheTTL time.Duration) *SiteConfigService {
	return &SiteConfigService{
		configColl: configColl,
		faqColl:    faqColl,
		redis:      redis,
		cacheTTL:   cacheTTL,
		logger:     observability.Logger(),
	}
}

// siteConfigDocument wraps the config payload the way the storefront stores
// it: a single row with id 1 and the config as a nested document.
type siteConfigDocument struct {
	ID     int               `bson:"_id"`
	Config models.SiteConfig `bson:"config"`
}

// Get returns the live site configuration.
func (s *SiteConfigService) Get(ctx context.Context) (*models.SiteConfig, error) {
	if cached, err := s.redis.Get(ctx, siteConfigCacheKey).Result(); err == nil {
		var cfg models.SiteConfig
		if err := json.Unmarshal([]byte(cached), &cfg); err == nil {
			observability.CacheHits.WithLabelValues("site_config").Inc()
			return &cfg, nil
		}
	}

	var doc siteConfigDocument
	err := s.configColl.FindOne(ctx, bson.M{"_id": 1}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("site configuration is not seeded")
		}
		observability.DatabaseOperations.WithLabelValues("site_config_find", "error").Inc()
		return nil, fmt.Errorf("failed to load site configuration: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("site_config_find", "success").Inc()

	s.cache(ctx, siteConfigCacheKey, doc.Config)
	return &doc.Config, nil
}

// FAQs returns the FAQ entries in display order.
func (s *SiteConfigService) FAQs(ctx context.Context) ([]models.FAQ, error) {
	if cached, err := s.redis.Get(ctx, faqCacheKey).Result(); err == nil {
		var faqs []models.FAQ
		if err := json.Unmarshal([]byte(cached), &faqs); err == nil {
			observability.CacheHits.WithLabelValues("faqs").Inc()
			return faqs, nil
		}
	}

	cursor, err := s.faqColl.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order_index", Value: 1}}))
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("faq_find", "error").Inc()
		return nil, fmt.Errorf("failed to load FAQs: %w", err)
	}
	defer cursor.Close(ctx)

	faqs := []models.FAQ{}
	if err := cursor.All(ctx, &faqs); err != nil {
		return nil, fmt.Errorf("failed to decode FAQs: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("faq_find", "success").Inc()

	s.cache(ctx, faqCacheKey, faqs)
	return faqs, nil
}

func (s *SiteConfigService) cache(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("failed to cache content", zap.String("key", key), zap.Error(err))
	}
}
