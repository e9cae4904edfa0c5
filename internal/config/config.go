package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// MongoDB configuration
	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`

	// Redis configuration
	RedisURI      string `json:"redis_uri"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`

	// Collection names
	AuthCodeCollection   string `json:"mongo_auth_code_collection"`
	OrderCollection      string `json:"mongo_order_collection"`
	EnquiryCollection    string `json:"mongo_enquiry_collection"`
	SiteConfigCollection string `json:"mongo_site_config_collection"`
	FAQCollection        string `json:"mongo_faq_collection"`

	// One-time code configuration
	AuthCodeTTL        time.Duration `json:"auth_code_ttl"`
	AuthResendCooldown time.Duration `json:"auth_resend_cooldown"`

	// Rate limiting
	AuthRateLimit  int           `json:"auth_rate_limit"`
	AuthRateWindow time.Duration `json:"auth_rate_window"`
	APIRateLimit   int           `json:"api_rate_limit"`
	APIRateWindow  time.Duration `json:"api_rate_window"`

	// Identity provider (session minting and token verification)
	IdentityBaseURL    string `json:"identity_base_url"`
	IdentityServiceKey string `json:"-"`
	IdentityJWTSecret  string `json:"-"`

	// Automation webhook relay
	RelayURL     string `json:"relay_url"`
	RelayChatURL string `json:"relay_chat_url"`
	RelaySecret  string `json:"-"`

	// Generative AI
	GeminiBaseURL string `json:"gemini_base_url"`
	GeminiAPIKey  string `json:"-"`

	// Admin access
	AdminEmails []string `json:"admin_emails"`

	// Caching
	SiteConfigCacheTTL time.Duration `json:"site_config_cache_ttl"`

	// Tracing
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`
}

// LoadConfig loads configuration from environment variables. A .env file is
// honoured when present so local runs match deployed environments.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	authCodeTTL, err := time.ParseDuration(getEnvOrDefault("AUTH_CODE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_CODE_TTL: %w", err)
	}

	resendCooldown, err := time.ParseDuration(getEnvOrDefault("AUTH_RESEND_COOLDOWN", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_RESEND_COOLDOWN: %w", err)
	}

	authRateLimit, err := strconv.Atoi(getEnvOrDefault("AUTH_RATE_LIMIT", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_RATE_LIMIT: %w", err)
	}

	authRateWindow, err := time.ParseDuration(getEnvOrDefault("AUTH_RATE_WINDOW", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_RATE_WINDOW: %w", err)
	}

	apiRateLimit, err := strconv.Atoi(getEnvOrDefault("API_RATE_LIMIT", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_RATE_LIMIT: %w", err)
	}

	apiRateWindow, err := time.ParseDuration(getEnvOrDefault("API_RATE_WINDOW", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_RATE_WINDOW: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnvOrDefault("SITE_CONFIG_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SITE_CONFIG_CACHE_TTL: %w", err)
	}

	identityBaseURL := os.Getenv("IDENTITY_BASE_URL")
	if identityBaseURL == "" {
		return nil, fmt.Errorf("IDENTITY_BASE_URL environment variable is required")
	}

	identityServiceKey := os.Getenv("IDENTITY_SERVICE_KEY")
	if identityServiceKey == "" {
		return nil, fmt.Errorf("IDENTITY_SERVICE_KEY environment variable is required")
	}

	cfg := &Config{
		// Server configuration
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		// MongoDB configuration
		MongoURI:      getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGODB_DATABASE", "storefront"),

		// Redis configuration
		RedisURI:      getEnvOrDefault("REDIS_URI", "redis://localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,

		// Collection names
		AuthCodeCollection:   getEnvOrDefault("MONGODB_AUTH_CODE_COLLECTION", "auth_codes"),
		OrderCollection:      getEnvOrDefault("MONGODB_ORDER_COLLECTION", "orders"),
		EnquiryCollection:    getEnvOrDefault("MONGODB_ENQUIRY_COLLECTION", "enquiries"),
		SiteConfigCollection: getEnvOrDefault("MONGODB_SITE_CONFIG_COLLECTION", "site_config"),
		FAQCollection:        getEnvOrDefault("MONGODB_FAQ_COLLECTION", "faqs"),

		// One-time code configuration
		AuthCodeTTL:        authCodeTTL,
		AuthResendCooldown: resendCooldown,

		// Rate limiting
		AuthRateLimit:  authRateLimit,
		AuthRateWindow: authRateWindow,
		APIRateLimit:   apiRateLimit,
		APIRateWindow:  apiRateWindow,

		// Identity provider
		IdentityBaseURL:    strings.TrimRight(identityBaseURL, "/"),
		IdentityServiceKey: identityServiceKey,
		IdentityJWTSecret:  os.Getenv("IDENTITY_JWT_SECRET"),

		// Automation webhook relay
		RelayURL:     os.Getenv("RELAY_URL"),
		RelayChatURL: os.Getenv("RELAY_CHAT_URL"),
		RelaySecret:  os.Getenv("RELAY_SECRET"),

		// Generative AI
		GeminiBaseURL: getEnvOrDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),

		// Admin access
		AdminEmails: splitAndTrim(os.Getenv("ADMIN_EMAILS")),

		// Caching
		SiteConfigCacheTTL: cacheTTL,

		// Tracing
		TracingEnabled:  getEnvOrDefault("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
	}

	return cfg, nil
}

// IsAdminEmail reports whether the given email is on the admin allowlist.
// Comparison is case-insensitive.
func (c *Config) IsAdminEmail(email string) bool {
	for _, admin := range c.AdminEmails {
		if strings.EqualFold(admin, email) {
			return true
		}
	}
	return false
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
