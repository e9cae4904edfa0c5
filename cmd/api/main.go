package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sweet-moments/storefront-api/internal/config"
	"github.com/sweet-moments/storefront-api/internal/handlers"
	"github.com/sweet-moments/storefront-api/internal/logging"
	"github.com/sweet-moments/storefront-api/internal/middleware"
	"github.com/sweet-moments/storefront-api/internal/observability"
	"github.com/sweet-moments/storefront-api/internal/services"
	"go.uber.org/zap"
)

// @title           Sweet Moments Storefront API
// @version         1.0
// @description     Backend for the Sweet Moments bakery storefront: one-time code sign-in, cake orders, enquiries, catalogue content and assistant proxying.

// @host      localhost:8080
// @BasePath  /v1

// @tag.name auth
// @tag.description Passwordless sign-in with one-time codes

// @tag.name orders
// @tag.description Cake order management

// @tag.name health
// @tag.description Health check operations

func main() {
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	observability.InitTracer(cfg.TracingEnabled, cfg.TracingEndpoint)
	defer observability.ShutdownTracer()

	db, err := config.InitMongoDB(cfg)
	if err != nil {
		logging.Logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	redis, err := config.InitRedis(cfg)
	if err != nil {
		logging.Logger.Fatal("failed to connect to Redis", zap.Error(err))
	}

	// Background relay worker. Closed during shutdown so queued webhook
	// events are flushed before the process exits.
	relay := services.NewNotificationRelay(cfg.RelayURL, cfg.RelaySecret)

	siteConfig := services.NewSiteConfigService(
		db.Collection(cfg.SiteConfigCollection),
		db.Collection(cfg.FAQCollection),
		redis,
		cfg.SiteConfigCacheTTL,
	)
	authService := services.NewAuthService(
		services.NewMongoCodeStore(db.Collection(cfg.AuthCodeCollection)),
		services.NewCodeGenerator(cfg.AuthCodeTTL),
		services.NewIdentityClient(cfg.IdentityBaseURL, cfg.IdentityServiceKey),
		relay,
		services.NewRedisCooldown(redis, cfg.AuthResendCooldown),
	)
	orderService := services.NewOrderService(db.Collection(cfg.OrderCollection), siteConfig, relay)
	enquiryService := services.NewEnquiryService(db.Collection(cfg.EnquiryCollection), relay)
	assistantService := services.NewAssistantService(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.RelayChatURL, cfg.RelaySecret)

	authLimiter := services.NewFixedWindowLimiter(redis, "auth", cfg.AuthRateLimit, cfg.AuthRateWindow)
	apiLimiter := services.NewFixedWindowLimiter(redis, "api", cfg.APIRateLimit, cfg.APIRateWindow)

	authHandlers := handlers.NewAuthHandlers(authService)
	orderHandlers := handlers.NewOrderHandlers(orderService, enquiryService)
	enquiryHandlers := handlers.NewEnquiryHandlers(enquiryService)
	siteConfigHandlers := handlers.NewSiteConfigHandlers(siteConfig)
	assistantHandlers := handlers.NewAssistantHandlers(assistantService)
	healthHandlers := handlers.NewHealthHandlers(db, redis)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.Default(),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	{
		v1.GET("/health", healthHandlers.HealthCheck)

		auth := v1.Group("/auth", middleware.RateLimit(authLimiter))
		{
			auth.POST("/request-code", authHandlers.RequestCode)
			auth.POST("/verify-code", authHandlers.VerifyCode)
		}

		public := v1.Group("", middleware.RateLimit(apiLimiter))
		{
			public.GET("/config", siteConfigHandlers.GetSiteConfig)
			public.GET("/faqs", siteConfigHandlers.GetFAQs)
			public.POST("/enquiries", enquiryHandlers.CreateEnquiry)
			public.POST("/orders", middleware.OptionalSessionAuth(cfg), orderHandlers.CreateOrder)
			public.GET("/orders", middleware.SessionAuth(cfg), orderHandlers.ListMyOrders)
			public.POST("/assistant/explain", assistantHandlers.Explain)
			public.POST("/assistant/mockup", assistantHandlers.Mockup)
			public.POST("/chat", assistantHandlers.Chat)
		}

		admin := v1.Group("/admin", middleware.RateLimit(apiLimiter), middleware.SessionAuth(cfg), middleware.RequireAdmin(cfg))
		{
			admin.GET("/orders", orderHandlers.ListAllOrders)
			admin.PATCH("/orders/:id/status", orderHandlers.UpdateOrderStatus)
			admin.DELETE("/orders/:id", orderHandlers.DeleteOrder)
			admin.GET("/enquiries", enquiryHandlers.ListEnquiries)
			admin.PATCH("/enquiries/:id/status", enquiryHandlers.UpdateEnquiryStatus)
			admin.DELETE("/enquiries/:id", enquiryHandlers.DeleteEnquiry)
			admin.GET("/analytics/summary", orderHandlers.AnalyticsSummary)
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", cfg.Port),
			zap.String("environment", cfg.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	relay.Close()

	logging.Logger.Info("server exited gracefully")
}
