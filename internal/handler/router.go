package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/ngoconnect/ngo-connect-api/internal/middleware"
	"github.com/ngoconnect/ngo-connect-api/internal/models"
	"github.com/ngoconnect/ngo-connect-api/internal/service"
	"github.com/ngoconnect/ngo-connect-api/pkg/logger"
	corsmiddleware "github.com/ngoconnect/ngo-connect-api/pkg/middleware/cors"
	reqidmiddleware "github.com/ngoconnect/ngo-connect-api/pkg/middleware/requestid"
)

// RouterConfig carries everything the HTTP surface is built from.
type RouterConfig struct {
	APIPrefix      string
	AllowedOrigins []string
	EnableDocs     bool
	Logger         *zap.Logger
	Metrics        *service.MetricsService
	Auth           middleware.TokenValidator

	Health        *MetricsHandler
	Opportunities *OpportunityHandler
	FundReports   *FundReportHandler
	Transparency  *TransparencyHandler
	Payments      *PaymentHandler
	Contact       *ContactHandler
}

// NewRouter registers middleware and routes on a fresh gin engine.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = "/api"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(cfg.Logger))
	r.Use(corsmiddleware.New(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics, "/metrics", "/health", "/ready"))
	r.Use(middleware.WithResponseMeta())

	if cfg.Health != nil {
		r.GET("/health", cfg.Health.Health)
		r.GET("/ready", cfg.Health.Ready)
		r.GET("/metrics", cfg.Health.Prometheus)
	}
	if cfg.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	if h := cfg.Opportunities; h != nil {
		opportunities := api.Group("/opportunities")
		opportunities.GET("", h.List)
		opportunities.GET("/available", h.Available)
		opportunities.GET("/filter-options", h.FilterOptions)
		opportunities.GET("/:id", h.Get)
		opportunities.POST("/:id/apply", h.Apply)
	}

	transparency := api.Group("/transparency")
	if h := cfg.FundReports; h != nil {
		reports := transparency.Group("/reports/ngo/:ngoId")
		reports.GET("", h.List)
		reports.POST("", middleware.JWT(cfg.Auth), middleware.RequireRoles(models.RoleNGO, models.RoleAdmin), h.Create)
	}
	if h := cfg.Transparency; h != nil {
		transparency.GET("/summary", h.Summary)
		transparency.GET("/reports/ngo/:ngoId/export", h.Export)
	}

	if h := cfg.Payments; h != nil {
		payments := api.Group("/payments")
		payments.POST("/checkout", h.Checkout)
		payments.POST("/cancel", h.Cancel)
		payments.POST("/verify", h.Verify)
	}

	if h := cfg.Contact; h != nil {
		api.POST("/contact", h.Submit)
	}

	return r
}
