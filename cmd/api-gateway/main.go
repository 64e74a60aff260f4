package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/ngoconnect/ngo-connect-api/api/swagger"
	"github.com/ngoconnect/ngo-connect-api/internal/handler"
	"github.com/ngoconnect/ngo-connect-api/internal/repository"
	"github.com/ngoconnect/ngo-connect-api/internal/service"
	"github.com/ngoconnect/ngo-connect-api/pkg/cache"
	"github.com/ngoconnect/ngo-connect-api/pkg/config"
	"github.com/ngoconnect/ngo-connect-api/pkg/database"
	"github.com/ngoconnect/ngo-connect-api/pkg/jobs"
	"github.com/ngoconnect/ngo-connect-api/pkg/logger"
	"github.com/ngoconnect/ngo-connect-api/pkg/payment"
)

// @title NGO Connect API
// @version 1.0.0
// @description Volunteer opportunities, fund transparency and donations for NGOs.
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	rdb, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Fatal("failed to connect to redis", zap.Error(err))
	}
	// A nil *redis.Client must not reach the repository as a non-nil interface.
	var cacheClient redis.UniversalClient
	readiness := map[string]handler.Pinger{"database": db}
	if rdb != nil {
		defer rdb.Close()
		cacheClient = rdb
		readiness["redis"] = handler.PingerFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}

	validate := validator.New()
	metrics := service.NewMetricsService()
	cacheSvc := service.NewCacheService(repository.NewCacheRepository(cacheClient, "ngo-connect:"), metrics, cfg.Opportunities.CacheTTL, logr, cfg.Redis.Enabled)

	store, err := opportunityStore(cfg, db)
	if err != nil {
		logr.Fatal("failed to prepare opportunity store", zap.Error(err))
	}
	opportunities := service.NewOpportunityService(
		store,
		service.NewOpportunityFilter(cfg.Opportunities.LocationCaseSensitive),
		cacheSvc,
		cfg.Opportunities.CacheTTL,
		metrics,
		logr,
	)

	fundReportRepo := repository.NewFundReportRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	worker := service.NewHandoffWorker(
		applicationRepo,
		repository.NewContactRepository(db),
		opportunities,
		cfg.Opportunities.Source == config.OpportunitySourceDatabase,
		metrics,
		logr,
	)
	mux := jobs.NewMux()
	worker.Register(mux)
	handoff := jobs.NewQueue("handoff", mux.Dispatch, jobs.QueueConfig{
		Workers:    cfg.Handoff.Workers,
		BufferSize: cfg.Handoff.BufferSize,
		MaxRetries: cfg.Handoff.MaxRetries,
		RetryDelay: cfg.Handoff.RetryDelay,
		Logger:     logr,
	})
	handoff.Start(ctx)
	defer handoff.Stop()

	selections := service.NewSelectionService(opportunities, service.NewSelector(service.NewQueueForwarder(handoff)), validate, metrics, logr)
	fundReports := service.NewFundReportService(fundReportRepo, validate, logr)
	transparency := service.NewTransparencyService(fundReportRepo, repository.NewDonationRepository(db), applicationRepo, fundReports, logr)

	gateway := payment.NewSimulatedGateway(payment.SimulatedConfig{
		KeyID:     cfg.Payments.KeyID,
		KeySecret: cfg.Payments.KeySecret,
		Currency:  cfg.Payments.Currency,
		Merchant:  cfg.Payments.MerchantTag,
	})
	payments := service.NewPaymentService(
		gateway,
		gateway.Signer(),
		service.NewDonationRecorder(repository.NewDonationRepository(db), cfg.Payments.Currency),
		validate,
		metrics,
		logr,
	)
	contact := service.NewContactService(handoff, validate, logr)

	auth := service.NewAuthService(service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})

	router := handler.NewRouter(handler.RouterConfig{
		APIPrefix:      cfg.APIPrefix,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		EnableDocs:     cfg.Env != config.EnvProduction,
		Logger:         logr,
		Metrics:        metrics,
		Auth:           auth,
		Health:         handler.NewMetricsHandler(metrics, readiness),
		Opportunities:  handler.NewOpportunityHandler(opportunities, selections),
		FundReports:    handler.NewFundReportHandler(fundReports),
		Transparency:   handler.NewTransparencyHandler(transparency),
		Payments:       handler.NewPaymentHandler(payments),
		Contact:        handler.NewContactHandler(contact),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env), zap.String("opportunity_source", cfg.Opportunities.Source))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}

func opportunityStore(cfg *config.Config, db *sqlx.DB) (service.OpportunityStore, error) {
	switch {
	case cfg.Opportunities.Source == config.OpportunitySourceDatabase:
		return repository.NewOpportunityRepository(db), nil
	case cfg.Opportunities.SeedFile != "":
		store, err := repository.LoadSeedFile(cfg.Opportunities.SeedFile)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return repository.NewSeedOpportunityStore(nil), nil
	}
}
