package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/tunedeck/checkout-service/internal/config"
	httpdelivery "github.com/tunedeck/checkout-service/internal/delivery/http"
	"github.com/tunedeck/checkout-service/internal/delivery/http/handlers"
	"github.com/tunedeck/checkout-service/internal/delivery/http/middleware"
	"github.com/tunedeck/checkout-service/internal/infrastructure/cache"
	"github.com/tunedeck/checkout-service/internal/infrastructure/gateway"
	publisher "github.com/tunedeck/checkout-service/internal/infrastructure/kafka"
	"github.com/tunedeck/checkout-service/internal/infrastructure/mailer"
	"github.com/tunedeck/checkout-service/internal/infrastructure/metrics"
	"github.com/tunedeck/checkout-service/internal/infrastructure/migrate"
	"github.com/tunedeck/checkout-service/internal/infrastructure/postgres"
	"github.com/tunedeck/checkout-service/internal/infrastructure/postgres/repository"
	"github.com/tunedeck/checkout-service/internal/infrastructure/storage"
	"github.com/tunedeck/checkout-service/internal/usecase/catalog"
	"github.com/tunedeck/checkout-service/internal/usecase/checkout"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	// Init database
	db := postgres.MustInitDB(cfg)
	if migrationPath := os.Getenv("MIGRATIONS_PATH"); migrationPath != "" {
		if err := migrate.RunMigrations(db, migrationPath); err != nil {
			logger.Fatal("migrations failed", zap.Error(err))
		}
	}

	// Catalog cache
	rdb := cache.MustInitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer rdb.Close()
	trackCache := cache.NewTrackCache(rdb, time.Duration(cfg.Redis.TrackTTL)*time.Second)

	// Tracing
	shutdownTracing, err := middleware.InitTracing("checkout-service")
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}

	checkoutMetrics := metrics.NewCheckoutMetrics()

	// Init repositories
	orderRepo := repository.NewDefaultOrderRepository(db)
	trackRepo := repository.NewDefaultTrackRepository(db)
	userRepo := repository.NewDefaultUserRepository(db)

	// Outbound adapters
	gatewayClient := gateway.NewClient(cfg.Gateway.BaseURL, cfg.Gateway.APIKey, cfg.Gateway.SecretKey, checkoutMetrics)
	urlSigner := storage.NewSigner(cfg.Media.SignSecret, cfg.Media.BaseURL, time.Duration(cfg.Media.URLTTL)*time.Minute)
	purchaseMailer := mailer.NewHTTPMailer(cfg.Mailer.APIURL, cfg.Mailer.APIKey, cfg.Mailer.From)
	kafkaPublisher := publisher.NewDefaultKafkaPublisher([]string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)})
	defer kafkaPublisher.Close()

	// Init usecases
	checkoutUc := checkout.NewDefaultCheckoutUsecase(checkout.Deps{
		OrderRepo:     orderRepo,
		TrackRepo:     trackRepo,
		UserRepo:      userRepo,
		Gateway:       gatewayClient,
		Signer:        urlSigner,
		Mailer:        purchaseMailer,
		Publisher:     kafkaPublisher,
		Metrics:       checkoutMetrics,
		Logger:        logger,
		Currency:      cfg.Gateway.Currency,
		CallbackURL:   cfg.Gateway.CallbackURL,
		OperatorEmail: cfg.Mailer.OperatorEmail,
		EventTopic:    cfg.Kafka.Topic,
	})
	catalogUc := catalog.NewDefaultCatalogUsecase(trackRepo, trackCache, logger)

	router := httpdelivery.NewRouter(httpdelivery.RouterDeps{
		Checkout:  handlers.NewCheckoutHandler(checkoutUc, logger, cfg.Gateway.SuccessURL, cfg.Gateway.FailureURL),
		Library:   handlers.NewLibraryHandler(checkoutUc, logger),
		Catalog:   handlers.NewCatalogHandler(catalogUc, checkoutUc, logger),
		Media:     handlers.NewMediaHandler(urlSigner, cfg.Media.Dir, logger),
		Logger:    logger,
		JWTSecret: cfg.Auth.JWTSecret,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler: router,
	}

	go func() {
		logger.Info("checkout service listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.Error("tracing shutdown failed", zap.Error(err))
	}
}
