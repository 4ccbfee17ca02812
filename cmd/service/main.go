package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shop-service/config"
	"shop-service/internal/cache"
	"shop-service/internal/database"
	"shop-service/internal/events"
	"shop-service/internal/hashing"
	"shop-service/internal/logger"
	"shop-service/internal/repository"
	"shop-service/internal/service"
	"shop-service/internal/token"
	"shop-service/internal/transport/http/router"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	cartStore, err := cache.NewRedisCartStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer cartStore.Close()

	// Шина событий опциональна: без брокеров публикация отключена
	var bus service.EventBus
	if len(cfg.KafkaBrokers) > 0 {
		kafkaBus := events.NewKafkaEventBus(cfg.KafkaBrokers, cfg.KafkaTopic, log)
		defer kafkaBus.Close()
		bus = kafkaBus
	}

	repos := repository.New(db)
	pricing := service.NewCatalogPricing(repos.Products)

	authSvc := service.NewAuthService(repos, hashing.NewBcrypt(0), token.NewHSProvider(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience))
	catalogSvc := service.NewCatalogService(repos)
	cartSvc := service.NewCartService(cartStore, pricing)
	orderSvc := service.NewOrderService(repos, pricing, bus)

	r := router.Router(router.Deps{
		Auth:    authSvc,
		Catalog: catalogSvc,
		Cart:    cartSvc,
		Orders:  orderSvc,
		Log:     log,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("Starting shop HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("Shutting down shop HTTP server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}
	log.Info("Shop HTTP server stopped gracefully")
}
