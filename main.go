package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"storefront-service/bus"
	"storefront-service/cart"
	"storefront-service/checkout"
	"storefront-service/config"
	"storefront-service/database"
	"storefront-service/kafka"
	"storefront-service/logger"
	"storefront-service/middleware"
	"storefront-service/routes"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	if cfg.JWTSecret == "" {
		zlog.Fatal("JWT_SECRET is not set")
	}

	ctx := context.Background()

	// A Redis client is needed when either the store or the bus runs
	// on it.
	var redisClient *redis.Client
	if cfg.CartStore == "redis" || cfg.Bus == "redis" {
		redisClient, err = database.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			zlog.Fatal("failed to connect to Redis", zap.Error(err))
		}
		zlog.Info("connected to Redis")
	}

	store := newCartStore(cfg, redisClient, zlog)
	events := newBus(ctx, cfg, redisClient, zlog)

	producer := kafka.NewProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic, zlog)
	defer producer.Close()

	carts := cart.NewService(store, events, zlog)
	summaries := cart.NewSummaryCache(store, events, zlog)
	defer summaries.Close()

	orderClient := checkout.NewOrderClient(cfg.OrderServiceURL)
	addressClient := checkout.NewAddressClient(cfg.AddressServiceURL)
	checkoutSvc := checkout.NewService(store, events, orderClient, producer, zlog)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(zlog))
	routes.Register(router, carts, summaries, checkoutSvc, addressClient, cfg, zlog)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zlog.Info("storefront service is running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zlog.Info("shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal("shutdown error", zap.Error(err))
	}
	zlog.Info("server shutdown complete")
}

func newCartStore(cfg config.Config, redisClient *redis.Client, zlog *zap.Logger) database.CartStore {
	switch cfg.CartStore {
	case "redis":
		return database.NewRedisCartStore(redisClient, cfg.CartTTL)
	case "sqlite":
		store, err := database.NewSQLiteCartStore(cfg.SQLitePath)
		if err != nil {
			zlog.Fatal("failed to open SQLite store", zap.Error(err))
		}
		return store
	case "memory":
		zlog.Warn("using in-memory cart store; carts will not survive a restart")
		return database.NewMemoryCartStore()
	default:
		zlog.Fatal("unknown CART_STORE", zap.String("value", cfg.CartStore))
		return nil
	}
}

func newBus(ctx context.Context, cfg config.Config, redisClient *redis.Client, zlog *zap.Logger) bus.Bus {
	switch cfg.Bus {
	case "redis":
		return bus.NewRedisBus(ctx, redisClient, cfg.BusChannel, zlog)
	case "local":
		return bus.NewLocalBus()
	default:
		zlog.Fatal("unknown BUS", zap.String("value", cfg.Bus))
		return nil
	}
}
