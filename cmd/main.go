package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/sm8ta/registration_microservice/docs"
	handlers "github.com/sm8ta/registration_microservice/internal/adapter/handler/http"
	"github.com/sm8ta/registration_microservice/internal/adapter/hasher"
	"github.com/sm8ta/registration_microservice/internal/adapter/logger"
	"github.com/sm8ta/registration_microservice/internal/adapter/memory"
	mongoadapter "github.com/sm8ta/registration_microservice/internal/adapter/mongo"
	mongorepo "github.com/sm8ta/registration_microservice/internal/adapter/mongo/repository"
	"github.com/sm8ta/registration_microservice/internal/adapter/postgres"
	pgrepo "github.com/sm8ta/registration_microservice/internal/adapter/postgres/repository"
	"github.com/sm8ta/registration_microservice/internal/adapter/prometheus"
	redis "github.com/sm8ta/registration_microservice/internal/adapter/redis"
	"github.com/sm8ta/registration_microservice/internal/config"
	"github.com/sm8ta/registration_microservice/internal/core/ports"
	"github.com/sm8ta/registration_microservice/internal/core/services"
	"github.com/sm8ta/registration_microservice/internal/core/validation"

	"github.com/go-playground/validator/v10"
	promclient "github.com/prometheus/client_golang/prometheus"
	redisClient "github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

// @title Registration Microservice API
// @version 1.0
// @description User registration and login

// @host localhost:8080
// @BasePath /
func main() {
	// Loading environment
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app":   cfg.App.Name,
		"env":   cfg.App.Env,
		"store": cfg.Store.Driver,
	})

	// Store
	userRepo, closeStore := newUserRepository(cfg, loggerAdapter)

	// Cache
	cacheAdapter, closeCache := newCache(cfg.Redis, loggerAdapter)

	// Validate
	schema := validation.NewSchemaValidator(validator.New(), time.Now)

	// Observability
	metrics := prometheus.NewPrometheusAdapter(promclient.DefaultRegisterer)

	// User
	passwordHasher := hasher.NewBcryptHasher(hasher.DefaultCost)
	tokenService := handlers.NewJWTTokenService(cfg.Token.Secret, cfg.Token.Duration, loggerAdapter)
	authService := services.NewAuthService(userRepo, tokenService, passwordHasher, loggerAdapter, cacheAdapter)
	authHandler := handlers.NewAuthHandler(authService, loggerAdapter, metrics, tokenService.Lifetime())
	userService := services.NewUserService(userRepo, loggerAdapter, passwordHasher, schema)
	userHandler := handlers.NewUserHandler(userService, loggerAdapter, metrics)

	// Init router
	router, err := handlers.NewRouter(
		cfg.HTTP,
		loggerAdapter,
		nil,
		userHandler,
		authHandler,
	)
	if err != nil {
		log.Fatal("Error initializing router:", err)
	}

	go func() {
		listenAddr := fmt.Sprintf("%s:%s", cfg.HTTP.URL, cfg.HTTP.Port)
		loggerAdapter.Info("Starting the HTTP server", map[string]interface{}{
			"addr": listenAddr,
		})

		if err := router.Serve(listenAddr); err != nil {
			log.Fatal("Error starting the HTTP server:", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	loggerAdapter.Info("Application is running", nil)

	<-stop

	loggerAdapter.Info("Shutting down", nil)
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := router.Shutdown(ctx); err != nil {
		loggerAdapter.Error("HTTP server shutdown failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if err := closeCache(); err != nil {
		loggerAdapter.Error("Failed to close cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if err := closeStore(ctx); err != nil {
		loggerAdapter.Error("Failed to close store", map[string]interface{}{
			"error": err.Error(),
		})
	}

	loggerAdapter.Info("Application stopped", nil)
}

// newUserRepository builds the configured store. Connections are lazy: the
// first request that needs the store dials it.
func newUserRepository(cfg *config.Container, loggerAdapter ports.LoggerPort) (ports.UserRepository, func(context.Context) error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		dsn := postgres.DSN(cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
		conn := postgres.NewConnection(dsn, cfg.DB.MigrationsDir, loggerAdapter)
		return pgrepo.NewUserRepository(conn), func(context.Context) error { return conn.Close() }
	case config.StoreMemory:
		loggerAdapter.Warn("Using in-memory store, records are lost on restart", nil)
		return memory.NewUserRepository(), func(context.Context) error { return nil }
	default:
		conn := mongoadapter.NewConnection(cfg.Mongo.URI, cfg.Mongo.Database, loggerAdapter)
		return mongorepo.NewUserRepository(conn), conn.Close
	}
}

func newCache(cfg *config.Redis, loggerAdapter ports.LoggerPort) (ports.CachePort, func() error) {
	if cfg.Address == "" {
		loggerAdapter.Info("REDIS_ADDRESS not set, login cache disabled", nil)
		return redis.NewNoopAdapter(), func() error { return nil }
	}

	redisConn := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       0,
	})
	if _, err := redisConn.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	return redis.NewRedisAdapter(redisConn), redisConn.Close
}
