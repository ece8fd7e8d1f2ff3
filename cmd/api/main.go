package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"docshare/internal/config"
	"docshare/internal/database"
	"docshare/internal/database/migration"
	handlers "docshare/internal/http/handler"
	"docshare/internal/http/middleware"
	"docshare/internal/otel"
	"docshare/internal/ratelimit"
	"docshare/internal/repository/postgres"
	"docshare/internal/service"
	"docshare/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Object storage degrades to a fail-closed client when credentials are
	// missing; the process still serves everything else.
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Printf("object storage unavailable, failing closed: %v", err)
		objStore = storage.Unavailable()
	}

	// Rate limiter degrades to always-allow without a Redis URL.
	limiter := ratelimit.NewNoop()
	if cfg.Redis.URL != "" {
		opts, perr := redis.ParseURL(cfg.Redis.URL)
		if perr != nil {
			log.Printf("invalid REDIS_URL, rate limiting disabled: %v", perr)
		} else {
			client := redis.NewClient(opts)
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			if perr := client.Ping(pingCtx).Err(); perr != nil {
				log.Printf("redis unreachable at startup: %v", perr)
			}
			cancel()
			limiter = ratelimit.NewRedis(client,
				cfg.Redis.Limit,
				time.Duration(cfg.Redis.WindowSec)*time.Second,
				"docshare",
			)
		}
	}

	presigner := storage.NewPresignClient(
		cfg.Resolver.PresignEndpoint,
		cfg.Resolver.PresignProxyEndpoint,
		cfg.Auth.InternalAPIKey,
		nil,
	)
	resolver := service.NewResolver(presigner, cfg.Resolver)

	// Initialize repositories and services
	docRepo := postgres.NewDocumentPostgres(db)
	teamRepo := postgres.NewTeamPostgres(db)
	docSvc := service.NewDocumentService(objStore, docRepo, resolver)
	teamSvc := service.NewTeamService(teamRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// Leave headroom above the upload cap; the handler enforces the
		// exact limit with a clean 413.
		BodyLimit: int(cfg.Upload.MaxBytes) + (1 << 20),
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	if prom, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer); err == nil {
		app.Use(prom.Handler())
	} else {
		log.Printf("prometheus middleware disabled: %v", err)
	}

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, docSvc, teamSvc, objStore, limiter, cfg)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
