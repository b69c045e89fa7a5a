package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/recipe-keeper/internal/config"
	"github.com/sbilibin2017/recipe-keeper/internal/facades"
	"github.com/sbilibin2017/recipe-keeper/internal/handlers"
	"github.com/sbilibin2017/recipe-keeper/internal/jwt"
	"github.com/sbilibin2017/recipe-keeper/internal/logger"
	"github.com/sbilibin2017/recipe-keeper/internal/middlewares"
	"github.com/sbilibin2017/recipe-keeper/internal/migrations"
	"github.com/sbilibin2017/recipe-keeper/internal/repositories"
	"github.com/sbilibin2017/recipe-keeper/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Per-IP limits on the credential endpoints.
const (
	authRateLimit  = 10
	authRateWindow = time.Minute
)

// @title recipe-keeper API
// @version 1.0.0
// @description Recipe search with summaries, a local recipe cache and per-user bookmarks
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, Redis, Kafka and catalog clients and the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogDevelopment); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	if cfg.MigrateOnStart {
		if err := migrations.MigrateUp(cfg.PostgresDSN()); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PostgresHost, "port", cfg.PostgresPort, "db", cfg.PostgresDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	defer rdb.Close()

	// Bookmark events are optional. The interface must stay nil when disabled.
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Publishing bookmark events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	catalog := facades.NewSpoonacularFacade(facades.SpoonacularConfig{
		BaseURL: cfg.UpstreamBaseURL,
		APIKey:  cfg.UpstreamAPIKey,
		Host:    cfg.UpstreamHost,
		Timeout: cfg.UpstreamTimeout,
		Rate:    cfg.UpstreamRate,
		Burst:   cfg.UpstreamBurst,
	})

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExp),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	recipeReadRepo := repositories.NewRecipeReadRepository(db)
	recipeWriteRepo := repositories.NewRecipeWriteRepository(db)
	bookmarkReadRepo := repositories.NewBookmarkReadRepository(db)
	bookmarkWriteRepo := repositories.NewBookmarkWriteRepository(db)
	summaryCache := repositories.NewRecipeSummaryCacheRepository(rdb, cfg.SummaryCacheTTL)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	catalogService := services.NewCatalogService(recipeReadRepo, recipeWriteRepo, catalog, cfg.UpstreamTimeout)
	bookmarkService := services.NewBookmarkService(catalogService, bookmarkReadRepo, bookmarkWriteRepo, kafkaWriter)
	searchService := services.NewSearchService(catalog, summaryCache, cfg.UpstreamTimeout, cfg.EnrichFanOutLimit)

	r := newRouter(routerDeps{
		db:         db,
		tokener:    tokens,
		users:      userReadRepo,
		registerer: authService,
		loginer:    authService,
		searcher:   searchService,
		recipes:    catalogService,
		bookmarks:  bookmarkService,
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

type routerDeps struct {
	db         *sqlx.DB
	tokener    middlewares.Tokener
	users      middlewares.UserGetter
	registerer handlers.Registerer
	loginer    handlers.Loginer
	searcher   handlers.Searcher
	recipes    handlers.RecipeInfoGetter
	bookmarks  handlers.Bookmarker
}

// newRouter mounts the public, credential and authenticated routes.
func newRouter(d routerDeps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Handle("/metrics", promhttp.Handler())

	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(authRateLimit, authRateWindow))
		r.With(middlewares.TxMiddleware(d.db)).Post("/register", handlers.NewRegisterHandler(d.registerer))
		r.Post("/login", handlers.NewLoginHandler(d.loginer))
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(d.tokener, d.users))
		r.Use(middlewares.RequireUser)
		r.Get("/search", handlers.NewSearchHandler(d.searcher))
		r.Get("/recipes/{recipeID}", handlers.NewRecipeInfoHandler(d.recipes))
		r.Post("/bookmarks", handlers.NewAddBookmarkHandler(d.bookmarks))
		r.Get("/bookmarks", handlers.NewListBookmarksHandler(d.bookmarks))
		r.Get("/bookmarks/images", handlers.NewBookmarkImagesHandler(d.bookmarks))
	})

	return r
}
