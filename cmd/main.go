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
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-currency-display/internal/events"
	"github.com/sbilibin2017/gw-currency-display/internal/facades"
	"github.com/sbilibin2017/gw-currency-display/internal/handlers"
	"github.com/sbilibin2017/gw-currency-display/internal/jwt"
	"github.com/sbilibin2017/gw-currency-display/internal/logger"
	"github.com/sbilibin2017/gw-currency-display/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-display/internal/repositories"
	"github.com/sbilibin2017/gw-currency-display/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

var errUnknownDriver = errors.New("unknown driver")

// config holds everything parseConfig reads from the environment.
type config struct {
	AppHost, AppPort, LogLevel string
	SiteDir, CatalogPath       string

	StorageDriver string // memory, redis or postgres

	PGHost                         string
	PGPort                         int
	PGUser, PGPassword, PGDB       string
	PGMaxOpenConns, PGMaxIdleConns int

	RedisHost                        string
	RedisPort, RedisDB               int
	RedisPassword                    string
	RedisPoolSize, RedisMinIdleConns int
	RedisExpSecond                   int

	RatesSource        string // http or grpc
	RatesURL           string
	RatesTimeoutSecond int
	GeoURL             string
	GWHost, GWPort     string

	KafkaBrokers []string
	KafkaTopic   string

	SessionSecretKey string
	SessionExpSecond int
	SessionSecure    bool
}

// @title gw-currency-display API
// @version 1.0.0
// @description Multi-currency price display for the site: rates, visitor currency, formatted prices and the template catalog
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
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

// parseConfig loads environment variables from a file and returns the
// application, storage, upstream, event and session configuration.
func parseConfig(path string) (cfg *config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	cfg = &config{}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.SiteDir = getEnv("SITE_DIR", "public")
	cfg.CatalogPath = getEnv("CATALOG_PATH", "public/data/templates.json")

	// Storage config
	cfg.StorageDriver = getEnv("STORAGE_DRIVER", "memory")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return nil, err
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return nil, err
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return nil, err
	}
	if cfg.RedisExpSecond, err = getInt("REDIS_EXP_SECOND", "0"); err != nil {
		return nil, err
	}

	// Upstream config
	cfg.RatesSource = getEnv("RATES_SOURCE", "http")
	cfg.RatesURL = getEnv("RATES_URL", facades.DefaultRatesURL)
	cfg.GeoURL = getEnv("GEO_URL", facades.DefaultGeoURL)
	if cfg.RatesTimeoutSecond, err = getInt("RATES_TIMEOUT_SECOND", "5"); err != nil {
		return nil, err
	}
	cfg.GWHost = getEnv("GW_EXCHANGER_HOST", "localhost")
	cfg.GWPort = getEnv("GW_EXCHANGER_PORT", "50051")

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "currency-display-events")

	// Session config
	cfg.SessionSecretKey = getEnv("SESSION_SECRET_KEY", "my_super_secret_key")
	if cfg.SessionExpSecond, err = getInt("SESSION_EXP_SECOND", "31536000"); err != nil {
		return nil, err
	}
	if cfg.SessionSecure, err = strconv.ParseBool(getEnv("SESSION_SECURE", "false")); err != nil {
		return nil, fmt.Errorf("SESSION_SECURE: %w", err)
	}

	return cfg, nil
}

// openStore connects the configured key-value backend. The returned close
// function releases its connections.
func openStore(ctx context.Context, cfg *config) (services.KeyValueStore, func(), error) {
	switch cfg.StorageDriver {
	case "memory":
		return repositories.NewMemoryStore(), func() {}, nil

	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("redis connection error: %w", err)
		}
		store := repositories.NewRedisStore(rdb, "currency:", time.Duration(cfg.RedisExpSecond)*time.Second)
		return store, func() { rdb.Close() }, nil

	case "postgres":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
		logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres connection error: %w", err)
		}
		db.SetMaxOpenConns(cfg.PGMaxOpenConns)
		db.SetMaxIdleConns(cfg.PGMaxIdleConns)

		store := repositories.NewPostgresStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, func() { db.Close() }, nil
	}
	return nil, nil, fmt.Errorf("%w: storage %q", errUnknownDriver, cfg.StorageDriver)
}

// openRateSource builds the live rate provider.
func openRateSource(cfg *config, client *http.Client) (services.RateSource, func(), error) {
	switch cfg.RatesSource {
	case "http":
		return facades.NewExchangeRatesHTTPFacade(client, cfg.RatesURL), func() {}, nil

	case "grpc":
		grpcAddr := fmt.Sprintf("%s:%s", cfg.GWHost, cfg.GWPort)
		conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to gRPC service at %s: %w", grpcAddr, err)
		}
		facade := facades.NewExchangeRatesGRPCFacade(pb.NewExchangeServiceClient(conn))
		return facade, func() { conn.Close() }, nil
	}
	return nil, nil, fmt.Errorf("%w: rates source %q", errUnknownDriver, cfg.RatesSource)
}

// app is the wired service graph behind the router.
type app struct {
	session  *services.CurrencySession
	catalog  *services.Catalog
	sessions *jwt.JWT
	bus      *events.Bus
}

// newApp wires storage, upstreams and events into the currency session.
func newApp(ctx context.Context, cfg *config, store services.KeyValueStore, source services.RateSource, client *http.Client) *app {
	bus := events.NewBus()

	rateStore := services.NewRateStore(store, source, bus)
	prefs := services.NewUserPreference(store, rateStore)
	detector := services.NewLocationDetector(facades.NewGeolocationHTTPFacade(client, cfg.GeoURL), bus)
	display := services.NewDisplaySync(prefs, bus)

	catalog := services.NewCatalog(client)
	if err := catalog.Load(ctx, cfg.CatalogPath); err != nil {
		logger.Log.Errorw("failed to load template catalog", "location", cfg.CatalogPath, "error", err)
	}
	display.SetRerenderHook(services.NewPageRenderer(catalog, services.NewHomepagePricing()).Hook())

	return &app{
		session: services.NewCurrencySession(rateStore, prefs, detector, display),
		catalog: catalog,
		sessions: jwt.New(
			jwt.WithSecretKey(cfg.SessionSecretKey),
			jwt.WithExpiration(time.Duration(cfg.SessionExpSecond)*time.Second),
			jwt.WithSecureCookie(cfg.SessionSecure),
		),
		bus: bus,
	}
}

// newRouter mounts the API, swagger and the rendered site.
func newRouter(cfg *config, a *app) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	visitor := middlewares.VisitorIDFromContext

	r.Group(func(r chi.Router) {
		r.Use(middlewares.VisitorMiddleware(a.sessions))

		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/rates", handlers.NewGetRatesHandler(a.session))
			r.Post("/rates/refresh", handlers.NewRefreshRatesHandler(a.session))
			r.Get("/currencies", handlers.NewListCurrenciesHandler())
			r.Get("/currency", handlers.NewGetCurrencyHandler(a.session, visitor))
			r.Put("/currency", handlers.NewSetCurrencyHandler(a.session, visitor))
			r.Get("/price", handlers.NewGetPriceHandler(a.session, visitor))
			r.Get("/templates", handlers.NewListTemplatesHandler(a.catalog, a.session, visitor))
			r.Get("/templates/{id}", handlers.NewGetTemplateHandler(a.catalog, a.session, visitor))
		})

		r.Get("/*", handlers.NewPageHandler(os.DirFS(cfg.SiteDir), a.session, visitor))
	})

	return r
}

// run initializes the logger, storage, upstream clients, event sinks and
// HTTP server, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	log.Infow("Key-value store ready", "driver", cfg.StorageDriver)

	client := &http.Client{Timeout: time.Duration(cfg.RatesTimeoutSecond) * time.Second}
	source, closeSource, err := openRateSource(cfg, client)
	if err != nil {
		return err
	}
	defer closeSource()

	a := newApp(ctx, cfg, store, source, client)

	// Forward domain events to Kafka when brokers are configured
	var writer events.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		writer = &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			Async:                  true,
			AllowAutoTopicCreation: true,
		}
		log.Infow("Publishing events to Kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}
	sink := events.NewKafkaSink(writer)
	defer sink.Close()
	a.bus.SubscribeAll(sink.Handle)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(cfg, a),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
