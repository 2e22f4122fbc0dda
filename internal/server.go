package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/cache"
	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/dashboard"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/users"
	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config *config.Config
	dbPool *db.Pool

	redisClient  *redis.Client
	catalogCache *cache.CatalogCache
	hasher       *pkg.PasswordHasher
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	ApplySchema bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(cfg.HoneycombTracingEnabled, "fittrack-backend")
	if err != nil {
		return nil, err
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBUser:         cfg.PostgresUser,
		DBPassword:     cfg.PostgresPassword,
		DBName:         cfg.PostgresDBName,
		Schema:         cfg.PostgresSchema,
		MaxConns:       cfg.PostgresMaxConns,
		AcquireTimeout: cfg.PostgresAcquireTimeout,
		TracingEnabled: cfg.HoneycombTracingEnabled,
	})
	if err != nil {
		otelShutdown()
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if params.ApplySchema {
		if err := db.ApplySchema(ctx, dbPool, cfg.PostgresSchema); err != nil {
			dbPool.Close()
			otelShutdown()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
		log.Infof("schema [%s] applied", cfg.PostgresSchema)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool.Pool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fittrack", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       0, // use default DB
	})
	if cfg.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	hasher := pkg.NewPasswordHasher(cfg.PasswordHashCost)
	authService := auth.NewService(
		users.NewRepo(dbPool),
		hasher,
		auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
		auth.NewRedisRevocations(rdb),
	)

	return &Server{
		config:       cfg,
		dbPool:       dbPool,
		redisClient:  rdb,
		catalogCache: cache.NewCatalogCache(cfg.CatalogCacheSizeBytes, cfg.CatalogCacheTTLSec),
		hasher:       hasher,
		authService:  authService,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fittrack-router"))

	r.HandleFunc("/health", s.handleHealth).Methods("GET", "OPTIONS").Name("health")

	usersRepo := users.NewRepo(s.dbPool)
	usersHandler := users.NewHandler(
		users.NewService(usersRepo, s.hasher),
		s.authService,
		s.metricsManager,
		s.config.CookieSecure,
	)
	usersHandler.SetupRoutes(r)

	catalogRepo := catalog.NewRepo(s.dbPool)
	catalogHandler := catalog.NewHandler(
		catalog.NewService(catalogRepo, s.catalogCache, s.metricsManager),
	)
	catalogHandler.SetupRoutes(r)

	workoutsRepo := workouts.NewRepo(s.dbPool)
	workoutsHandler := workouts.NewHandler(
		workouts.NewLogger(workoutsRepo, s.metricsManager),
	)
	workoutsHandler.SetupRoutes(r)

	dashboardHandler := dashboard.NewHandler(
		dashboard.NewAnalyzer(workoutsRepo, catalogRepo, s.metricsManager),
	)
	dashboardHandler.SetupRoutes(r)

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.authService)
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.RateLimit(
		reqRateLimiter,
		s.metricsManager,
		s.config.LoginRateLimitAllowedPerMin,
		"/login", "/register",
	))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.LimitAndDrainBody())

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.dbPool.Ping(r.Context()); err != nil {
		log.Errorf("health: ping db: %s", err)
		pkg.WriteStatusResponse(w, false, "service temporarily unavailable", http.StatusServiceUnavailable)
		return
	}
	pkg.WriteStatusResponse(w, true, "ok", http.StatusOK)
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
