package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"gopkg.in/natefinch/lumberjack.v2"

	"rootroutes-service/authz"
	"rootroutes-service/cache"
	"rootroutes-service/config"
	error2 "rootroutes-service/error"
	"rootroutes-service/handlers"
	"rootroutes-service/routes"
	"rootroutes-service/services"
	"rootroutes-service/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(cfg)
	defer closeLog()

	if err := run(cfg, logger); err != nil {
		logger.WithFields(logrus.Fields{"path": "main"}).WithError(err).Error("server stopped")
		closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *logrus.Logger) error {
	ctx := context.Background()

	tracerProvider, err := NewTracerProvider(cfg.ServiceName, cfg.JaegerAddress, cfg.Env)
	if err != nil {
		return fmt.Errorf("JaegerTraceProvider failed to initialize: %w", err)
	}
	defer tracerProvider.Shutdown(ctx)
	tracer := tracerProvider.Tracer(cfg.ServiceName)

	mongoconn := options.Client().ApplyURI(cfg.MongoURI)
	mongoclient, err := mongo.Connect(ctx, mongoconn)
	if err != nil {
		return fmt.Errorf("connect to MongoDB: %w", err)
	}
	defer mongoclient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := mongoclient.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping MongoDB: %w", err)
	}
	logger.WithFields(logrus.Fields{"path": "main", "db": cfg.MongoDBName}).Info("MongoDB successfully connected")

	db := mongoclient.Database(cfg.MongoDBName)
	if err := services.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	var lookupCache services.DestinationLookupCache
	if cfg.RedisAddr != "" {
		destinationCache := cache.New(cfg.RedisAddr, logger, tracer)
		defer destinationCache.Close()
		if err := destinationCache.Ping(); err != nil {
			logger.WithError(err).Warn("Redis unavailable, hotel lookups will not be cached")
		}
		lookupCache = destinationCache
	}

	if !cfg.IsHotelAPIConfigured() {
		logger.WithFields(logrus.Fields{"path": "main"}).Warn("HOTEL_API_KEY not set, hotel search serves mock data")
	}

	authorizer := authz.NewAuthorizer()
	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiresIn)

	userCollection := db.Collection(services.UsersCollection)
	authService := services.NewAuthService(userCollection, tracer, logger)
	userService := services.NewUserServiceImpl(userCollection, tracer, logger)
	destinationService := services.NewDestinationServiceImpl(db.Collection(services.DestinationsCollection), tracer, logger, authorizer)
	tripService := services.NewTripServiceImpl(db.Collection(services.TripsCollection), tracer, logger, authorizer)
	cultureService := services.NewCultureServiceImpl(db.Collection(services.CultureCollection), tracer, logger)
	hotelService := services.NewHotelServiceImpl(cfg.HotelAPIBaseURL, cfg.HotelAPIHost, cfg.HotelAPIKey, lookupCache, tracer, logger)

	responder := handlers.NewResponder(logger, cfg.IsDevelopment())
	authMiddleware := handlers.NewAuthMiddleware(tokens, userService, responder)

	authRoutes := routes.NewAuthRouteHandler(handlers.NewAuthHandler(authService, userService, tokens, responder), authMiddleware)
	destinationRoutes := routes.NewDestinationRouteHandler(handlers.NewDestinationHandler(destinationService, responder), authMiddleware)
	tripRoutes := routes.NewTripRouteHandler(handlers.NewTripHandler(tripService, responder), authMiddleware)
	cultureRoutes := routes.NewCultureRouteHandler(handlers.NewCultureHandler(cultureService, responder), authMiddleware)
	hotelRoutes := routes.NewHotelRouteHandler(handlers.NewHotelHandler(hotelService, responder))
	healthHandler := handlers.NewHealthHandler(mongoclient, cfg.ServiceName)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	server := gin.New()
	server.Use(
		handlers.RequestID(),
		handlers.RequestLogger(logger),
		gin.CustomRecoveryWithWriter(logger.Writer(), func(c *gin.Context, recovered interface{}) {
			responder.Error(c, fmt.Errorf("panic: %v", recovered))
		}),
		handlers.ExtractTraceInfoMiddleware(),
	)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	server.Use(cors.New(corsConfig))

	server.NoRoute(func(c *gin.Context) {
		responder.Error(c, error2.NewNotFoundError("Route "+c.Request.URL.Path))
	})

	router := server.Group("/api")
	router.GET("/health", healthHandler.Health)

	authRoutes.AuthRoute(router)
	destinationRoutes.DestinationRoute(router)
	tripRoutes.TripRoute(router)
	cultureRoutes.CultureRoute(router)
	hotelRoutes.HotelRoute(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{"path": "main", "port": cfg.Port, "env": cfg.Env}).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
		return nil
	case sig := <-quit:
		logger.WithFields(logrus.Fields{"path": "main", "signal": sig.String()}).Info("shutting down")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}

// newLogger writes to stdout, or to a rotated file when LOG_FILE is set.
func newLogger(cfg *config.Config) (*logrus.Logger, func()) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.LogFile == "" {
		logger.SetOutput(os.Stdout)
		return logger, func() {}
	}

	lumberjackLog := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10,
		MaxBackups: 5,
		LocalTime:  true,
	}
	logger.SetOutput(io.MultiWriter(os.Stdout, lumberjackLog))
	return logger, func() {
		if err := lumberjackLog.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "Error closing log file:", err)
		}
	}
}

// NewTracerProvider exports to Jaeger when an endpoint is configured.
// Without one, spans are still created so trace context propagates.
func NewTracerProvider(serviceName, collectorEndpoint, env string) (*sdktrace.TracerProvider, error) {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
			semconv.DeploymentEnvironmentKey.String(env),
		)),
	}
	if collectorEndpoint != "" {
		exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(collectorEndpoint)))
		if err != nil {
			return nil, fmt.Errorf("unable to initialize exporter due: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp, nil
}
