package di

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"trip-planner/api"
	"trip-planner/api/tourism"
	"trip-planner/config"
	"trip-planner/dao/redis"
	"trip-planner/db"
	"trip-planner/server"
	"trip-planner/server/handlers"
	services "trip-planner/service"
)

const redisPingTimeout = 3 * time.Second

// Container holds all application dependencies.
type Container struct {
	RedisClient             db.RedisClient
	RedisCatalogDao         *redis.RedisCatalogDAO
	TourismAPI              tourism.TourismAPI
	CatalogService          *services.CatalogService
	TripPlannerService      *services.TripPlannerService
	CatalogRefresherService *services.CatalogRefresherService
	VenueHandler            *handlers.VenueHandler
	ItineraryHandler        *handlers.ItineraryHandler
	CatalogHandler          *handlers.CatalogHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	TripPlannerHttpServer   *server.TripPlannerHttpServer

	closeRedis func() error
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	logger.Info("initializing container", zap.String("env", cfg.Server.Env))

	redisClient, closeRedis, err := newRedisClient(cfg, logger)
	if err != nil {
		return nil, err
	}

	// Initialize Redis Catalog DAO
	redisCatalogDao := redis.NewRedisCatalogDAO(redisClient)

	// Initialize the upstream catalog API
	var tourismAPI tourism.TourismAPI
	if cfg.Catalog.UseMock {
		logger.Info("using mock tourism api", zap.String("fixtures_dir", cfg.Catalog.FixturesDir))
		tourismAPI = tourism.NewTourismApiClientMock(cfg.Catalog.FixturesDir)
	} else {
		logger.Info("using tourism api", zap.String("base_url", cfg.Catalog.BaseURL))
		httpClient := api.NewHTTPClient(cfg.Catalog.BaseURL, cfg.Catalog.HTTPTimeout)
		tourismAPI = tourism.NewTourismApiClient(httpClient)
	}

	// Initialize service layer
	catalogService := services.NewCatalogService(redisCatalogDao, tourismAPI, cfg.Catalog.CacheTTL, logger.Named("catalog"))
	tripPlannerService := services.NewTripPlannerService(catalogService, logger.Named("planner"))
	catalogRefresherService := services.NewCatalogRefresherService(catalogService, logger.Named("refresher"))

	// Initialize handlers
	httpLogger := logger.Named("http")
	venueHandler := handlers.NewVenueHandler(catalogService, httpLogger)
	itineraryHandler := handlers.NewItineraryHandler(tripPlannerService, httpLogger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, httpLogger)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(venueHandler, itineraryHandler, catalogHandler, muxRouter)

	// initialize trip planner server
	tripPlannerHttpServer := server.NewTripPlannerHttpServer(router, muxRouter, cfg.GetServerAddr(), httpLogger)

	return &Container{
		RedisClient:             redisClient,
		RedisCatalogDao:         redisCatalogDao,
		TourismAPI:              tourismAPI,
		CatalogService:          catalogService,
		TripPlannerService:      tripPlannerService,
		CatalogRefresherService: catalogRefresherService,
		VenueHandler:            venueHandler,
		ItineraryHandler:        itineraryHandler,
		CatalogHandler:          catalogHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		TripPlannerHttpServer:   tripPlannerHttpServer,
		closeRedis:              closeRedis,
	}, nil
}

// Close releases the Redis connection.
func (c *Container) Close() error {
	if c.closeRedis == nil {
		return nil
	}
	return c.closeRedis()
}

// newRedisClient connects to Redis. Outside prod an unreachable Redis falls
// back to the in-memory client so the service still runs.
func newRedisClient(cfg *config.Config, logger *zap.Logger) (db.RedisClient, func() error, error) {
	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	redisClient := db.NewGoRedisClient(redisInternalClient, logger.Named("redis"))

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	err := redisClient.Ping(ctx)
	if err == nil {
		return redisClient, redisClient.Close, nil
	}

	redisInternalClient.Close()
	if cfg.Server.Env == config.PROD_ENV {
		return nil, nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.Addr, err)
	}
	logger.Warn("redis unreachable, using in-memory cache",
		zap.String("addr", cfg.Redis.Addr),
		zap.Error(err))
	return db.NewMockRedisClient(), nil, nil
}
