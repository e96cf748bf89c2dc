package routes

import (
	"context"
	"fmt"
	_ "funeral_quote/docs"
	"funeral_quote/internal/adapter/cache"
	"funeral_quote/internal/adapter/handoff"
	"funeral_quote/internal/adapter/http/handlers"
	"funeral_quote/internal/adapter/persistence/repository"
	"funeral_quote/internal/infrastructure/config"
	"funeral_quote/internal/infrastructure/database"
	"funeral_quote/internal/infrastructure/logger"
	"funeral_quote/internal/infrastructure/metrics"
	"funeral_quote/internal/usecase"
	"funeral_quote/internal/usecase/interfaces"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Catalog  *handlers.CatalogHandler
	Quote    *handlers.QuoteHandler
	Estimate *handlers.EstimateHandler
	Print    *handlers.PrintHandler
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[config] invalid configuration: %v", err)
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	h, err := buildHandlers(context.Background(), cfg, m)
	if err != nil {
		log.Fatalf("[startup] failed to wire dependencies: %v", err)
	}

	router := NewRouter(h, m)
	log.Infof("[startup] listening port=%d catalog_source=%s estimate_store=%s", cfg.Port, cfg.CatalogSource, cfg.EstimateStore)
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter mounts the API under /v1 plus swagger and /metrics.
func NewRouter(h Handlers, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, m)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, h)
	return router
}

func buildHandlers(ctx context.Context, cfg config.Config, m *metrics.Metrics) (Handlers, error) {
	catalogRepo, estimateRepo, err := buildRepositories(ctx, cfg)
	if err != nil {
		return Handlers{}, err
	}

	printChannel, err := buildPrintChannel(ctx, cfg)
	if err != nil {
		return Handlers{}, err
	}
	sessions := cache.NewSessionLRUStore(cfg.SessionMaxEntries, cfg.SessionTTL)

	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	quoteUseCase := usecase.NewQuoteUseCase(catalogUseCase, sessions, cfg.Tax, m)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, sessions, printChannel, catalogUseCase, cfg.Tax, m)
	printUseCase := usecase.NewPrintUseCase(printChannel, cfg.Tax, m)

	return Handlers{
		Catalog:  handlers.NewCatalogHandler(catalogUseCase),
		Quote:    handlers.NewQuoteHandler(quoteUseCase),
		Estimate: handlers.NewEstimateHandler(estimateUseCase),
		Print:    handlers.NewPrintHandler(printUseCase),
	}, nil
}

func buildRepositories(ctx context.Context, cfg config.Config) (interfaces.ICatalogRepository, interfaces.IEstimateRepository, error) {
	var catalogRepo interfaces.ICatalogRepository
	var estimateRepo interfaces.IEstimateRepository

	needsDynamo := cfg.CatalogSource == config.CatalogSourceDynamo || cfg.EstimateStore == config.EstimateStoreDynamo
	if needsDynamo {
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, nil, err
		}
		if cfg.CatalogSource == config.CatalogSourceDynamo {
			catalogRepo = repository.NewCatalogDynamoRepository(ddb)
		}
		if cfg.EstimateStore == config.EstimateStoreDynamo {
			estimateRepo = repository.NewEstimateDynamoRepository(ddb)
		}
	}
	if cfg.CatalogSource == config.CatalogSourceYAML {
		catalogRepo = repository.NewCatalogYAMLRepository(cfg.CatalogFile)
	}
	if cfg.EstimateStore == config.EstimateStorePostgres {
		db, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		estimateRepo = repository.NewEstimatePostgresRepository(db)
	}
	if catalogRepo == nil || estimateRepo == nil {
		return nil, nil, fmt.Errorf("unsupported catalog source %q or estimate store %q", cfg.CatalogSource, cfg.EstimateStore)
	}
	return catalogRepo, estimateRepo, nil
}

func buildPrintChannel(ctx context.Context, cfg config.Config) (interfaces.IPrintChannel, error) {
	if cfg.RedisURL == "" {
		log.Warn("[startup] REDIS_URL not set, print hand-off is local to this process")
		return handoff.NewPrintMemoryChannel(), nil
	}
	client, err := database.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	return handoff.NewPrintRedisChannel(client), nil
}

func setMiddlewares(router *gin.Engine, m *metrics.Metrics) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	if m != nil {
		router.Use(m.Middleware())
	}
}
