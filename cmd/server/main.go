package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"warehouse-dashboard/config"
	"warehouse-dashboard/internal/action"
	"warehouse-dashboard/internal/api"
	"warehouse-dashboard/internal/apiclient"
	"warehouse-dashboard/internal/broker"
	"warehouse-dashboard/internal/redisclient"
	"warehouse-dashboard/internal/repository"
	"warehouse-dashboard/internal/screen"
	"warehouse-dashboard/internal/service"
	"warehouse-dashboard/internal/session"
	"warehouse-dashboard/internal/store"
	"warehouse-dashboard/internal/util"
	"warehouse-dashboard/internal/worker"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting warehouse dashboard", zap.String("api", cfg.API.BaseURL))

	tp, err := util.InitTracer("warehouse-dashboard", cfg.Observ.JaegerEndpoint)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Warn("Error shutting down tracer", zap.Error(err))
		}
	}()

	db, err := store.NewStore(cfg.Database.URL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("Database connected")

	redisClient, err := redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	logger.Info("Redis connected")

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicEvents)
	defer producer.Close()
	logger.Info("Kafka producer initialized", zap.String("topic", cfg.Kafka.TopicEvents))

	eventPublisher := broker.NewEventPublisher(producer)

	client := apiclient.NewClient(cfg.API.BaseURL, cfg.API.Timeout)

	authActions := action.NewAuth(repository.NewAuthRepository(service.NewAuthService(client)))
	dashboardActions := action.NewDashboard(repository.NewDashboardRepository(service.NewDashboardService(client)))

	var (
		productRepo  repository.ProductRepository  = repository.NewProductRepository(service.NewProductService(client), eventPublisher)
		categoryRepo repository.CategoryRepository = repository.NewCategoryRepository(service.NewCategoryService(client), eventPublisher)
		locationRepo repository.LocationRepository = repository.NewLocationRepository(service.NewLocationService(client), eventPublisher)
		stockRepo    repository.StockRepository    = repository.NewStockRepository(service.NewStockService(client), eventPublisher)
	)
	productActions := action.NewResource(productRepo)
	categoryActions := action.NewResource(categoryRepo)
	locationActions := action.NewResource(locationRepo)
	stockActions := action.NewResource(stockRepo)

	sessions := session.NewManager(redisClient, authActions, session.Config{
		Secret:         cfg.Auth.Secret,
		MaxAge:         cfg.Auth.SessionMaxAge,
		AccessTokenTTL: cfg.Auth.AccessTokenTTL,
		RefreshEnabled: cfg.Auth.RefreshEnabled,
	})

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	activityConsumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.TopicEvents, cfg.Kafka.ConsumerGroup)
	activityWorker := worker.NewActivityWorker(activityConsumer, db)
	go func() {
		if err := activityWorker.Start(workerCtx); err != nil && err != context.Canceled {
			logger.Error("Activity worker error", zap.Error(err))
		}
	}()

	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handler, err := api.NewHandler(api.Deps{
		Sessions:  sessions,
		State:     redisClient,
		Account:   authActions,
		Dashboard: dashboardActions,
		Activity:  db,
		Ready: map[string]api.Pinger{
			"postgres": db,
			"redis":    redisClient,
		},
		Products:   screen.NewProductScreen(productActions),
		Categories: screen.NewCategoryScreen(categoryActions),
		Locations:  screen.NewLocationScreen(locationActions),
		Stocks:     screen.NewStockScreen(stockActions),
	}, api.Options{
		CookieSecure: cfg.Auth.CookieSecure,
		StateTTL:     cfg.Auth.SessionMaxAge,
	})
	if err != nil {
		logger.Fatal("Failed to build HTTP handler", zap.Error(err))
	}
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Server forced to shutdown", zap.Error(err))
	}

	workerCancel()
	if err := activityWorker.Stop(); err != nil {
		logger.Warn("Error stopping activity worker", zap.Error(err))
	}

	logger.Info("Server exited")
}
