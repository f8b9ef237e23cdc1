package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "taxledger/api/swagger" // swagger docs
	"taxledger/internal/config"
	"taxledger/internal/database"
	"taxledger/internal/handler"
	"taxledger/internal/logger"
	"taxledger/internal/repository"
	"taxledger/internal/service"
	"taxledger/internal/taxengine"
	"taxledger/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           Tax Ledger API
// @version         1.0
// @description     Tax liability calculation for Belarusian LLCs: calculations, rates and the tax calendar.
// @host            localhost:8080
// @BasePath        /
func main() {
	envErr := config.LoadEnvFile("configs/.env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zlog, err := logger.New(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Logger initialization failed: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if envErr != nil {
		zlog.Info("no configs/.env file loaded, using process environment", zap.Error(envErr))
	}

	db, err := database.NewConnection(cfg.Database.DSN(), zlog)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	zlog.Info("connected to PostgreSQL")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(zlog.Named("ws"))
	go wsHub.Run(ctx)

	// Engine over the gorm record store
	store := repository.NewRecordStore(db, repository.RecordStoreConfig{
		Timeout:       cfg.Store.Timeout,
		MaxRetries:    cfg.Store.MaxRetries,
		RetryInterval: cfg.Store.RetryInterval,
	}, zlog.Named("store"))

	engineOpts := []taxengine.Option{taxengine.WithLogger(zlog.Named("taxengine"))}
	if cfg.Tax.RatesEffectiveByPeriod {
		engineOpts = append(engineOpts, taxengine.WithRateSelector(taxengine.EffectiveByPeriodEnd))
	}
	engine := taxengine.New(store, engineOpts...)

	// Set up dependencies (Repository -> Service -> Handler)
	calcRepo := repository.NewTaxCalculationRepository(db)
	rateRepo := repository.NewTaxRateRepository(db)
	deadlineRepo := repository.NewTaxDeadlineRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	txManager := repository.NewTransactionManager(db)

	calcService := service.NewTaxCalculationService(engine, calcRepo, auditRepo, wsHub, zlog.Named("calculations"))
	rateService := service.NewTaxRateService(rateRepo, auditRepo, txManager, wsHub, zlog.Named("rates"))
	deadlineService := service.NewTaxDeadlineService(deadlineRepo)
	dashboardService := service.NewDashboardService(revenueRepo, expenseRepo, calcRepo)

	calcHandler := handler.NewTaxCalculationHandler(calcService, zlog)
	rateHandler := handler.NewTaxRateHandler(rateService, zlog)
	deadlineHandler := handler.NewTaxDeadlineHandler(deadlineService, zlog)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, zlog)

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.App.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	router.GET("/ws", wsHub.ServeWs)

	calcHandler.RegisterRoutes(router.Group(""))
	rateHandler.RegisterRoutes(router.Group(""))
	deadlineHandler.RegisterRoutes(router.Group(""))
	dashboardHandler.RegisterRoutes(router.Group(""))

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
}
