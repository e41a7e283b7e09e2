package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "liquidation_backoffice/docs"
	"liquidation_backoffice/internal/adapter/http/handlers"
	"liquidation_backoffice/internal/adapter/http/middleware"
	"liquidation_backoffice/internal/infrastructure/config"
	"liquidation_backoffice/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		// no logger yet
		panic(err)
	}

	log, err := logger.NewForEnvironment(cfg.App.Env, cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		panic(err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = serve(ctx, cfg, log)
	stop()
	if err != nil {
		log.Error("Failed to run the application", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

// serve wires the application and blocks until ctx is done or the listener
// fails. Backend handles are closed before it returns.
func serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	app, err := Build(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("wire application: %w", err)
	}
	defer app.Close()

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.App.Port),
		Handler:      NewRouter(cfg, log, app),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("server listening", zap.String("addr", srv.Addr), zap.String("storage", cfg.Storage.Backend))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}
	return nil
}

// NewRouter builds the gin engine serving app under /v1.
func NewRouter(cfg *config.Config, log *zap.Logger, app *App) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	protected := v1.Group("")
	if cfg.JWT.Secret != "" {
		protected.Use(middleware.JWTAuth(middleware.JWTConfig{Secret: cfg.JWT.Secret, Logger: log}))
	}
	addCustomerRoutes(protected, handlers.NewCustomerHandler(app.Customers))
	addLiquidationRoutes(protected, handlers.NewLiquidationHandler(app.Liquidations))

	return router
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(middleware.RequestID())
	router.Use(logger.GinMiddleware(log.Named("http")))
	router.Use(logger.Recovery(log.Named("http")))
}
