package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/josephkirk/Auto-Talent-Evaluation/common/id"
	"github.com/josephkirk/Auto-Talent-Evaluation/common/llm"
	"github.com/josephkirk/Auto-Talent-Evaluation/common/logger"
	"github.com/josephkirk/Auto-Talent-Evaluation/common/metrics"
	"github.com/josephkirk/Auto-Talent-Evaluation/common/otel"
	"github.com/josephkirk/Auto-Talent-Evaluation/core/config"
	"github.com/josephkirk/Auto-Talent-Evaluation/core/db"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/http/middleware"
	httprouter "github.com/josephkirk/Auto-Talent-Evaluation/internal/http/router"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/markdown"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/service"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "talent evaluation starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(cfg.SnowflakeID); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	var stores *store.Stores
	if cfg.DB.Enabled() {
		database, err := db.New(ctx, cfg.DB)
		if err != nil {
			slog.ErrorContext(ctx, "failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer database.Close()
		stores = store.NewStores(database.Conn())
		slog.InfoContext(ctx, "database connected")
	} else {
		slog.InfoContext(ctx, "records api disabled (no DATABASE_URL configured)")
	}

	client, err := llm.New(llm.Config{
		BaseURL: cfg.Ollama.BaseURL,
		Model:   cfg.Ollama.Model,
		Timeout: cfg.Ollama.Timeout,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create generation client", "error", err)
		os.Exit(1)
	}
	if !client.Healthy(ctx) {
		// Not fatal: reports fail with a clear message until Ollama comes up.
		slog.WarnContext(ctx, "generation service not reachable", "base_url", cfg.Ollama.BaseURL, "model", client.Model())
	}

	recorder := metrics.New()
	services := service.NewServices(stores, client, markdown.New(), recorder)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, recorder, stores != nil)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services, recorder *metrics.Recorder, recordsEnabled bool) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics(recorder))

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		ReportTimeout:  cfg.Report.Timeout,
		RecordsEnabled: recordsEnabled,
		Metrics:        recorder.Handler(),
	})

	return router
}

const banner = `
 _____     _             _     _____            _
|_   _|_ _| | ___ _ __ | |_  | ____|_   ____ _| |
  | |/ _' | |/ _ \ '_ \| __| |  _| \ \ / / _' | |
  | | (_| | |  __/ | | | |_  | |___ \ V / (_| | |
  |_|\__,_|_|\___|_| |_|\__| |_____| \_/ \__,_|_|
`
