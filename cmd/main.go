// @title Itinerary Backend API
// @version 1.0
// @description Normalized trip itinerary, activity management and suggestion voting
// @termsOfService http://swagger.io/terms/

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/cors"

	_ "ITINERARY_BACK-END/docs" // This is required for swagger
	"ITINERARY_BACK-END/internal/config"
	"ITINERARY_BACK-END/internal/handlers"
	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/logger"
	"ITINERARY_BACK-END/internal/metrics"
	"ITINERARY_BACK-END/internal/middleware"
	"ITINERARY_BACK-END/internal/routes"
	"ITINERARY_BACK-END/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	appLog := logger.NewLogger(cfg.Logging.Level)
	loc, _ := cfg.Location() // validated by Load

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	h := routes.Handlers{Metrics: reg, Log: appLog}
	var (
		source itinerary.Source
		db     *store.Postgres
	)

	if cfg.UseSnapshot() {
		snapshot := store.NewFileSource(cfg.Itinerary.SnapshotFile, appLog)
		source = snapshot
		h.Health = handlers.NewHealthHandler(snapshot, "snapshot")
		appLog.Info("serving itinerary from snapshot", "file", cfg.Itinerary.SnapshotFile)
	} else {
		pool, err := store.Connect(context.Background(), cfg, "itinerary-backend")
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer pool.Close()
		appLog.Info("connected to database", "host", cfg.Database.Host, "name", cfg.Database.Name)

		db = store.NewPostgres(pool, cfg.Database.QueryTimeout, appLog)
		source = db
		h.Health = handlers.NewHealthHandler(db, "db")
	}

	pipeline := itinerary.NewPipeline(source, loc, appLog, m)
	pipeline.SetFetchLimit(cfg.Itinerary.FetchConcurrency)
	h.Itinerary = handlers.NewItineraryHandler(pipeline, appLog)

	// Writes need the database; a snapshot is read-only.
	if db != nil {
		h.Activities = handlers.NewActivitiesHandler(db, loc, appLog)
		h.Suggestions = handlers.NewSuggestionsHandler(db, pipeline, m, appLog)
		h.Roles = db
	}

	mux := http.NewServeMux()
	routes.SetupRoutes(mux, h, &cfg.JWT)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(middleware.RequestID(mux)),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLog.Info("HTTP server listening", "addr", srv.Addr, "timezone", loc.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	// Wait for SIGINT/SIGTERM to shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	appLog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error("server shutdown error", "err", err)
	}
	appLog.Info("server stopped")
}
