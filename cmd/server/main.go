package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/damon-houk/expense-tracker/internal/application/service"
	"github.com/damon-houk/expense-tracker/internal/config"
	"github.com/damon-houk/expense-tracker/internal/infrastructure/db"
	"github.com/damon-houk/expense-tracker/internal/infrastructure/handler"
	"github.com/damon-houk/expense-tracker/internal/infrastructure/logger"
	"github.com/damon-houk/expense-tracker/internal/infrastructure/view"
)

func main() {
	cfg := config.Load()

	log := logger.NewJSONLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel)).
		WithField("app", "expense-tracker")
	logger.SetDefaultLogger(log)

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", map[string]interface{}{"error": err.Error()})
	}

	log.Info("Starting expense tracker", map[string]interface{}{
		"port":    cfg.Port,
		"backend": cfg.LedgerBackend,
	})

	// Initialize ledger
	ledger, closeLedger, err := db.OpenLedger(cfg.LedgerBackend, log)
	if err != nil {
		log.Fatal("Failed to open ledger", map[string]interface{}{"error": err.Error()})
	}
	defer closeLedger()

	// Initialize display, service and handler
	tv := view.NewTableView(nil)
	svc := service.NewTrackerService(ledger, tv, service.WithLogger(log))
	trackerHandler := handler.NewTrackerHandler(svc, tv, log)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.NewRouter(trackerHandler, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("Server listening", map[string]interface{}{"addr": server.Addr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Graceful shutdown failed", map[string]interface{}{"error": err.Error()})
	}
}
