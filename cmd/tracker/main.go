package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/damon-houk/expense-tracker/internal/application/service"
	"github.com/damon-houk/expense-tracker/internal/config"
	"github.com/damon-houk/expense-tracker/internal/infrastructure/db"
	"github.com/damon-houk/expense-tracker/internal/infrastructure/logger"
	"github.com/damon-houk/expense-tracker/internal/infrastructure/terminal"
)

func main() {
	cfg := config.Load()

	// Logs go to stderr so they do not interleave with the table
	log := logger.NewJSONLogger(os.Stderr, logger.ParseLevel(cfg.LogLevel))
	logger.SetDefaultLogger(log)

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", map[string]interface{}{"error": err.Error()})
	}

	ledger, closeLedger, err := db.OpenLedger(cfg.LedgerBackend, log)
	if err != nil {
		log.Fatal("Failed to open ledger", map[string]interface{}{"error": err.Error()})
	}
	defer closeLedger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console := terminal.NewConsole(os.Stdin, os.Stdout)
	svc := service.NewTrackerService(ledger, console, service.WithLogger(log))

	if err := console.Run(ctx, svc); err != nil && ctx.Err() == nil {
		log.Error("Console stopped", map[string]interface{}{"error": err.Error()})
	}
}
