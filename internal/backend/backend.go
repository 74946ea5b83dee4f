// Package backend wires a ledger.Store implementation from configuration.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"paisa/internal/amqp"
	"paisa/internal/config"
	"paisa/internal/ledger"
	"paisa/internal/ledger/memory"
	"paisa/internal/services"
	"paisa/internal/storage"
)

type Type string

const (
	Memory Type = "memory"
	SQLite Type = "sqlite"
)

func (t Type) IsValid() bool {
	switch t {
	case Memory, SQLite:
		return true
	}
	return false
}

func (t Type) String() string { return string(t) }

// CleanupFunc releases backend resources; nil when nothing is held.
type CleanupFunc func() error

type Result struct {
	Store   ledger.Store
	Cleanup CleanupFunc
}

// Open builds the configured backend. The sqlite backend optionally
// carries an AMQP publisher so every mutation fans out to the export
// worker; the memory backend holds no resources and publishes nothing.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	t := Type(cfg.DataBackend)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	switch t {
	case SQLite:
		return openSQLite(cfg, logger)
	default:
		return openMemory(ctx, cfg, logger)
	}
}

func openSQLite(cfg *config.Config, logger *slog.Logger) (*Result, error) {
	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("initialize SQLite repository: %w", err)
	}

	var publisher services.EventPublisher
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without events", "error", err)
		} else {
			publisher = client
			logger.Info("Initialized AMQP client",
				"exchange", cfg.AMQPExchange,
				"queue", cfg.AMQPQueue)
		}
	}

	svc := services.NewLedgerService(repo, publisher)

	logger.Info("Initialized SQLite backend",
		"db_path", cfg.SQLiteDBPath,
		"amqp_enabled", publisher != nil)

	return &Result{Store: svc, Cleanup: svc.Close}, nil
}

func openMemory(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	store := memory.New()
	if cfg.DemoData {
		if err := store.SeedDemoData(ctx); err != nil {
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
		logger.Info("Seeded demo data")
	}

	logger.Info("Initialized memory backend")
	return &Result{Store: store, Cleanup: nil}, nil
}
