package db

import (
	"fmt"

	"github.com/damon-houk/expense-tracker/internal/domain/repository"
	"github.com/damon-houk/expense-tracker/internal/infrastructure/logger"
)

// Ledger backend names
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
)

// OpenLedger creates the named ledger backend. The returned function releases
// its resources and is always safe to call.
func OpenLedger(backend string, log logger.Logger) (repository.TransactionRepository, func(), error) {
	switch backend {
	case BackendMemory, "":
		log.Info("Using in-memory ledger", nil)
		return NewMemoryLedger(), func() {}, nil

	case BackendBadger:
		badgerDB, err := OpenInMemoryBadger()
		if err != nil {
			return nil, func() {}, err
		}
		log.Info("Using BadgerDB ledger", map[string]interface{}{"in_memory": true})

		closeDB := func() {
			if err := badgerDB.Close(); err != nil {
				log.Error("Error closing BadgerDB", map[string]interface{}{"error": err.Error()})
			}
		}
		return NewBadgerLedger(badgerDB), closeDB, nil

	default:
		return nil, func() {}, fmt.Errorf("unknown ledger backend %q", backend)
	}
}
