package db

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/damon-houk/expense-tracker/internal/domain/entity"
	"github.com/dgraph-io/badger/v3"
)

var ledgerPrefix = []byte("tx:")

// storedTransaction is the value encoding of a ledger entry
type storedTransaction struct {
	ID        string  `json:"id"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	Timestamp string  `json:"timestamp"`
}

// BadgerLedger implements the transaction repository interface using BadgerDB.
// Keys are the prefix followed by a big-endian insertion sequence, so key
// order is insertion order.
type BadgerLedger struct {
	db  *badger.DB
	seq uint64
}

// NewBadgerLedger creates a ledger on an open BadgerDB
func NewBadgerLedger(db *badger.DB) *BadgerLedger {
	return &BadgerLedger{db: db}
}

// OpenInMemoryBadger opens a BadgerDB that keeps everything in memory
func OpenInMemoryBadger() (*badger.DB, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil // Disable Badger's default logger

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// Add appends a transaction to the ledger
func (l *BadgerLedger) Add(ctx context.Context, tx *entity.Transaction) error {
	if tx == nil {
		return entity.ErrNullTransaction
	}

	data, err := json.Marshal(storedTransaction{
		ID:        tx.ID(),
		Amount:    tx.Amount(),
		Category:  tx.Category(),
		Timestamp: tx.Timestamp(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	key := l.nextKey()
	err = l.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
	if err != nil {
		return fmt.Errorf("failed to store transaction: %w", err)
	}

	return nil
}

// Remove deletes the first entry with the same identity as tx
func (l *BadgerLedger) Remove(ctx context.Context, tx *entity.Transaction) error {
	if tx == nil {
		return nil
	}

	err := l.db.Update(func(txn *badger.Txn) error {
		var found []byte

		err := l.scan(txn, func(key []byte, stored storedTransaction) bool {
			if stored.ID == tx.ID() {
				found = key
				return false
			}
			return true
		})
		if err != nil || found == nil {
			return err
		}

		return txn.Delete(found)
	})
	if err != nil {
		return fmt.Errorf("failed to remove transaction: %w", err)
	}

	return nil
}

// Snapshot returns a copy of the ledger in insertion order
func (l *BadgerLedger) Snapshot(ctx context.Context) ([]*entity.Transaction, error) {
	snapshot := make([]*entity.Transaction, 0)

	err := l.db.View(func(txn *badger.Txn) error {
		var restoreErr error

		err := l.scan(txn, func(_ []byte, stored storedTransaction) bool {
			tx, err := entity.RestoreTransaction(stored.ID, stored.Amount, stored.Category, stored.Timestamp)
			if err != nil {
				restoreErr = err
				return false
			}
			snapshot = append(snapshot, tx)
			return true
		})
		if err != nil {
			return err
		}
		return restoreErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	return snapshot, nil
}

// scan visits ledger entries in key order until visit returns false
func (l *BadgerLedger) scan(txn *badger.Txn, visit func(key []byte, stored storedTransaction) bool) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = ledgerPrefix

	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Seek(ledgerPrefix); it.ValidForPrefix(ledgerPrefix); it.Next() {
		item := it.Item()

		var stored storedTransaction
		err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &stored)
		})
		if err != nil {
			return fmt.Errorf("failed to unmarshal transaction: %w", err)
		}

		if !visit(item.KeyCopy(nil), stored) {
			return nil
		}
	}

	return nil
}

func (l *BadgerLedger) nextKey() []byte {
	l.seq++
	key := make([]byte, len(ledgerPrefix)+8)
	copy(key, ledgerPrefix)
	binary.BigEndian.PutUint64(key[len(ledgerPrefix):], l.seq)
	return key
}
