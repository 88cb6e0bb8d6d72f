package db

import (
	"context"

	"github.com/damon-houk/expense-tracker/internal/domain/entity"
)

// MemoryLedger implements the transaction repository interface with a slice.
// It is not safe for concurrent use; callers serialize access.
type MemoryLedger struct {
	transactions []*entity.Transaction
}

// NewMemoryLedger creates an empty in-memory ledger
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{}
}

// Add appends a transaction to the ledger
func (l *MemoryLedger) Add(ctx context.Context, tx *entity.Transaction) error {
	if tx == nil {
		return entity.ErrNullTransaction
	}

	l.transactions = append(l.transactions, tx)
	return nil
}

// Remove deletes the first entry with the same identity as tx
func (l *MemoryLedger) Remove(ctx context.Context, tx *entity.Transaction) error {
	for i, existing := range l.transactions {
		if existing.SameAs(tx) {
			l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

// Snapshot returns a copy of the ledger in insertion order
func (l *MemoryLedger) Snapshot(ctx context.Context) ([]*entity.Transaction, error) {
	snapshot := make([]*entity.Transaction, len(l.transactions))
	copy(snapshot, l.transactions)
	return snapshot, nil
}
