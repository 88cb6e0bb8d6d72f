package repository

import (
	"context"

	"github.com/damon-houk/expense-tracker/internal/domain/entity"
)

// TransactionRepository defines the ledger: an ordered store of transactions
// where insertion order is display order
type TransactionRepository interface {
	// Add appends a transaction to the end of the ledger. A nil transaction
	// fails with entity.ErrNullTransaction.
	Add(ctx context.Context, transaction *entity.Transaction) error

	// Remove deletes the first entry with the same identity as transaction.
	// Removing an absent transaction is a no-op.
	Remove(ctx context.Context, transaction *entity.Transaction) error

	// Snapshot returns an independent copy of the ledger in insertion order
	Snapshot(ctx context.Context) ([]*entity.Transaction, error)
}
