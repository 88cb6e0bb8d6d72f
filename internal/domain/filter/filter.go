// Package filter selects subsets of ledger transactions by exact amount or category
package filter

import (
	"fmt"
	"strings"

	"github.com/damon-houk/expense-tracker/internal/domain/entity"
)

// TransactionFilter selects the transactions that match it. The result keeps
// the relative order of the input and never contains anything the input did not.
type TransactionFilter interface {
	Select(transactions []*entity.Transaction) []*entity.Transaction
	String() string
}

// AmountFilter matches transactions whose amount equals the threshold exactly
type AmountFilter struct {
	threshold float64
}

// NewAmountFilter creates an amount filter for a positive threshold
func NewAmountFilter(threshold float64) (*AmountFilter, error) {
	if entity.ValidateAmount(threshold) != nil {
		return nil, fmt.Errorf("%w: Invalid amount filter", entity.ErrInvalidFilterArgument)
	}
	return &AmountFilter{threshold: threshold}, nil
}

// Threshold returns the amount being matched
func (f *AmountFilter) Threshold() float64 {
	return f.threshold
}

// Select keeps transactions with an amount equal to the threshold
func (f *AmountFilter) Select(transactions []*entity.Transaction) []*entity.Transaction {
	return selectWhere(transactions, func(tx *entity.Transaction) bool {
		return tx.Amount() == f.threshold
	})
}

func (f *AmountFilter) String() string {
	return fmt.Sprintf("amount == %g", f.threshold)
}

// CategoryFilter matches transactions whose category equals the given text,
// case-sensitive and whole-string
type CategoryFilter struct {
	category string
}

// NewCategoryFilter creates a category filter for non-blank text
func NewCategoryFilter(category string) (*CategoryFilter, error) {
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("%w: Invalid category filter", entity.ErrInvalidFilterArgument)
	}
	return &CategoryFilter{category: category}, nil
}

// Category returns the category being matched
func (f *CategoryFilter) Category() string {
	return f.category
}

// Select keeps transactions in the filter's category
func (f *CategoryFilter) Select(transactions []*entity.Transaction) []*entity.Transaction {
	return selectWhere(transactions, func(tx *entity.Transaction) bool {
		return tx.Category() == f.category
	})
}

func (f *CategoryFilter) String() string {
	return fmt.Sprintf("category == %q", f.category)
}

func selectWhere(transactions []*entity.Transaction, keep func(*entity.Transaction) bool) []*entity.Transaction {
	matched := make([]*entity.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx != nil && keep(tx) {
			matched = append(matched, tx)
		}
	}
	return matched
}
