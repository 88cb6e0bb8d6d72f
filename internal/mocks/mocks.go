// Package mocks provides testify mocks for the tracker's collaborators
package mocks

import (
	"context"

	"github.com/damon-houk/expense-tracker/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockTransactionRepository mocks the TransactionRepository interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Add(ctx context.Context, tx *entity.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Remove(ctx context.Context, tx *entity.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Snapshot(ctx context.Context) ([]*entity.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

// MockDisplay mocks the Display interface
type MockDisplay struct {
	mock.Mock
}

func (m *MockDisplay) AppendRow(amount float64, category, timestamp string) {
	m.Called(amount, category, timestamp)
}

func (m *MockDisplay) RefreshTable(transactions []*entity.Transaction) {
	m.Called(transactions)
}

func (m *MockDisplay) HighlightRows(positions []int) {
	m.Called(positions)
}

func (m *MockDisplay) Notify(message string) {
	m.Called(message)
}

func (m *MockDisplay) PromptForCategoryFilterText() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockDisplay) PromptForAmountFilterValue() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}
