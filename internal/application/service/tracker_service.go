// Package service orchestrates the ledger, the active filter and the display
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/damon-houk/expense-tracker/internal/domain/entity"
	"github.com/damon-houk/expense-tracker/internal/domain/filter"
	"github.com/damon-houk/expense-tracker/internal/domain/repository"
	domainservice "github.com/damon-houk/expense-tracker/internal/domain/service"
	"github.com/damon-houk/expense-tracker/internal/infrastructure/logger"
)

// Messages surfaced through the display
const (
	MsgNoFilterApplied = "No filter applied"
	MsgUndoDisallowed  = "Undo Disallowed, select a row"
)

// TrackerService validates input, mutates the ledger, runs the active filter
// and keeps the display in step. It is not safe for concurrent use.
type TrackerService struct {
	ledger  repository.TransactionRepository
	display domainservice.Display
	clock   entity.Clock
	logger  logger.Logger
	filter  filter.TransactionFilter
}

// Option configures a TrackerService
type Option func(*TrackerService)

// WithClock sets the clock used to stamp new transactions
func WithClock(clock entity.Clock) Option {
	return func(s *TrackerService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLogger sets the service logger
func WithLogger(log logger.Logger) Option {
	return func(s *TrackerService) {
		if log != nil {
			s.logger = log
		}
	}
}

// NewTrackerService creates a new tracker service
func NewTrackerService(ledger repository.TransactionRepository, display domainservice.Display, opts ...Option) *TrackerService {
	s := &TrackerService{
		ledger:  ledger,
		display: display,
		clock:   entity.SystemClock{},
		logger:  logger.GetDefaultLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetFilter replaces the active filter. A nil filter is ignored.
func (s *TrackerService) SetFilter(f filter.TransactionFilter) {
	if f == nil {
		return
	}
	s.filter = f

	s.logger.Info("Filter set", map[string]interface{}{
		"filter": f.String(),
	})
}

// ActiveFilter returns the active filter, or nil if none has been set
func (s *TrackerService) ActiveFilter() filter.TransactionFilter {
	return s.filter
}

// AddTransaction records a new transaction. Invalid amount or category input
// returns false without touching the ledger; an error is only returned when
// the ledger itself fails.
func (s *TrackerService) AddTransaction(ctx context.Context, amount float64, category string) (bool, error) {
	if err := entity.ValidateAmount(amount); err != nil {
		s.rejected(amount, category, err)
		return false, nil
	}
	if err := entity.ValidateCategory(category); err != nil {
		s.rejected(amount, category, err)
		return false, nil
	}

	tx, err := entity.NewTransaction(amount, category, s.clock)
	if err != nil {
		s.rejected(amount, category, err)
		return false, nil
	}

	if err := s.ledger.Add(ctx, tx); err != nil {
		s.logger.Error("Failed to add transaction", map[string]interface{}{
			"error": err.Error(),
		})
		return false, err
	}

	s.logger.Info("Transaction added", map[string]interface{}{
		"id":        tx.ID(),
		"amount":    tx.Amount(),
		"category":  tx.Category(),
		"timestamp": tx.Timestamp(),
	})

	s.display.AppendRow(tx.Amount(), tx.Category(), tx.Timestamp())
	if err := s.Refresh(ctx); err != nil {
		return true, err
	}
	return true, nil
}

func (s *TrackerService) rejected(amount float64, category string, err error) {
	s.logger.Warn("Transaction rejected", map[string]interface{}{
		"amount":   amount,
		"category": category,
		"error":    err.Error(),
	})
}

// Refresh pushes the current ledger contents to the display
func (s *TrackerService) Refresh(ctx context.Context) error {
	snapshot, err := s.ledger.Snapshot(ctx)
	if err != nil {
		s.logger.Error("Failed to read ledger", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	s.display.RefreshTable(snapshot)
	return nil
}

// Transactions returns a snapshot of the ledger
func (s *TrackerService) Transactions(ctx context.Context) ([]*entity.Transaction, error) {
	return s.ledger.Snapshot(ctx)
}

// Total returns the sum of all ledger amounts
func (s *TrackerService) Total(ctx context.Context) (float64, error) {
	snapshot, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return entity.TotalAmount(snapshot), nil
}

// ApplyFilter highlights the ledger positions matched by the active filter and
// returns them. Without an active filter the display is notified instead and
// nothing is highlighted.
func (s *TrackerService) ApplyFilter(ctx context.Context) ([]int, error) {
	if s.filter == nil {
		s.logger.Info("Apply requested with no active filter", nil)
		s.display.Notify(MsgNoFilterApplied)
		return nil, nil
	}

	snapshot, err := s.ledger.Snapshot(ctx)
	if err != nil {
		s.logger.Error("Failed to read ledger", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	positions := matchPositions(snapshot, s.filter.Select(snapshot))

	s.logger.Info("Filter applied", map[string]interface{}{
		"filter":  s.filter.String(),
		"matches": len(positions),
	})

	s.display.HighlightRows(positions)
	return positions, nil
}

// matchPositions maps matched transactions back to their positions in snapshot
// by identity. Matches not present in snapshot are skipped.
func matchPositions(snapshot, matched []*entity.Transaction) []int {
	index := make(map[string]int, len(snapshot))
	for i := len(snapshot) - 1; i >= 0; i-- {
		index[snapshot[i].ID()] = i
	}

	positions := make([]int, 0, len(matched))
	for _, tx := range matched {
		if pos, ok := index[tx.ID()]; ok {
			positions = append(positions, pos)
		}
	}
	return positions
}

// FilterByCategory prompts the display for a category, makes it the active
// filter and applies it. Invalid input keeps the previous filter.
func (s *TrackerService) FilterByCategory(ctx context.Context) ([]int, error) {
	f, err := filter.NewCategoryFilter(s.display.PromptForCategoryFilterText())
	if err != nil {
		return nil, s.invalidFilter(err)
	}

	s.SetFilter(f)
	return s.ApplyFilter(ctx)
}

// FilterByAmount prompts the display for an amount, makes it the active
// filter and applies it. Invalid input keeps the previous filter.
func (s *TrackerService) FilterByAmount(ctx context.Context) ([]int, error) {
	f, err := filter.NewAmountFilter(s.display.PromptForAmountFilterValue())
	if err != nil {
		return nil, s.invalidFilter(err)
	}

	s.SetFilter(f)
	return s.ApplyFilter(ctx)
}

func (s *TrackerService) invalidFilter(err error) error {
	s.logger.Warn("Filter rejected", map[string]interface{}{
		"error": err.Error(),
	})
	s.display.Notify(err.Error())
	return err
}

// RemoveTransaction undoes the transaction at the first selected position.
// Only one transaction is removed per call. An empty selection, or a first
// position outside the ledger, fails with entity.ErrUndoDisallowed.
func (s *TrackerService) RemoveTransaction(ctx context.Context, selected []int) error {
	if len(selected) == 0 {
		return s.undoDisallowed(entity.ErrUndoDisallowed, nil)
	}

	snapshot, err := s.ledger.Snapshot(ctx)
	if err != nil {
		s.logger.Error("Failed to read ledger", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	pos := selected[0]
	if pos < 0 || pos >= len(snapshot) {
		return s.undoDisallowed(fmt.Errorf("%w: position %d out of range", entity.ErrUndoDisallowed, pos), selected)
	}

	tx := snapshot[pos]
	if err := s.ledger.Remove(ctx, tx); err != nil {
		s.logger.Error("Failed to remove transaction", map[string]interface{}{
			"id":    tx.ID(),
			"error": err.Error(),
		})
		return err
	}

	s.logger.Info("Transaction removed", map[string]interface{}{
		"id":       tx.ID(),
		"position": pos,
		"selected": len(selected),
	})

	return s.Refresh(ctx)
}

func (s *TrackerService) undoDisallowed(err error, selected []int) error {
	s.logger.Warn("Undo disallowed", map[string]interface{}{
		"selected": selected,
		"error":    err.Error(),
	})
	s.display.Notify(MsgUndoDisallowed)
	return err
}

// IsUndoDisallowed reports whether err is an undo rejection
func IsUndoDisallowed(err error) bool {
	return errors.Is(err, entity.ErrUndoDisallowed)
}
