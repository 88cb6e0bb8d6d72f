// Package view holds a headless transaction table that any front end can render
package view

import (
	"sort"
	"sync"

	"github.com/damon-houk/expense-tracker/internal/domain/entity"
)

// TotalLabel labels the synthetic row appended after the transactions
const TotalLabel = "Total"

// Row is one displayed transaction
type Row struct {
	Serial    int     `json:"serial"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	Timestamp string  `json:"timestamp"`
}

// Table is a point-in-time copy of the view state
type Table struct {
	Rows        []Row    `json:"rows"`
	Total       float64  `json:"total"`
	Highlighted []int    `json:"highlighted"`
	Notices     []string `json:"notices,omitempty"`
}

// Prompter supplies filter input on behalf of the user
type Prompter interface {
	CategoryFilterText() string
	AmountFilterValue() float64
}

// TableView implements the display collaborator in memory. Refreshing the
// table clears highlights, matching a redrawn table.
type TableView struct {
	mu          sync.RWMutex
	rows        []Row
	total       float64
	highlighted map[int]struct{}
	notices     []string
	prompter    Prompter
}

// NewTableView creates an empty view. A nil prompter answers every prompt
// with empty input.
func NewTableView(prompter Prompter) *TableView {
	return &TableView{
		highlighted: make(map[int]struct{}),
		prompter:    prompter,
	}
}

// AppendRow adds a row for a just-added transaction
func (v *TableView) AppendRow(amount float64, category, timestamp string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rows = append(v.rows, Row{
		Serial:    len(v.rows) + 1,
		Amount:    amount,
		Category:  category,
		Timestamp: timestamp,
	})
	v.total += amount
}

// RefreshTable replaces all rows with transactions and recomputes the total
func (v *TableView) RefreshTable(transactions []*entity.Transaction) {
	v.mu.Lock()
	defer v.mu.Unlock()

	rows := make([]Row, 0, len(transactions))
	for i, tx := range transactions {
		rows = append(rows, Row{
			Serial:    i + 1,
			Amount:    tx.Amount(),
			Category:  tx.Category(),
			Timestamp: tx.Timestamp(),
		})
	}

	v.rows = rows
	v.total = entity.TotalAmount(transactions)
	v.highlighted = make(map[int]struct{})
}

// HighlightRows marks exactly the given positions
func (v *TableView) HighlightRows(positions []int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.highlighted = make(map[int]struct{}, len(positions))
	for _, pos := range positions {
		v.highlighted[pos] = struct{}{}
	}
}

// Notify queues a message for the user
func (v *TableView) Notify(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.notices = append(v.notices, message)
}

// PromptForCategoryFilterText asks the prompter for a category
func (v *TableView) PromptForCategoryFilterText() string {
	if v.prompter == nil {
		return ""
	}
	return v.prompter.CategoryFilterText()
}

// PromptForAmountFilterValue asks the prompter for an amount
func (v *TableView) PromptForAmountFilterValue() float64 {
	if v.prompter == nil {
		return 0
	}
	return v.prompter.AmountFilterValue()
}

// IsHighlighted reports whether the row at pos is marked
func (v *TableView) IsHighlighted(pos int) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	_, ok := v.highlighted[pos]
	return ok
}

// Table returns a copy of the current state without consuming notices
func (v *TableView) Table() Table {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.table(append([]string(nil), v.notices...))
}

// DrainNotices returns and clears the queued notices
func (v *TableView) DrainNotices() []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	notices := v.notices
	v.notices = nil
	return notices
}

// TakeTable returns a copy of the current state and clears queued notices
func (v *TableView) TakeTable() Table {
	v.mu.Lock()
	defer v.mu.Unlock()

	table := v.table(v.notices)
	v.notices = nil
	return table
}

func (v *TableView) table(notices []string) Table {
	highlighted := make([]int, 0, len(v.highlighted))
	for pos := range v.highlighted {
		highlighted = append(highlighted, pos)
	}
	sort.Ints(highlighted)

	rows := make([]Row, len(v.rows))
	copy(rows, v.rows)

	return Table{
		Rows:        rows,
		Total:       v.total,
		Highlighted: highlighted,
		Notices:     notices,
	}
}
