// Package service declares the collaborators the tracker drives but does not implement
package service

import "github.com/damon-houk/expense-tracker/internal/domain/entity"

// Display is the rendering surface notified by the tracker
type Display interface {
	// AppendRow echoes a just-added transaction
	AppendRow(amount float64, category, timestamp string)

	// RefreshTable replaces the displayed rows with transactions, followed by a total row
	RefreshTable(transactions []*entity.Transaction)

	// HighlightRows marks the given zero-based positions; all others are unmarked
	HighlightRows(positions []int)

	// Notify surfaces an informational or error message
	Notify(message string)

	// PromptForCategoryFilterText asks the user for a category to filter by
	PromptForCategoryFilterText() string

	// PromptForAmountFilterValue asks the user for an amount to filter by.
	// Malformed input is reported as 0.
	PromptForAmountFilterValue() float64
}
