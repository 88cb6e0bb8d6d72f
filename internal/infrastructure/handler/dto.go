package handler

import "github.com/damon-houk/expense-tracker/internal/infrastructure/view"

// AddTransactionRequest represents the request body for adding a transaction
type AddTransactionRequest struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

// UndoRequest represents the request body for undoing a transaction
type UndoRequest struct {
	Positions []int `json:"positions"`
}

// Filter types accepted by SetFilterRequest
const (
	FilterTypeAmount   = "amount"
	FilterTypeCategory = "category"
)

// SetFilterRequest represents the request body for replacing the active filter
type SetFilterRequest struct {
	Type     string  `json:"type"`
	Amount   float64 `json:"amount,omitempty"`
	Category string  `json:"category,omitempty"`
}

// TableResponse is returned by every successful tracker endpoint
type TableResponse struct {
	view.Table
	Filter string `json:"filter,omitempty"`
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error       string `json:"error"`
	Status      int    `json:"status"`
	Description string `json:"description"`
	RequestID   string `json:"request_id"`
}
