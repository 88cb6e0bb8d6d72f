package entity

import "errors"

// Error kinds shared by the domain and application layers
var (
	ErrInvalidAmount         = errors.New("amount must be a positive value")
	ErrInvalidCategory       = errors.New("category must not be empty")
	ErrNullTransaction       = errors.New("transaction must not be nil")
	ErrInvalidFilterArgument = errors.New("invalid filter argument")
	ErrUndoDisallowed        = errors.New("undo disallowed")
)

// IsDomainError reports whether err is one of the error kinds above
func IsDomainError(err error) bool {
	for _, kind := range []error{
		ErrInvalidAmount,
		ErrInvalidCategory,
		ErrNullTransaction,
		ErrInvalidFilterArgument,
		ErrUndoDisallowed,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
