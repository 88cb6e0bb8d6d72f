package entity

import (
	"math"
	"strings"

	"github.com/google/uuid"
)

// TimestampLayout is the fixed dd-MM-yyyy HH:mm format of Transaction timestamps
const TimestampLayout = "02-01-2006 15:04"

// Transaction represents one recorded expense. Its fields are set once by
// NewTransaction and can only be read afterwards.
type Transaction struct {
	id        string
	amount    float64
	category  string
	timestamp string
}

// NewTransaction validates amount and category and stamps the transaction
// with the clock's current time. A nil clock falls back to SystemClock.
func NewTransaction(amount float64, category string, clock Clock) (*Transaction, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}

	if clock == nil {
		clock = SystemClock{}
	}

	return &Transaction{
		id:        uuid.New().String(),
		amount:    amount,
		category:  category,
		timestamp: clock.Now().Format(TimestampLayout),
	}, nil
}

// RestoreTransaction rebuilds a previously created transaction from its stored
// fields, keeping its identity
func RestoreTransaction(id string, amount float64, category, timestamp string) (*Transaction, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, err
	}
	if _, err := ParseTimestamp(timestamp); err != nil {
		return nil, err
	}

	return &Transaction{
		id:        id,
		amount:    amount,
		category:  category,
		timestamp: timestamp,
	}, nil
}

// ValidateAmount reports ErrInvalidAmount unless amount is a finite positive number
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateCategory reports ErrInvalidCategory for empty or blank categories
func ValidateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return ErrInvalidCategory
	}
	return nil
}

// ID returns the opaque identity assigned at construction
func (t *Transaction) ID() string {
	return t.id
}

// Amount returns the transaction amount
func (t *Transaction) Amount() float64 {
	return t.amount
}

// Category returns the transaction category
func (t *Transaction) Category() string {
	return t.category
}

// Timestamp returns the creation time formatted with TimestampLayout
func (t *Transaction) Timestamp() string {
	return t.timestamp
}

// SameAs reports whether t and other are the same ledger entry. Two
// transactions with equal fields but different identities are not the same.
func (t *Transaction) SameAs(other *Transaction) bool {
	if t == nil || other == nil {
		return false
	}
	return t.id == other.id
}

// TotalAmount sums the amounts of transactions
func TotalAmount(transactions []*Transaction) float64 {
	var total float64
	for _, tx := range transactions {
		total += tx.Amount()
	}
	return total
}
