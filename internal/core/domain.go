package core

import (
	"errors"

	"github.com/shopspring/decimal"
)

type (
	// Expense is one recorded transaction. ID is assigned by the ledger and never reused.
	Expense struct {
		ID     string
		Name   string
		Amount decimal.Decimal
	}

	// Summary is the aggregate computed over a non-empty ledger.
	Summary struct {
		Count   int
		Total   decimal.Decimal
		Average decimal.Decimal
		Highest Expense // first maximum in ledger order
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrEmptyLedger     = errors.New("empty ledger")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Equal reports whether two expenses carry the same id, name and amount.
func (e Expense) Equal(o Expense) bool {
	return e.ID == o.ID && e.Name == o.Name && e.Amount.Equal(o.Amount)
}
