package core

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger is the ordered, in-memory collection of expenses of one session.
//
// A Ledger is owned by a single controller and is not safe for concurrent use.
// The zero value is an empty ledger ready to use.
type Ledger struct {
	items []Expense
	newID func() string
}

// NewLedger returns an empty ledger that assigns UUIDs to new expenses.
func NewLedger() *Ledger {
	return &Ledger{newID: uuid.NewString}
}

// NewLedgerWithIDs returns an empty ledger using gen to assign ids.
// gen must never return the same value twice.
func NewLedgerWithIDs(gen func() string) *Ledger {
	return &Ledger{newID: gen}
}

// Add parses amountText and appends a new expense to the end of the ledger.
// nameText is stored as-is. On ErrInvalidAmount the ledger is unchanged.
func (l *Ledger) Add(nameText, amountText string) (Expense, error) {
	amount, err := ParseAmount(amountText)
	if err != nil {
		return Expense{}, fmt.Errorf("%w: %q", err, amountText)
	}
	return l.Append(nameText, amount), nil
}

// Append adds an already parsed amount.
func (l *Ledger) Append(name string, amount decimal.Decimal) Expense {
	gen := l.newID
	if gen == nil {
		gen = uuid.NewString
	}
	e := Expense{ID: gen(), Name: name, Amount: amount}
	l.items = append(l.items, e)
	return e
}

// Remove deletes the expenses at the given zero-based positions.
//
// Positions are a set resolved against the ledger as it is before the call;
// duplicates collapse. If any position is out of range nothing is removed and
// the error wraps ErrIndexOutOfRange.
func (l *Ledger) Remove(indices ...int) error {
	if len(indices) == 0 {
		return nil
	}
	drop := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(l.items) {
			return fmt.Errorf("%w: position %d, length %d", ErrIndexOutOfRange, i, len(l.items))
		}
		drop[i] = struct{}{}
	}

	kept := make([]Expense, 0, len(l.items)-len(drop))
	for i, e := range l.items {
		if _, ok := drop[i]; ok {
			continue
		}
		kept = append(kept, e)
	}
	l.items = kept
	return nil
}

// Summarize computes total, average and highest expense.
// It returns ErrEmptyLedger when there is nothing to summarize.
func (l *Ledger) Summarize() (Summary, error) {
	if len(l.items) == 0 {
		return Summary{}, ErrEmptyLedger
	}

	total := decimal.Zero
	highest := l.items[0]
	for _, e := range l.items {
		total = total.Add(e.Amount)
		// strict comparison keeps the first maximum
		if e.Amount.GreaterThan(highest.Amount) {
			highest = e
		}
	}

	count := len(l.items)
	return Summary{
		Count:   count,
		Total:   total,
		Average: total.Div(decimal.NewFromInt(int64(count))),
		Highest: highest,
	}, nil
}

// Len returns the number of expenses.
func (l *Ledger) Len() int {
	return len(l.items)
}

// At returns the expense at position i.
func (l *Ledger) At(i int) (Expense, error) {
	if i < 0 || i >= len(l.items) {
		return Expense{}, fmt.Errorf("%w: position %d, length %d", ErrIndexOutOfRange, i, len(l.items))
	}
	return l.items[i], nil
}

// Expenses returns a copy of the ledger in insertion order.
func (l *Ledger) Expenses() []Expense {
	return append([]Expense(nil), l.items...)
}
