package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"expenses/internal/core"
	"expenses/internal/log"
	"expenses/internal/present"
)

const (
	AnalysisTitle   = "Expense Analysis"
	EmptyAnalysis   = "No expenses to analyze."
	defaultCurrency = "$"
)

// Form is the transient state of the add-expense form.
type Form struct {
	Name   string
	Amount string
}

// IsEmpty reports whether both fields are blank.
func (f Form) IsEmpty() bool {
	return f.Name == "" && f.Amount == ""
}

// SubmitResult is returned by a successful Submit. Cleared tells the UI to reset its inputs.
type SubmitResult struct {
	Expense core.Expense
	Cleared bool
}

// ExpenseService is the root controller of one session: it owns the ledger,
// the form state and the presenter used for notifications.
//
// It is not safe for concurrent use.
type ExpenseService struct {
	ledger    *core.Ledger
	form      Form
	presenter present.Presenter
	currency  string
	logger    *log.Logger
	events    *log.StructuredLogger
}

// Option configures an ExpenseService.
type Option func(*ExpenseService)

// WithLedger replaces the default empty ledger.
func WithLedger(l *core.Ledger) Option {
	return func(s *ExpenseService) { s.ledger = l }
}

// WithCurrency sets the symbol used in analysis messages.
func WithCurrency(symbol string) Option {
	return func(s *ExpenseService) { s.currency = symbol }
}

// WithLogger sets the logger. The service logs under the expense component.
func WithLogger(l *log.Logger) Option {
	return func(s *ExpenseService) { s.logger = l }
}

func NewExpenseService(p present.Presenter, opts ...Option) *ExpenseService {
	s := &ExpenseService{
		presenter: p,
		currency:  defaultCurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ledger == nil {
		s.ledger = core.NewLedger()
	}
	if s.logger == nil {
		s.logger = log.Discard()
	}
	s.logger = s.logger.WithComponent(log.ComponentExpense)
	s.events = log.NewStructuredLogger(s.logger)
	return s
}

// SetName binds the name field.
func (s *ExpenseService) SetName(name string) {
	s.form.Name = name
}

// SetAmount binds the amount field.
func (s *ExpenseService) SetAmount(amount string) {
	s.form.Amount = amount
}

// Form returns the current form state.
func (s *ExpenseService) Form() Form {
	return s.form
}

// Submit adds the expense described by the form. On success the form is cleared;
// on ErrInvalidAmount the form keeps what the user typed.
func (s *ExpenseService) Submit(ctx context.Context) (SubmitResult, error) {
	e, err := s.add(ctx, log.OpSubmit, s.form.Name, s.form.Amount)
	if err != nil {
		return SubmitResult{}, err
	}
	s.form = Form{}
	return SubmitResult{Expense: e, Cleared: true}, nil
}

// AddExpense adds an expense without touching the form.
func (s *ExpenseService) AddExpense(ctx context.Context, name, amount string) (core.Expense, error) {
	return s.add(ctx, log.OpAdd, name, amount)
}

func (s *ExpenseService) add(ctx context.Context, op, name, amount string) (core.Expense, error) {
	e, err := s.ledger.Add(name, amount)
	if err != nil {
		if errors.Is(err, core.ErrInvalidAmount) {
			s.events.LogValidation(ctx, "Amount rejected", err, op,
				log.NewFields().WithExpense("", name, amount))
		} else {
			s.events.LogError(ctx, "Failed to add expense", err, op, nil)
		}
		return core.Expense{}, err
	}
	s.events.LogExpenseAdded(ctx, e.ID, e.Name, e.Amount.String(), s.ledger.Len())
	return e, nil
}

// Delete removes the expenses at the given positions in one batch.
func (s *ExpenseService) Delete(ctx context.Context, indices ...int) error {
	if err := s.ledger.Remove(indices...); err != nil {
		s.events.LogValidation(ctx, "Delete rejected", err, log.OpRemove, nil)
		return fmt.Errorf("delete expenses: %w", err)
	}
	s.logger.InfoContext(ctx, "Expenses removed",
		log.FieldOperation, log.OpRemove,
		log.FieldIndices, indices,
		log.FieldLedgerSize, s.ledger.Len())
	return nil
}

// Analyze summarizes the ledger and shows the result through the presenter.
// An empty ledger is reported to the user and returned as core.ErrEmptyLedger.
func (s *ExpenseService) Analyze(ctx context.Context) (core.Summary, error) {
	sum, err := s.ledger.Summarize()
	if err != nil {
		if errors.Is(err, core.ErrEmptyLedger) {
			s.notify(AnalysisTitle, EmptyAnalysis)
			s.logger.InfoContext(ctx, "Nothing to analyze", log.FieldOperation, log.OpSummarize)
		}
		return core.Summary{}, err
	}

	s.notify(AnalysisTitle, FormatSummary(s.currency, sum))
	s.logger.InfoContext(ctx, "Expenses analyzed",
		log.FieldOperation, log.OpSummarize,
		log.FieldLedgerSize, sum.Count,
		log.FieldTotal, sum.Total.String(),
		log.FieldAverage, sum.Average.StringFixed(2))
	return sum, nil
}

// Expenses returns the ledger contents in order.
func (s *ExpenseService) Expenses() []core.Expense {
	return s.ledger.Expenses()
}

// Len returns the number of recorded expenses.
func (s *ExpenseService) Len() int {
	return s.ledger.Len()
}

// Currency returns the symbol used for amounts.
func (s *ExpenseService) Currency() string {
	return s.currency
}

func (s *ExpenseService) notify(title, message string) {
	if s.presenter == nil {
		return
	}
	s.presenter.Show(title, message)
}

// FormatSummary renders the analysis message:
//
//	Total: $19.00
//	Average: $6.33
//	Highest Expense: Book - $12.00
func FormatSummary(currency string, sum core.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total: %s\n", core.FormatAmount(currency, sum.Total))
	fmt.Fprintf(&b, "Average: %s\n", core.FormatAmount(currency, sum.Average))
	fmt.Fprintf(&b, "Highest Expense: %s - %s", sum.Highest.Name, core.FormatAmount(currency, sum.Highest.Amount))
	return b.String()
}
