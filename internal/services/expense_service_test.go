package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expenses/internal/core"
	"expenses/internal/present"
	"expenses/internal/present/memory"
)

func newTestService(t *testing.T, opts ...Option) (*ExpenseService, *memory.Presenter) {
	t.Helper()
	n := 0
	ledger := core.NewLedgerWithIDs(func() string {
		n++
		return fmt.Sprintf("e%d", n)
	})
	p := memory.New()
	return NewExpenseService(p, append([]Option{WithLedger(ledger)}, opts...)...), p
}

func TestNewExpenseService(t *testing.T) {
	service := NewExpenseService(nil)
	require.NotNil(t, service)
	assert.Equal(t, 0, service.Len())
	assert.Equal(t, "$", service.Currency())
	assert.True(t, service.Form().IsEmpty())
}

func TestExpenseService_Submit(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t)

	service.SetName("Coffee")
	service.SetAmount("3.50")
	res, err := service.Submit(ctx)
	require.NoError(t, err)
	assert.True(t, res.Cleared)
	assert.Equal(t, "e1", res.Expense.ID)
	assert.Equal(t, "Coffee", res.Expense.Name)
	assert.True(t, res.Expense.Amount.Equal(decimal.RequireFromString("3.5")))
	assert.True(t, service.Form().IsEmpty(), "form should be cleared after success")
	assert.Equal(t, 1, service.Len())
}

func TestExpenseService_SubmitInvalidAmountKeepsForm(t *testing.T) {
	ctx := context.Background()
	service, p := newTestService(t)

	service.SetName("Lunch")
	service.SetAmount("twelve")
	res, err := service.Submit(ctx)
	require.ErrorIs(t, err, core.ErrInvalidAmount)
	assert.False(t, res.Cleared)
	assert.Equal(t, Form{Name: "Lunch", Amount: "twelve"}, service.Form())
	assert.Equal(t, 0, service.Len())
	assert.Empty(t, p.Notifications(), "rejections are returned, not presented")
}

func TestExpenseService_AddExpenseLeavesForm(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t)

	service.SetName("draft")
	_, err := service.AddExpense(ctx, "Tea", "2")
	require.NoError(t, err)
	assert.Equal(t, "draft", service.Form().Name)
	assert.Equal(t, 1, service.Len())
}

func TestExpenseService_Delete(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t)
	for _, n := range []string{"A", "B", "C"} {
		_, err := service.AddExpense(ctx, n, "1")
		require.NoError(t, err)
	}

	require.NoError(t, service.Delete(ctx, 0, 2))
	list := service.Expenses()
	require.Len(t, list, 1)
	assert.Equal(t, "B", list[0].Name)

	err := service.Delete(ctx, 1)
	require.ErrorIs(t, err, core.ErrIndexOutOfRange)
	assert.Equal(t, 1, service.Len())
}

func TestExpenseService_Analyze(t *testing.T) {
	ctx := context.Background()
	service, p := newTestService(t)
	for _, e := range [][2]string{{"Coffee", "3.50"}, {"Book", "12.00"}, {"Tea", "3.50"}} {
		_, err := service.AddExpense(ctx, e[0], e[1])
		require.NoError(t, err)
	}

	sum, err := service.Analyze(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Book", sum.Highest.Name)

	n, ok := p.Last()
	require.True(t, ok)
	assert.Equal(t, AnalysisTitle, n.Title)
	assert.Equal(t, "Total: $19.00\nAverage: $6.33\nHighest Expense: Book - $12.00", n.Message)
}

func TestExpenseService_AnalyzeCurrency(t *testing.T) {
	ctx := context.Background()
	service, p := newTestService(t, WithCurrency("€"))
	_, err := service.AddExpense(ctx, "Pane", "1,20")
	require.NoError(t, err)

	_, err = service.Analyze(ctx)
	require.NoError(t, err)
	n, _ := p.Last()
	assert.Equal(t, "Total: €1.20\nAverage: €1.20\nHighest Expense: Pane - €1.20", n.Message)
}

func TestExpenseService_AnalyzeEmpty(t *testing.T) {
	ctx := context.Background()
	service, p := newTestService(t)

	_, err := service.Analyze(ctx)
	require.ErrorIs(t, err, core.ErrEmptyLedger)

	n, ok := p.Last()
	require.True(t, ok)
	assert.Equal(t, AnalysisTitle, n.Title)
	assert.Equal(t, EmptyAnalysis, n.Message)
}

func TestFormatSummary(t *testing.T) {
	sum := core.Summary{
		Count:   2,
		Total:   decimal.NewFromInt(10),
		Average: decimal.NewFromInt(5),
		Highest: core.Expense{Name: "A", Amount: decimal.NewFromInt(5)},
	}
	assert.Equal(t, "Total: $10.00\nAverage: $5.00\nHighest Expense: A - $5.00", FormatSummary("$", sum))
}

func TestExpenseService_PresenterFunc(t *testing.T) {
	ctx := context.Background()
	var titles []string
	service := NewExpenseService(present.Func(func(title, message string) {
		titles = append(titles, title)
	}))

	_, err := service.Analyze(ctx)
	require.ErrorIs(t, err, core.ErrEmptyLedger)
	assert.Equal(t, []string{AnalysisTitle}, titles)
}

func TestExpenseService_NilPresenter(t *testing.T) {
	ctx := context.Background()
	service := NewExpenseService(nil)
	_, err := service.AddExpense(ctx, "A", "1")
	require.NoError(t, err)

	sum, err := service.Analyze(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Count)
}
