package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"expenses/internal/core"
)

const listHeading = "View Your Expenses"

// RenderExpenses writes the expense list, one row per expense with its
// 1-based position, name and amount. Names are left aligned, amounts right aligned.
func RenderExpenses(w io.Writer, list []core.Expense, currency string, maxName int) error {
	if _, err := fmt.Fprintln(w, listHeading); err != nil {
		return err
	}
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "  (no expenses)")
		return err
	}

	type row struct{ pos, name, amount string }
	rows := make([]row, len(list))
	var posW, nameW, amountW int
	for i, e := range list {
		r := row{
			pos:    strconv.Itoa(i + 1),
			name:   truncate(e.Name, maxName),
			amount: core.FormatAmount(currency, e.Amount),
		}
		posW = max(posW, width(r.pos))
		nameW = max(nameW, width(r.name))
		amountW = max(amountW, width(r.amount))
		rows[i] = r
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString("  ")
		b.WriteString(padLeft(r.pos, posW))
		b.WriteString("  ")
		b.WriteString(padRight(r.name, nameW))
		b.WriteString("  ")
		b.WriteString(padLeft(r.amount, amountW))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func width(s string) int {
	return utf8.RuneCountInString(s)
}

func padLeft(s string, n int) string {
	return strings.Repeat(" ", n-width(s)) + s
}

func padRight(s string, n int) string {
	return s + strings.Repeat(" ", n-width(s))
}

func truncate(s string, limit int) string {
	if limit <= 0 || width(s) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	r := []rune(s)
	return string(r[:limit-1]) + "…"
}
