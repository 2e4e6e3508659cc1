// Package terminal renders notifications as a boxed alert on a text stream.
package terminal

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Presenter writes alerts to an io.Writer.
type Presenter struct {
	w io.Writer
}

func New(w io.Writer) *Presenter {
	return &Presenter{w: w}
}

// Show writes the alert. Write errors are dropped; there is nobody to report them to.
func (p *Presenter) Show(title, message string) {
	_, _ = io.WriteString(p.w, Render(title, message))
}

// Render draws title and message inside a box followed by an OK line:
//
//	+------------------+
//	| Expense Analysis |
//	+------------------+
//	| Total: $19.00    |
//	+------------------+
//	  [OK]
func Render(title, message string) string {
	lines := strings.Split(message, "\n")
	width := utf8.RuneCountInString(title)
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > width {
			width = n
		}
	}

	rule := "+" + strings.Repeat("-", width+2) + "+\n"
	row := func(s string) string {
		return fmt.Sprintf("| %s%s |\n", s, strings.Repeat(" ", width-utf8.RuneCountInString(s)))
	}

	var b strings.Builder
	b.WriteString(rule)
	b.WriteString(row(title))
	b.WriteString(rule)
	for _, l := range lines {
		b.WriteString(row(l))
	}
	b.WriteString(rule)
	b.WriteString("  [OK]\n")
	return b.String()
}
