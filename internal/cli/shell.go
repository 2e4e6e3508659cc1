package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"expenses/internal/core"
	"expenses/internal/log"
	"expenses/internal/services"
)

const shellHelp = `Commands:
  name <text>          set the expense name field
  amount <text>        set the amount field
  form                 show the form fields
  submit               add the expense described by the form
  add <amount> [name]  add an expense directly
  list                 show recorded expenses
  delete <n> [m ...]   delete expenses by list number
  analyze              show total, average and highest expense
  help                 show this help
  quit                 leave the session
`

// Shell is a line-oriented front end for one ExpenseService.
// All service calls happen on the goroutine running Run.
type Shell struct {
	svc     *services.ExpenseService
	in      io.Reader
	out     io.Writer
	prompt  string
	maxName int
	logger  *log.Logger
}

// ShellConfig holds the presentation settings of a Shell.
type ShellConfig struct {
	Prompt        string
	MaxNameLength int
}

func NewShell(svc *services.ExpenseService, in io.Reader, out io.Writer, cfg ShellConfig, logger *log.Logger) *Shell {
	if logger == nil {
		logger = log.Discard()
	}
	return &Shell{
		svc:     svc,
		in:      in,
		out:     out,
		prompt:  cfg.Prompt,
		maxName: cfg.MaxNameLength,
		logger:  logger.WithComponent(log.ComponentShell),
	}
}

// Run reads commands until quit, end of input or ctx cancellation.
//
// Input is read on a separate goroutine so cancellation is noticed while the
// user is idle. A read blocked on a terminal cannot be interrupted; that
// goroutine is abandoned and ends with the process.
func (sh *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(sh.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	sh.logger.InfoContext(ctx, "Session started", log.FieldOperation, log.OpStartup)
	defer func() {
		sh.logger.InfoContext(ctx, "Session ended",
			log.FieldOperation, log.OpShutdown,
			log.FieldLedgerSize, sh.svc.Len())
	}()

	fmt.Fprintln(sh.out, `Expenses. Type "help" for commands.`)
	for {
		fmt.Fprint(sh.out, sh.prompt)
		select {
		case <-ctx.Done():
			fmt.Fprintln(sh.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(sh.out)
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("read input: %w", err)
					}
				default:
				}
				return nil
			}
			if quit := sh.Exec(ctx, line); quit {
				return nil
			}
		}
	}
}

// Exec runs one command line and reports whether the session should end.
func (sh *Shell) Exec(ctx context.Context, line string) (quit bool) {
	cmd, rest := splitCommand(line)
	if cmd == "" {
		return false
	}
	sh.logger.DebugContext(ctx, "Command received", log.FieldCommand, cmd)

	switch cmd {
	case "name":
		sh.svc.SetName(rest)
	case "amount":
		sh.svc.SetAmount(rest)
	case "form":
		sh.printForm()
	case "submit":
		sh.submit(ctx)
	case "add":
		sh.add(ctx, rest)
	case "list", "ls":
		sh.list()
	case "delete", "rm":
		sh.delete(ctx, rest)
	case "analyze":
		// the presenter shows the result or the empty-ledger notice
		_, _ = sh.svc.Analyze(ctx)
	case "help", "?":
		fmt.Fprint(sh.out, shellHelp)
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(sh.out, "unknown command %q; type \"help\"\n", cmd)
	}
	return false
}

func (sh *Shell) printForm() {
	f := sh.svc.Form()
	fmt.Fprintf(sh.out, "name:   %q\namount: %q\n", f.Name, f.Amount)
}

func (sh *Shell) submit(ctx context.Context) {
	res, err := sh.svc.Submit(ctx)
	if err != nil {
		sh.reportAddError(err)
		return
	}
	sh.printAdded(res.Expense)
}

func (sh *Shell) add(ctx context.Context, rest string) {
	amount, name := splitCommand(rest)
	if amount == "" {
		fmt.Fprintln(sh.out, "usage: add <amount> [name]")
		return
	}
	e, err := sh.svc.AddExpense(ctx, name, amount)
	if err != nil {
		sh.reportAddError(err)
		return
	}
	sh.printAdded(e)
}

func (sh *Shell) printAdded(e core.Expense) {
	fmt.Fprintf(sh.out, "added #%d %s %s\n", sh.svc.Len(), e.Name, core.FormatAmount(sh.svc.Currency(), e.Amount))
}

func (sh *Shell) reportAddError(err error) {
	if errors.Is(err, core.ErrInvalidAmount) {
		fmt.Fprintf(sh.out, "not added: %v\n", err)
		return
	}
	fmt.Fprintf(sh.out, "error: %v\n", err)
}

func (sh *Shell) list() {
	if err := RenderExpenses(sh.out, sh.svc.Expenses(), sh.svc.Currency(), sh.maxName); err != nil {
		sh.logger.Error("Failed to render expenses", log.FieldOperation, log.OpList, log.FieldError, err)
	}
}

func (sh *Shell) delete(ctx context.Context, rest string) {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		fmt.Fprintln(sh.out, "usage: delete <n> [m ...]")
		return
	}
	indices := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			fmt.Fprintf(sh.out, "not a list number: %q\n", f)
			return
		}
		indices = append(indices, n-1)
	}
	if err := sh.svc.Delete(ctx, indices...); err != nil {
		if errors.Is(err, core.ErrIndexOutOfRange) {
			fmt.Fprintf(sh.out, "nothing deleted: list has %d expenses\n", sh.svc.Len())
			return
		}
		fmt.Fprintf(sh.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(sh.out, "deleted %d, %d left\n", len(dedupe(indices)), sh.svc.Len())
}

// splitCommand returns the first word of line, lowercased, and the rest with
// leading whitespace removed. Trailing text is kept verbatim.
func splitCommand(line string) (string, string) {
	line = strings.TrimLeft(line, " \t")
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return strings.ToLower(strings.TrimSpace(line)), ""
	}
	return strings.ToLower(line[:i]), strings.TrimLeft(line[i+1:], " \t")
}

func dedupe(in []int) []int {
	seen := make(map[int]struct{}, len(in))
	out := in[:0:0]
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
