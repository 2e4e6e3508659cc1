package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"expenses/internal/core"
)

func newAnalyzeCommand(a *app) *cobra.Command {
	var entries []string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a list of expenses given on the command line",
		Long: `Build a list from --expense flags, print it and analyze it.

Each flag is NAME=AMOUNT; the last "=" separates the amount, so names may
contain "=". An empty list is reported, not treated as a failure.

Examples:
  expenses analyze -e Coffee=3.50 -e Book=12 -e Tea=3,50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			svc := a.newService(cmd)

			for _, raw := range entries {
				name, amount, err := parseEntry(raw)
				if err != nil {
					return err
				}
				if _, err := svc.AddExpense(ctx, name, amount); err != nil {
					return fmt.Errorf("expense %q: %w", raw, err)
				}
			}

			if err := RenderExpenses(out, svc.Expenses(), svc.Currency(), a.cfg.MaxNameLength); err != nil {
				return err
			}
			if _, err := svc.Analyze(ctx); err != nil && !errors.Is(err, core.ErrEmptyLedger) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&entries, "expense", "e", nil, "expense as NAME=AMOUNT (repeatable)")
	return cmd
}

func parseEntry(raw string) (name, amount string, err error) {
	i := strings.LastIndex(raw, "=")
	if i < 0 {
		return "", "", fmt.Errorf("expense %q: want NAME=AMOUNT", raw)
	}
	return raw[:i], raw[i+1:], nil
}
