package cli

import (
	"context"

	"github.com/spf13/cobra"

	"expenses/internal/config"
	"expenses/internal/log"
	"expenses/internal/present/terminal"
	"expenses/internal/services"
)

// app carries what PersistentPreRunE prepared for the subcommands.
type app struct {
	cfg *config.Config
}

// newService builds a fresh session controller that presents to the
// command's output and logs with the logger carried by its context.
func (a *app) newService(cmd *cobra.Command) *services.ExpenseService {
	return services.NewExpenseService(
		terminal.New(cmd.OutOrStdout()),
		services.WithCurrency(a.cfg.CurrencySymbol),
		services.WithLogger(log.FromContext(cmd.Context())),
	)
}

// NewRootCommand builds the command tree. Running the root without a
// subcommand starts the interactive shell.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "expenses",
		Short: "Record personal expenses and analyze them",
		Long: `Expenses keeps a list of expenses for the current session.

Add entries with a name and an amount, delete the ones you no longer want,
and analyze the list to get the total, the average and the highest expense.
Nothing is saved: the list is gone when the session ends.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			LoadEnvFile()
			cfg, err := LoadAndValidateConfig()
			if err != nil {
				return err
			}
			logger, err := SetupLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.cfg = cfg
			cmd.SetContext(log.NewContext(cmd.Context(), logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, a)
		},
	}

	root.AddCommand(newShellCommand(a))
	root.AddCommand(newAnalyzeCommand(a))
	root.AddCommand(newVersionCommand())
	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func newShellCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, a)
		},
	}
}

func runShell(cmd *cobra.Command, a *app) error {
	sh := NewShell(a.newService(cmd), cmd.InOrStdin(), cmd.OutOrStdout(), ShellConfig{
		Prompt:        a.cfg.Prompt,
		MaxNameLength: a.cfg.MaxNameLength,
	}, log.FromContext(cmd.Context()))
	return sh.Run(cmd.Context())
}
