package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/ngc/internal/tui/repl"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive expression evaluator",
		Long: `Starts a terminal UI that evaluates expressions and keeps parameter
assignments between inputs.

Keys:
  Enter    - evaluate
  Up/Down  - recall earlier input
  Ctrl+L   - clear the screen
  Esc      - quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engine()
			if err != nil {
				return err
			}
			return repl.Run(engine)
		},
	}
}
