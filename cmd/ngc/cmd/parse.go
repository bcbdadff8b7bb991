package cmd

import (
	"github.com/spf13/cobra"

	ngclog "github.com/msto63/ngc/foundation/core/log"
	"github.com/msto63/ngc/foundation/ngc"
)

func newParseCmd(a *app) *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the token tree of a program",
		Long: `Parses a program and prints its token tree. Blocks (sub, if, while,
do, repeat) are shown with their bodies nested below them. Use "-" to read
from standard input.

Examples:
  ngc parse part.ngc
  ngc parse -o yaml part.ngc
  ngc parse --summary part.ngc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]
			src, err := readSource(cmd, file)
			if err != nil {
				return err
			}

			engine, err := a.engine()
			if err != nil {
				return err
			}

			timer := a.logger.StartTimer("parse").WithField("file", file)
			prog, err := engine.ParseProgram(src)
			if err != nil {
				timer.StopWithError(err)
				if rerr := a.renderer().Diagnostic(cmd.ErrOrStderr(), file, err); rerr != nil {
					return rerr
				}
				return errReported
			}
			timer.Stop()
			a.logger.Debug("Program parsed", ngclog.Field("file", file), ngclog.Int("lines", len(prog.Lines)))

			if summary {
				return a.renderer().Summary(cmd.OutOrStdout(), file, ngc.Summarize(prog))
			}
			return a.renderer().Program(cmd.OutOrStdout(), file, prog)
		},
	}

	cmd.Flags().BoolVarP(&summary, "summary", "s", false, "print statistics instead of the tree")
	return cmd
}
