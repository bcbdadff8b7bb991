package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	ngcerror "github.com/msto63/ngc/foundation/core/error"
	ngclog "github.com/msto63/ngc/foundation/core/log"
	"github.com/msto63/ngc/internal/tui/repl"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		params  []string
		radians bool
	)

	cmd := &cobra.Command{
		Use:   "eval EXPR",
		Short: "Evaluate an expression",
		Long: `Evaluates an NGC expression. The outer brackets may be omitted.
Parameters are set with -p in the order given; each value may itself be an
expression over parameters set before it.

Examples:
  ngc eval "[1 + 2 * 3]"
  ngc eval "SIN[30]"
  ngc eval -p "#1=4" -p "#<r>=[#1 / 2]" "#1 * #<r>"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if radians {
				a.cfg.Eval.AngleUnit = "radians"
			}
			engine, err := a.engine()
			if err != nil {
				return err
			}

			session := repl.NewSession(engine)
			for _, p := range params {
				if !strings.HasPrefix(strings.TrimSpace(p), "#") {
					return ngcerror.Newf("invalid parameter %q, want #name=value", p).
						WithCode(ngcerror.CodeInvalidInput).
						WithOperation("cmd.eval")
				}
				res, err := session.Execute(p)
				if err != nil {
					return ngcerror.Wrap(err, "parameter "+p)
				}
				if res.Kind != repl.ResultAssignment {
					return ngcerror.Newf("invalid parameter %q, want #name=value", p).
						WithCode(ngcerror.CodeInvalidInput).
						WithOperation("cmd.eval")
				}
				a.logger.Debug("Parameter set", ngclog.Fields{"assignment": res.Output})
			}

			expr := strings.Join(args, " ")
			res, err := session.Execute(expr)
			if err != nil {
				if rerr := a.renderer().Diagnostic(cmd.ErrOrStderr(), "<expr>", err); rerr != nil {
					return rerr
				}
				return errReported
			}
			if res.Kind != repl.ResultValue {
				return ngcerror.Newf("%q is not an expression", expr).
					WithCode(ngcerror.CodeInvalidInput).
					WithOperation("cmd.eval")
			}
			return a.renderer().Value(cmd.OutOrStdout(), expr, res.Value)
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "set a parameter before evaluating, e.g. -p \"#1=2\"")
	cmd.Flags().BoolVar(&radians, "radians", false, "trigonometric functions use radians")
	return cmd
}
