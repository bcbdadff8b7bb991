package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	ngcerror "github.com/msto63/ngc/foundation/core/error"
	"github.com/msto63/ngc/foundation/ngc/parser"
	"github.com/msto63/ngc/internal/render"
)

type codeEntry struct {
	Code        string `json:"code" yaml:"code"`
	Description string `json:"description" yaml:"description"`
}

func newCodesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "codes [g|m]",
		Short:     "List supported G and M codes",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"g", "m"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []codeEntry
			which := ""
			if len(args) == 1 {
				which = strings.ToLower(args[0])
			}
			switch which {
			case "", "g", "m":
			default:
				return ngcerror.Newf("unknown code letter %q, want g or m", args[0]).
					WithCode(ngcerror.CodeInvalidInput).
					WithOperation("cmd.codes")
			}

			if which != "m" {
				for _, c := range parser.GCodes() {
					entries = append(entries, codeEntry{"G" + c.Code, c.Description})
				}
			}
			if which != "g" {
				for _, c := range parser.MCodes() {
					entries = append(entries, codeEntry{"M" + c.Code, c.Description})
				}
			}

			r := a.renderer()
			if r.Format() != render.FormatText {
				return r.Encode(cmd.OutOrStdout(), entries)
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %s\n", e.Code, e.Description)
			}
			return nil
		},
	}
}
