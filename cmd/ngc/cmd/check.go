package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	ngclog "github.com/msto63/ngc/foundation/core/log"
	"github.com/msto63/ngc/foundation/ngc"
	"github.com/msto63/ngc/internal/render"
	"github.com/msto63/ngc/pkg/core/cache"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate programs",
		Long: `Parses every file and reports the first failure of each with its
line, column and an excerpt. The exit status is non-zero when any file fails.

Examples:
  ngc check part.ngc fixture.ngc
  ngc check -o json *.ngc`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engine()
			if err != nil {
				return err
			}

			programs := cache.NewProgramCache(cache.DefaultConfig())
			defer programs.Close()

			failed := checkFiles(cmd, a, engine, a.renderer(), programs, args)
			if failed > 0 {
				a.logger.Debug("Check failed", ngclog.Fields{"files": len(args), "failed": failed})
				return errReported
			}
			return nil
		},
	}
}

// checkFiles checks each file and writes one result per file. Sources already
// in programs are not parsed again. It returns the number of failures.
func checkFiles(cmd *cobra.Command, a *app, engine *ngc.Engine, r *render.Renderer, programs *cache.ProgramCache, files []string) int {
	failed := 0
	for _, file := range files {
		src, err := readSource(cmd, file)
		if err != nil {
			failed++
			a.logger.Debug("Cannot read source", ngclog.Field("file", file), ngclog.Err(err))
			printError(cmd.ErrOrStderr(), err)
			continue
		}

		prog, hit, err := programs.Parse(src, engine.ParseProgram)
		if hit {
			a.logger.Debug("Source unchanged, reusing result", ngclog.Field("file", file))
		}
		if err != nil {
			failed++
			a.logger.WarnWithErr("Check failed", err, ngclog.Field("file", file))
		}
		if rerr := r.Check(cmd.OutOrStdout(), file, prog, err); rerr != nil {
			printError(cmd.ErrOrStderr(), fmt.Errorf("failed to write result for %s: %w", file, rerr))
		}
	}
	return failed
}
