package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	ngclog "github.com/msto63/ngc/foundation/core/log"
	"github.com/msto63/ngc/internal/watch"
	"github.com/msto63/ngc/pkg/core/cache"
)

func newWatchCmd(a *app) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch FILE...",
		Short: "Re-check programs whenever they change",
		Long: `Checks every file once, then again each time it is written. Bursts
of writes within the debounce window trigger a single check. Stop with Ctrl+C.

Examples:
  ngc watch part.ngc
  ngc watch --debounce 500ms *.ngc`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engine()
			if err != nil {
				return err
			}
			r := a.renderer()
			programs := cache.NewProgramCache(cache.DefaultConfig())
			defer programs.Close()

			checkFiles(cmd, a, engine, r, programs, args)

			if debounce <= 0 {
				debounce = a.cfg.Watch.Debounce.Duration
			}
			w, err := watch.New(args, func(path string) {
				checkFiles(cmd, a, engine, r, programs, []string{path})
			}, watch.Options{Debounce: debounce, Logger: a.logger})
			if err != nil {
				return err
			}
			defer w.Close()

			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.logger.Info("Watching files", ngclog.Fields{"files": len(w.Files()), "debounce": debounce.String()})
			return w.Run(ctx)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 0, "quiet period before re-checking (default from config, 200ms)")
	return cmd
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
