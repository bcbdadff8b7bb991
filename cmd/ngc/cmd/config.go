package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	ngcconfig "github.com/msto63/ngc/foundation/core/config"
	"github.com/msto63/ngc/pkg/core/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var listPaths bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Prints the configuration after defaults, the config file, NGC_*
environment variables and command line flags have been applied, as TOML.

Examples:
  ngc config > ngc.toml
  ngc config --list-paths`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if listPaths {
				opts := ngcconfig.DefaultDiscoveryOptions()
				opts.EnvPrefix = config.EnvPrefix
				for _, p := range ngcconfig.ListPossibleConfigFiles(opts) {
					fmt.Fprintln(out, p)
				}
				return nil
			}

			if src := a.cfg.Source(); src != "" {
				fmt.Fprintf(out, "# loaded from %s\n", src)
			} else {
				fmt.Fprintln(out, "# defaults (no config file found)")
			}
			return a.cfg.WriteTOML(out)
		},
	}

	cmd.Flags().BoolVar(&listPaths, "list-paths", false, "list the locations searched for a config file")
	return cmd
}
