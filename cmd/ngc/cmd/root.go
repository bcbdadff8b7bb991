package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	ngclog "github.com/msto63/ngc/foundation/core/log"
	"github.com/msto63/ngc/foundation/ngc"
	"github.com/msto63/ngc/internal/render"
	"github.com/msto63/ngc/pkg/core/config"
	"github.com/msto63/ngc/pkg/core/logging"
)

// errReported is returned by commands that already wrote their diagnostics
var errReported = errors.New("failures reported")

// app holds the global flags and the state shared by all subcommands of one
// run
type app struct {
	cfgFile           string
	verbose           bool
	logFormat         string
	output            string
	noColor           bool
	allowUnterminated bool

	cfg    *config.Config
	logger *ngclog.Logger
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "ngc",
		Short: "ngc - RS274/NGC program parser and expression evaluator",
		Long: `ngc parses RS274/NGC (G-code) programs into a token tree and
evaluates NGC expressions.

Commands:
  parse    - Print the token tree of a program
  check    - Validate programs, exit non-zero on failure
  eval     - Evaluate an expression
  watch    - Re-check programs whenever they change
  repl     - Interactive expression evaluator
  codes    - List supported G and M codes
  config   - Show the effective configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./ngc.toml or $XDG_CONFIG_HOME/ngc/ngc.toml, env NGC_CONFIG)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (debug logging)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text, json, console or logfmt")
	flags.StringVarP(&a.output, "output", "o", "", "output format: text, yaml or json")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&a.allowUnterminated, "allow-unterminated", false, "accept programs without % or M2/M30")

	rootCmd.AddCommand(
		newParseCmd(a),
		newCheckCmd(a),
		newEvalCmd(a),
		newWatchCmd(a),
		newReplCmd(a),
		newCodesCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)

	return rootCmd
}

// Execute runs the command line
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// setup loads the configuration, applies flag overrides and builds the logger
func (a *app) setup(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if a.cfgFile != "" {
		cfg, err = config.Load(a.cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	if a.output != "" {
		cfg.Output.Format = a.output
	}
	if a.noColor {
		cfg.Output.Color = false
	}
	if a.allowUnterminated {
		cfg.Parser.AllowUnterminated = true
	}
	if _, err := render.ParseFormat(cfg.Output.Format); err != nil {
		return err
	}

	lc := logging.FromConfig("ngc-"+cmd.Name(), cfg.Logging, a.verbose)
	lc.Output = cmd.ErrOrStderr()
	a.logger = logging.NewLogger(lc)
	a.cfg = cfg
	// Engines built without an explicit logger inherit the CLI logger.
	ngclog.SetDefault(a.logger)

	a.logger.Debug("Configuration loaded", ngclog.Fields{
		"source": cfg.Source(),
		"output": cfg.Output.Format,
	})
	return nil
}

// engine creates an engine from the effective configuration
func (a *app) engine() (*ngc.Engine, error) {
	opts, err := a.cfg.EngineOptions(a.logger)
	if err != nil {
		return nil, err
	}
	return ngc.NewEngine(opts)
}

// renderer creates a renderer for the configured output format
func (a *app) renderer() *render.Renderer {
	format, _ := render.ParseFormat(a.cfg.Output.Format)
	return render.New(format, a.cfg.Output.Color)
}

// readSource reads a program file, or standard input for "-"
func readSource(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
