package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mdwerror "github.com/faed235/hyperf-saas-helper/foundation/core/error"
	"github.com/faed235/hyperf-saas-helper/foundation/core/errors"
	"github.com/faed235/hyperf-saas-helper/pkg/calc"
	"github.com/faed235/hyperf-saas-helper/pkg/core/config"
	"github.com/faed235/hyperf-saas-helper/pkg/core/logging"
	"github.com/faed235/hyperf-saas-helper/pkg/core/metrics"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	verbose bool
	output  string
	metrics bool

	out    io.Writer
	errOut io.Writer

	cfg        *config.Config
	log        *logging.Logger
	calculator *calc.Calculator
	collector  *metrics.Collector
}

func newRootCmd(out, errOut io.Writer) (*cobra.Command, *app) {
	a := &app{out: out, errOut: errOut, log: logging.Nop()}

	rootCmd := &cobra.Command{
		Use:   "calc",
		Short: "calc - arbitrary precision decimal calculator",
		Long: `calc evaluates chains of decimal operations without binary floating
point error.

Values are decimal strings. Intermediate results keep the configured scale
(default 10 digits) and are rounded only for output.

Steps:
  add:N  sub:N  mul:N  div:N  pow:N  pct:N   (or + - * / ^ %)
  sqrt  inv  abs  clamp  freeze`,
		SilenceErrors:      true,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.printMetrics,
	}

	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $CALC_CONFIG or ./configs/calc.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text, json or yaml (default from config)")
	rootCmd.PersistentFlags().BoolVar(&a.metrics, "metrics", false, "print backend operation counters after the command")

	rootCmd.AddCommand(
		newEvalCmd(a),
		newSumCmd(a),
		newGroupSumCmd(a),
		newReplCmd(a),
		newVersionCmd(a),
	)
	return rootCmd, a
}

// Execute runs the command line and returns the process exit status.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, out, errOut io.Writer) int {
	rootCmd, a := newRootCmd(out, errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	a.log.Err("command failed", err)
	_ = a.log.Sync()
	printError(errOut, err)
	return mdwerror.GetCode(err).ExitCode()
}

// setup loads the configuration and builds logger and calculator.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if a.output != "" {
		a.cfg.Output.Format = a.output
	}
	if a.metrics {
		a.cfg.Metrics.Enabled = true
	}
	if a.verbose {
		a.cfg.Logging.Level = "debug"
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewLogger(logging.LoggerConfig{
		ServiceName: "calc",
		Level:       a.cfg.Logging.Level,
		Format:      a.cfg.Logging.Format,
		Output:      a.errOut,
	})
	if err != nil {
		return err
	}
	a.log = logger

	calculator, err := a.cfg.NewCalculator()
	if err != nil {
		return err
	}
	if a.cfg.Metrics.Enabled {
		a.collector = metrics.NewCollector()
		cc := calculator.Config()
		calculator = calculator.
			WithBackend(a.collector.Instrument(cc.Backend)).
			WithFallback(a.collector.Instrument(cc.Fallback))
	}
	a.calculator = calculator

	cc := calculator.Config()
	a.log.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("source", a.cfg.Source),
		zap.String("backend", cc.Arithmetic().Name()),
		zap.Bool("high_precision", cc.HighPrecision),
		zap.Int("scale", cc.Scale),
		zap.Bool("metrics", a.collector != nil),
	)
	return nil
}

func (a *app) printMetrics(_ *cobra.Command, _ []string) error {
	defer func() { _ = a.log.Sync() }()
	if a.collector == nil {
		return nil
	}
	rows, err := a.collector.Summary()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.errOut, "backend operations:")
	for _, r := range rows {
		fmt.Fprintf(a.errOut, "  %-8s %-4s %-6s %d\n", r.Backend, r.Op, r.Outcome, r.Count)
	}
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) && errors.ExtractModule(err) == errors.ModuleChain {
		fmt.Fprintln(w, `Steps are written as op[:arg], for example add:5, "* 2" or sqrt.`)
	}
}
