package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/faed235/hyperf-saas-helper/internal/chain"
	"github.com/faed235/hyperf-saas-helper/pkg/calc"
)

// evalResult is the structured output of eval and sum.
type evalResult struct {
	Input     []string `json:"input" yaml:"input"`
	Steps     []string `json:"steps,omitempty" yaml:"steps,omitempty"`
	RawValue  string   `json:"raw_value" yaml:"raw_value"`
	Result    string   `json:"result" yaml:"result"`
	Formatted string   `json:"formatted,omitempty" yaml:"formatted,omitempty"`
}

type resultFlags struct {
	precision int
	roundUp   bool
	currency  bool
	money     string
}

func (f *resultFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.precision, "precision", "p", -1, "fractional digits of the result (default from config)")
	cmd.Flags().BoolVar(&f.roundUp, "round-up", false, "round away from zero on any remainder")
	cmd.Flags().BoolVar(&f.currency, "currency", false, "format with two decimals and thousands grouping")
	cmd.Flags().StringVar(&f.money, "money", "", "format in the conventions of a currency code, e.g. EUR")
}

func newEvalCmd(a *app) *cobra.Command {
	var flags resultFlags

	cmd := &cobra.Command{
		Use:   "eval <value> [step...]",
		Short: "Apply a chain of steps to a value",
		Long: `Apply a chain of steps to a value and print the rounded result.

Examples:
  calc eval 10 add:5 mul:2 sqrt
  calc eval 1234.561 --round-up
  calc eval 1234.5 --currency
  calc eval 100 pct:19 --money EUR -o json
  calc eval -- -5 abs   (use -- before a negative value)`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := chain.ParseSteps(args[1:])
			if err != nil {
				return err
			}
			acc, err := a.calculator.Init(args[0])
			if err != nil {
				return err
			}
			if err := chain.Apply(acc, steps); err != nil {
				return err
			}
			a.log.Debug("evaluated", zap.Int("steps", len(steps)), zap.String("raw_value", acc.RawValue()))

			return a.renderResult(cmd, acc, flags, evalResult{Input: args[:1], Steps: args[1:]})
		},
	}
	flags.register(cmd)
	return cmd
}

func newSumCmd(a *app) *cobra.Command {
	var flags resultFlags

	cmd := &cobra.Command{
		Use:   "sum <value...>",
		Short: "Add up values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]any, len(args))
			for i, arg := range args {
				values[i] = arg
			}
			acc, err := a.calculator.Sum(values...)
			if err != nil {
				return err
			}
			return a.renderResult(cmd, acc, flags, evalResult{Input: args})
		},
	}
	flags.register(cmd)
	return cmd
}

// renderResult completes res from acc and prints it. The text output is the
// formatted value if requested, else the rounded result.
func (a *app) renderResult(cmd *cobra.Command, acc *calc.Accumulator, flags resultFlags, res evalResult) error {
	precision := a.cfg.Output.Precision
	if cmd.Flags().Changed("precision") {
		precision = flags.precision
	}
	roundUp := a.cfg.Output.RoundUp || flags.roundUp

	result, err := acc.Result(precision, roundUp)
	if err != nil {
		return err
	}
	res.RawValue = acc.RawValue()
	res.Result = result

	switch {
	case flags.money != "":
		res.Formatted, err = acc.ToMoney(flags.money)
	case flags.currency:
		res.Formatted, err = acc.ToCurrency(a.cfg.Output.DecimalSeparator, a.cfg.Output.ThousandsSeparator)
	}
	if err != nil {
		return err
	}

	text := res.Result
	if res.Formatted != "" {
		text = res.Formatted
	}
	return a.render(res, text)
}
