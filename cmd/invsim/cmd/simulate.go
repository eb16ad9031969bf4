package cmd

import (
	"errors"
	"fmt"

	"github.com/rpgo/investment-simulator/internal/calculation"
	"github.com/rpgo/investment-simulator/internal/config"
	"github.com/rpgo/investment-simulator/internal/output"
	"github.com/rpgo/investment-simulator/internal/service"
	"github.com/spf13/cobra"
)

type simulateOptions struct {
	principal    float64
	contribution float64
	rate         float64
	term         float64
	file         string
	format       string
	page         int
	perPage      int
	currency     string
	output       string
}

func newSimulateCmd(root *rootOptions) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a simulation and print the summary and monthly ledger",
		Long: `Run a simulation from flags, a parameter file, or both.

Flags given on the command line override values read from --file. Every
parameter must end up set; missing or out-of-range values are reported
field by field.

Examples:
  invsim simulate --principal 10000 --contribution 500 --rate 1 --term 12
  invsim simulate --file params.yaml --format json
  invsim simulate --file params.toml --term 600 --page 2 --per-page 24
  invsim simulate --file params.yaml --format html --currency brl --output report.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.principal, "principal", 0, "Initial principal (0 to 999,999,999.99)")
	f.Float64Var(&opts.contribution, "contribution", 0, "Monthly contribution (0 to 999,999,999.99)")
	f.Float64Var(&opts.rate, "rate", 0, "Monthly interest rate in percent (0.1 to 20)")
	f.Float64Var(&opts.term, "term", 0, "Term in months (1 to 600)")
	f.StringVarP(&opts.file, "file", "f", "", "Parameter file (yaml, toml or json)")
	f.StringVar(&opts.format, "format", "console", "Output format: console, json, yaml, csv, html")
	f.IntVar(&opts.page, "page", 0, "Ledger page to print (console only, 0 prints every month)")
	f.IntVar(&opts.perPage, "per-page", output.DefaultPerPage, "Ledger rows per page")
	f.StringVar(&opts.currency, "currency", output.CurrencyUSD, "Currency style: usd or brl")
	f.StringVarP(&opts.output, "output", "o", "", "Write the report to this file instead of stdout")
	return cmd
}

func runSimulate(cmd *cobra.Command, root *rootOptions, opts *simulateOptions) error {
	if opts.page < 0 || opts.perPage < 1 {
		return errors.New("--page must be >= 0 and --per-page >= 1")
	}
	if opts.currency != output.CurrencyUSD && opts.currency != output.CurrencyBRL {
		return fmt.Errorf("--currency must be %q or %q", output.CurrencyUSD, output.CurrencyBRL)
	}
	if _, err := output.LookupFormatter(opts.format); err != nil {
		return err
	}

	var input config.ParameterInput
	if opts.file != "" {
		var err error
		input, err = config.NewInputParser().LoadInputFromFile(opts.file)
		if err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	overlay := func(name string, value float64, dst **float64) {
		if flags.Changed(name) {
			v := value
			*dst = &v
		}
	}
	overlay("principal", opts.principal, &input.InitialPrincipal)
	overlay("contribution", opts.contribution, &input.MonthlyContribution)
	overlay("rate", opts.rate, &input.MonthlyRatePercent)
	overlay("term", opts.term, &input.TermMonths)

	params, err := input.Resolve()
	if err != nil {
		return err
	}

	logger := calculation.NewSlogLogger(root.logger(cmd.ErrOrStderr()))
	engine := calculation.NewSimulationEngine()
	engine.Debug = root.verbose
	engine.SetLogger(logger)

	result, err := service.NewSimulationService(engine, nil, logger).Simulate(cmd.Context(), params)
	if err != nil {
		return err
	}

	renderOpts := output.Options{Currency: opts.currency, Page: opts.page, PerPage: opts.perPage}
	if opts.output != "" {
		path, err := output.GenerateReport(result, opts.format, renderOpts, opts.output)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		return nil
	}
	return output.Render(cmd.OutOrStdout(), result, opts.format, renderOpts)
}
