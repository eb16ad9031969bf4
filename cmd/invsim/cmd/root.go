package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	verbose   bool
	logFormat string
}

// NewRootCmd builds the invsim command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "invsim",
		Short: "Compound-interest investment simulator",
		Long: `invsim projects the growth of an investment made of an initial principal
and a fixed monthly contribution at a fixed monthly rate.

It prints a closed-form summary (final amount, total invested, accumulated
interest) together with a month-by-month ledger, either on the command line
or over an HTTP API.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output (debug logging to stderr)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log format: text or json")

	root.AddCommand(
		newSimulateCmd(opts),
		newServeCmd(opts),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// newLogger builds a slog logger writing to w.
func newLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	hopts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}

func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return newLogger(w, level, o.logFormat)
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
