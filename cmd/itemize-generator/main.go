// Package main provides the CLI entrypoint for itemize-generator.
//
// itemize-generator reads a YAML file of declarations and, for each target,
// generates the impls that let a function accept a single value, a tuple or
// a collection and receive one uniform iterator:
//   - IntoItems and TryIntoItems yield converted items
//   - IntoRows and TryIntoRows yield one row of items per tuple position or element
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"itemize-generator/internal/engine"
	"itemize-generator/internal/logging"
)

var version = "0.1.0"

// options holds the flags shared by every subcommand.
type options struct {
	logLevel  string
	logFormat string
	noColor   bool
	jobs      int
	sumType   string
	maxArity  int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "itemize-generator",
		Short: "Generate uniform item and row conversions from declarations",
		Long: `itemize-generator compiles a declaration file into IntoItems, TryIntoItems,
IntoRows and TryIntoRows impls for every declared target.

Each declaration is generated independently: a declaration with errors is
reported and skipped while the others are still generated.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	def := engine.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored diagnostics")
	flags.IntVarP(&opts.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "declarations generated concurrently")
	flags.StringVar(&opts.sumType, "sum-type", def.SumType, "name of the binary sum type in the runtime crate")
	flags.IntVar(&opts.maxArity, "max-arity", def.MaxArity, "largest tuple arity a declaration may request")

	rootCmd.AddCommand(newGenCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newDescribeCmd(opts))
	rootCmd.AddCommand(newInitCmd())

	return rootCmd
}

func (o *options) logger(cmd *cobra.Command) (*logging.Logger, error) {
	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return nil, err
	}

	return logging.New(cmd.ErrOrStderr(), logging.Format(o.logFormat), level)
}

func (o *options) engine() *engine.Engine {
	return engine.New(engine.Config{SumType: o.sumType, MaxArity: o.maxArity})
}
