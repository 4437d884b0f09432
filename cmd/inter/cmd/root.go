// Package cmd implements the inter command line tool.
package cmd

import (
	"fmt"
	"io"
	"log"
	"reflect"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"

	"github.com/inter-go/inter/elementary"
	"github.com/inter-go/inter/utils"
)

// options are the persistent flags shared by all commands.
type options struct {
	configFile string
	precision  string
	iterations int
	verbose    bool
	noColor    bool

	log *log.Logger
}

// NewRootCommand creates the inter command and its subcommands.
func NewRootCommand() *cobra.Command {

	opts := &options{log: log.New(io.Discard, "", 0)}

	root := &cobra.Command{
		Use:   "inter",
		Short: "Interval arithmetic with directed rounding",
		Long: `inter evaluates interval arithmetic with outward rounding.

Commands:
  sin       - enclosure of the sine recurrence on an interval
  eval      - one arithmetic operation on intervals
  rounding  - effect of the rounding modes on a cancellation
  sweep     - enclosure statistics of the sine over a range of centers`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.complete(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "configuration file (.yaml, .yml or .toml)")
	flags.StringVar(&opts.precision, "precision", "float64", "type of the bounds: float32 or float64")
	flags.IntVar(&opts.iterations, "iterations", elementary.DefaultSineIterations, "number of steps of the sine recurrence")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output on stderr")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newSinCommand(opts),
		newEvalCommand(opts),
		newRoundingCommand(opts),
		newSweepCommand(opts),
	)

	return root
}

// Execute runs the inter command with the arguments of the process.
func Execute() error {
	return NewRootCommand().Execute()
}

// complete merges the configuration file into the options.
// Flags given on the command line are left untouched.
func (o *options) complete(cmd *cobra.Command) error {

	if o.configFile != "" {

		cfg, err := LoadConfig(o.configFile)
		if err != nil {
			return err
		}

		flags := cmd.Flags()

		if cfg.Precision != "" && !flags.Changed("precision") {
			o.precision = cfg.Precision
		}

		if cfg.Iterations != nil && !flags.Changed("iterations") {
			o.iterations = *cfg.Iterations
		}

		if !flags.Changed("verbose") {
			o.verbose = cfg.Verbose
		}

		if cfg.Color != nil && !flags.Changed("no-color") {
			o.noColor = !*cfg.Color
		}
	}

	if err := checkPrecision(o.precision); err != nil {
		return err
	}

	if o.noColor {
		color.NoColor = true
	}

	if o.verbose {
		o.log = log.New(cmd.ErrOrStderr(), "", 0)
	}

	return nil
}

func (o *options) sineParameters() (elementary.SineParameters, error) {
	return elementary.NewSineParametersFromLiteral(elementary.SineParametersLiteral{
		Iterations: utils.Pointy(o.iterations),
	})
}

func (o *options) float32() bool {
	return o.precision == "float32"
}

// parseFloat parses s at the precision of T.
func parseFloat[T constraints.Float](s string) (T, error) {
	v, err := strconv.ParseFloat(s, reflect.TypeOf(T(0)).Bits())
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return T(v), nil
}

func parseFloats[T constraints.Float](args []string) ([]T, error) {
	values := make([]T, len(args))
	for i, arg := range args {
		v, err := parseFloat[T](arg)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
