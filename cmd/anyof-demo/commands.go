package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/samee/any-of/anyof"
	"github.com/samee/any-of/anyof/observe"
	"github.com/samee/any-of/internal/greeter"
)

// demo carries the state shared by all subcommands.
type demo struct {
	logLevel string
	log      *log.Logger
	counter  *observe.Counter
}

// options returns the container options that report to the demo's logger
// and counter.
func (d *demo) options() []anyof.Option {
	return []anyof.Option{
		anyof.WithHooks(observe.Logger(d.log)),
		anyof.WithHooks(d.counter.Hooks()),
	}
}

// bind stores v in a container observed by d. The constraint makes the
// Greeter check happen at compile time.
func bind[D greeter.Greeter](d *demo, v D) *anyof.AnyOf[greeter.Greeter] {
	return anyof.New[greeter.Greeter](v, d.options()...)
}

func newRootCmd() *cobra.Command {
	d := &demo{
		log:     log.New(),
		counter: observe.NewCounter(),
	}

	rootCmd := &cobra.Command{
		Use:   "anyof-demo",
		Short: "Exercise AnyOf containers holding greeters",
		Long: `anyof-demo stores greeters of different concrete types in AnyOf
containers, copies, moves and downcasts them, and reports what happened.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(d.logLevel)
			if err != nil {
				return err
			}
			d.log.SetLevel(level)
			d.log.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&d.logLevel, "log-level", "warning",
		"Log level: trace, debug, info, warning, error")

	var payload int
	greetCmd := &cobra.Command{
		Use:   "greet",
		Short: "Copy a greeter through a function that only knows the interface, then downcast it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return d.runGreet(cmd.OutOrStdout(), payload)
		},
	}
	greetCmd.Flags().IntVar(&payload, "payload", 5, "Payload of the HelloGreeter")

	var scenarioPayload int
	scenarioCmd := &cobra.Command{
		Use:   "scenario",
		Short: "Run the bind, copy, mutate and move sequence and check every step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return d.runScenario(cmd.OutOrStdout(), scenarioPayload)
		},
	}
	scenarioCmd.Flags().IntVar(&scenarioPayload, "payload", 5, "Initial payload of the HelloGreeter")

	var dbPath string
	var seed bool
	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Load greeters of mixed concrete types from a sqlite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return d.runLoad(cmd.Context(), cmd.OutOrStdout(), dbPath, seed)
		},
	}
	loadCmd.Flags().StringVar(&dbPath, "db", "greeters.db", "Path of the sqlite database")
	loadCmd.Flags().BoolVar(&seed, "seed", false, "Create and fill the greeters table first")

	rootCmd.AddCommand(greetCmd, scenarioCmd, loadCmd)
	return rootCmd
}

// stepError reports a scenario expectation that did not hold.
type stepError struct {
	step      string
	got, want string
}

func (e *stepError) Error() string {
	return fmt.Sprintf("%s: got %q, want %q", e.step, e.got, e.want)
}
