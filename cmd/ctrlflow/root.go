package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ctrlflow/interp/internal/obslog"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ctrlflow",
		Short:         "Run a control-flow interpreter demo component",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				l := logrus.New()
				l.SetLevel(logrus.TraceLevel)
				obslog.Configure(l)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "emit trace-level convergence/group diagnostics")
	root.AddCommand(newRunCmd())
	root.AddCommand(newSourceMapCmd())
	return root
}

// Execute runs the CLI and returns the process exit code, per the
// exitCodeFor mapping in exitcode.go; main's only job is to call
// os.Exit(Execute()). Cobra hands back whatever error a subcommand's RunE
// returned, untouched, so exitCodeFor sees the same concrete error type the
// interpreter tower raised.
func Execute() int {
	root := newRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return exitCodeFor(err)
}
