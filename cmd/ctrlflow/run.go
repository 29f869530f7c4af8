package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ctrlflow/interp/debugger"
	"github.com/ctrlflow/interp/interpreter"
	"github.com/ctrlflow/interp/internal/scenarios"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario>",
		Short: "Run one of the built-in demo components to completion",
		Long: "Runs one of the SPEC_FULL.md section 8.2 demo components and reports its\n" +
			"final active tree and currently-executing groups. Available scenarios: " +
			strings.Join(scenarios.Names(), ", ") + ".",
		Args: cobra.ExactArgs(1),
		RunE: runScenario,
	}
	return cmd
}

func runScenario(cmd *cobra.Command, args []string) error {
	name := args[0]
	sc := scenarios.Build(name)
	if sc == nil {
		return fmt.Errorf("unknown scenario %q (available: %s)", name, strings.Join(scenarios.Names(), ", "))
	}

	info := interpreter.NewComponentInfoFromComponent(sc.Comp, sc.QIN)
	ci, err := interpreter.NewControlInterpreter(sc.Comp.Control, sc.Env, info)
	if err != nil {
		return err
	}

	if err := ci.Run(); err != nil {
		return err
	}

	printActiveTree(cmd, ci.GetActiveTree())
	printGroups(cmd, ci.CurrentlyExecutingGroup())

	if _, err := ci.Deconstruct(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "scenario %q finished cleanly\n", name)
	return nil
}

func printActiveTree(cmd *cobra.Command, nodes []debugger.ActiveTreeNode) {
	out := cmd.OutOrStdout()
	if len(nodes) == 0 {
		fmt.Fprintln(out, "active tree: (empty)")
		return
	}
	fmt.Fprintln(out, "active tree:")
	for _, n := range nodes {
		fmt.Fprintf(out, "  %s\n", n.Name.String())
	}
}

func printGroups(cmd *cobra.Command, groups map[debugger.GroupQIN]struct{}) {
	out := cmd.OutOrStdout()
	if len(groups) == 0 {
		fmt.Fprintln(out, "currently executing groups: (none)")
		return
	}
	fmt.Fprintln(out, "currently executing groups:")
	for g := range groups {
		fmt.Fprintf(out, "  %s\n", g.String())
	}
}
