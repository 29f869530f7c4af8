package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ctrlflow/interp/debugger"
)

func newSourceMapCmd() *cobra.Command {
	var tag uint64
	var name string

	cmd := &cobra.Command{
		Use:   "sourcemap <path>",
		Short: "Load a source-map metadata file and resolve one (tag, name) lookup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			sm, err := debugger.FromFile(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if sm == nil {
				fmt.Fprintf(out, "no source map configured (missing file: %s)\n", path)
				return nil
			}
			loc, ok := sm.Lookup(tag, name)
			if !ok {
				fmt.Fprintf(out, "no entry for tag=%d name=%q\n", tag, name)
				return nil
			}
			fmt.Fprintf(out, "%s\n", loc)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&tag, "tag", 0, "numeric tag to resolve")
	cmd.Flags().StringVar(&name, "name", "", "entry name to resolve (falls back to the tag's unnamed entry)")
	return cmd
}
