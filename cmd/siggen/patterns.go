package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/timzifer/siggen/patterns"
)

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List logic and analog patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tPATTERN")
			for _, p := range patterns.LogicKinds() {
				fmt.Fprintf(w, "logic\t%s\n", p)
			}
			for _, p := range patterns.AnalogKinds() {
				fmt.Fprintf(w, "analog\t%s\n", p)
			}
			return w.Flush()
		},
	}
}
