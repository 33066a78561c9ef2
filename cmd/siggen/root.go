package main

import (
	"github.com/spf13/cobra"
)

const defaultConfigPath = "siggen.yaml"

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "siggen",
		Short: "Deterministic multi-channel signal generator",
		Long: `siggen produces logic and analog sample streams paced by the wall clock.

Examples:
  siggen run --samples 1000000 --npy-dir out/   # Capture one million samples
  siggen run --config bench.cue --time 5s       # Run a CUE configuration for five seconds
  siggen validate --config siggen.yaml          # Check a configuration file
  siggen patterns                               # List the available patterns`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "path to a YAML or CUE configuration file")

	root.AddCommand(newRunCmd(opts), newValidateCmd(opts), newPatternsCmd())
	return root
}
