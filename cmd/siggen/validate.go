package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timzifer/siggen/acquisition"
	"github.com/timzifer/siggen/config"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	var printSchema bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if printSchema {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.Schema())
				return err
			}
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return err
			}
			settings, err := acquisition.SettingsFromConfig(cfg)
			if err != nil {
				return err
			}
			if err := settings.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%sHz, %d logic, %d analog channels)\n",
				root.configPath, config.FormatSampleRate(settings.SampleRate),
				settings.Logic.EnabledCount(), len(settings.Analog))
			return nil
		},
	}
	cmd.Flags().BoolVar(&printSchema, "schema", false, "print the CUE schema instead of validating")
	return cmd
}
