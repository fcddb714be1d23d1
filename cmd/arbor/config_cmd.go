package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justyntemme/arbor/internal/config"
)

func newConfigCmd(cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the arbor config file",
	}
	cmd.AddCommand(newConfigPathCmd(cfgFile), newConfigGenerateCmd(cfgFile))
	return cmd
}

func configFilePath(cfgFile *string) string {
	if *cfgFile != "" {
		return *cfgFile
	}
	return config.ConfigPath()
}

func newConfigPathCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), configFilePath(cfgFile))
		},
	}
}

func newConfigGenerateCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write a fresh default config, backing up the current one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configFilePath(cfgFile)
			backup, err := config.GenerateConfig(path)
			if err != nil {
				return err
			}
			if backup != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Backed up existing config to %s\n", backup)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
			return nil
		},
	}
}
