package main

import (
	"fmt"

	"github.com/go-i2p/go-casc/lib/casc/keys"
	"github.com/go-i2p/go-casc/lib/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the names of the built-in keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range keys.Builtin.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), keys.FormatName(name))
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(config.CurrentConfig()); err != nil {
				return err
			}
			return enc.Close()
		},
	})
	return cmd
}
