package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/go-i2p/go-casc/lib/config"
	"github.com/go-i2p/go-casc/lib/util/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logger.GetGoCascLogger()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "go-casc",
		Short:         "Decrypt frames of encrypted CASC archive files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitConfig(); err != nil {
				return err
			}
			if err := viper.BindPFlag("log.level", cmd.Root().PersistentFlags().Lookup("log-level")); err != nil {
				return err
			}
			logger.SetLevel(viper.GetString("log.level"))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&config.CfgFile, "config", "", "config file (default $HOME/.go-casc/config.yaml)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newDecryptCmd(),
		newCopyCmd(),
		newEncryptCmd(),
		newKeysCmd(),
		newConfigCmd(),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.WithError(err).Debug("command failed")
		fmt.Fprintf(os.Stderr, "go-casc: %s\n", err)
		stop()
		os.Exit(1)
	}
}
