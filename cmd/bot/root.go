package main

import (
	"apt_subscription_bot/internal/infra/config"
	"apt_subscription_bot/internal/infra/logger"
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var cfg *config.AppConfig

	cmd := &cobra.Command{
		Use:           "apt-subscription-bot",
		Short:         "Weekly apartment subscription announcements to Telegram",
		Long:          "Checks the ApplyHome announcement API on Mondays and posts upcoming subscriptions to a Telegram chat.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("could not load application configuration: %w", err)
			}
			logger.Init(cfg)
			return nil
		},
	}

	// Bare invocation serves, matching how the container is started.
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return serve(cfg.Port)
	}
	cmd.AddCommand(newServeCmd(func() *config.AppConfig { return cfg }))
	cmd.AddCommand(newRunCmd())
	return cmd
}
