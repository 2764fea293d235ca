package main

import (
	"apt_subscription_bot/internal/bootstrap"
	"apt_subscription_bot/internal/infra/logger"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run one invocation now and print its outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := bootstrap.NewNotificationService(bootstrap.DefaultEndpoints(), time.Now, logger.Get())
			if err != nil {
				return err
			}

			log := logger.Component("cli").WithField("invocation_id", uuid.NewString())
			outcome, err := svc.Run(cmd.Context(), log)
			if err != nil {
				log.WithError(err).Error("Invocation failed")
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), outcome.Text())
			return nil
		},
	}
}
