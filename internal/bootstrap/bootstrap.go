// Package bootstrap assembles the notification service from its infrastructure.
package bootstrap

import (
	"apt_subscription_bot/internal/app"
	"apt_subscription_bot/internal/infra/odcloud"
	"apt_subscription_bot/internal/infra/scheduler"
	"apt_subscription_bot/internal/infra/telegram"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// Endpoints are the upstream base URLs. Tests point them at local servers.
type Endpoints struct {
	AnnouncementAPI string
	TelegramAPI     string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		AnnouncementAPI: odcloud.DefaultBaseURL,
		TelegramAPI:     telebot.DefaultApiURL,
	}
}

// NewNotificationService wires the production service. clock may be nil.
func NewNotificationService(endpoints Endpoints, clock func() time.Time, logger *logrus.Logger) (*app.NotificationService, error) {
	runDay, err := scheduler.NewRunDay(scheduler.MondaySpec)
	if err != nil {
		return nil, fmt.Errorf("building run-day gate: %w", err)
	}

	source := odcloud.NewClient(endpoints.AnnouncementAPI, nil, logger.WithField("component", "odcloud"))
	telegramClient := telegram.NewTelebotAdapter(endpoints.TelegramAPI, nil, logger.WithField("component", "telegram"))

	return app.NewNotificationService(
		source,
		telegramClient,
		runDay,
		clock,
		logger.WithField("component", "notification_service"),
	), nil
}
