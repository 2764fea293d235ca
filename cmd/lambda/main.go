package main

import (
	"apt_subscription_bot/internal/app"
	"apt_subscription_bot/internal/bootstrap"
	"apt_subscription_bot/internal/infra/config"
	"apt_subscription_bot/internal/infra/logger"
	"context"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"
)

var service *app.NotificationService

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}
	logger.Init(cfg)

	service, err = bootstrap.NewNotificationService(bootstrap.DefaultEndpoints(), time.Now, logger.Get())
	if err != nil {
		log.Fatalf("FATAL: Could not build notification service: %v", err)
	}

	lambda.Start(HandleRequest)
}

// HandleRequest runs one invocation per event (e.g. an EventBridge schedule).
func HandleRequest(ctx context.Context) (string, error) {
	entry := logger.Component("lambda").WithField("invocation_id", uuid.NewString())
	outcome, err := service.Run(ctx, entry)
	if err != nil {
		return "", err
	}
	return outcome.Text(), nil
}
