package main

import (
	"apt_subscription_bot/internal/bootstrap"
	"apt_subscription_bot/internal/infra/config"
	"apt_subscription_bot/internal/infra/httpapi"
	"apt_subscription_bot/internal/infra/logger"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func newServeCmd(cfg func() *config.AppConfig) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the trigger endpoint (GET /)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = cfg().Port
			}
			return serve(port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (defaults to $PORT or 8080)")
	return cmd
}

func serve(port string) error {
	log := logger.Component("main")

	svc, err := bootstrap.NewNotificationService(bootstrap.DefaultEndpoints(), time.Now, logger.Get())
	if err != nil {
		log.WithError(err).Error("Could not build notification service")
		return err
	}

	handler := httpapi.NewTriggerHandler(svc, logger.Component("http"))
	srv := httpapi.NewServer(":"+port, httpapi.NewRouter(handler))

	serverErr := make(chan error, 1)
	go func() {
		log.WithField("port", port).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.WithError(err).Error("HTTP server stopped unexpectedly")
		return err
	case <-quit:
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown error")
		return err
	}
	log.Info("Server stopped gracefully.")
	return nil
}
