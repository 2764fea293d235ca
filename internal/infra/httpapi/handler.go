package httpapi

import (
	"apt_subscription_bot/internal/app"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Runner executes one invocation of the announcement check.
type Runner interface {
	Run(ctx context.Context, logger *logrus.Entry) (app.Outcome, error)
}

// TriggerHandler exposes the weekly check behind a single GET route.
type TriggerHandler struct {
	runner Runner
	logger *logrus.Entry
}

func NewTriggerHandler(runner Runner, logger *logrus.Entry) *TriggerHandler {
	return &TriggerHandler{runner: runner, logger: logger}
}

// Trigger runs one invocation and replies with its outcome as plain text.
// Failures get a bare 500; details stay in the log.
func (h *TriggerHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	log := h.logger.WithFields(logrus.Fields{
		"invocation_id": uuid.NewString(),
		"remote_addr":   r.RemoteAddr,
	})

	outcome, err := h.runner.Run(r.Context(), log)
	if err != nil {
		log.WithError(err).Error("Invocation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.WithField("outcome", outcome.String()).Info("Invocation finished")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, outcome.Text())
}

// NewRouter mounts the trigger on "/" only. GET patterns also answer HEAD.
func NewRouter(h *TriggerHandler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Trigger)
	return mux
}

// NewServer wraps handler with the timeouts used for the trigger endpoint.
// WriteTimeout leaves room for both outbound calls.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      90 * time.Second,
	}
}
