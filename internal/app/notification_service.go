// internal/app/notification_service.go
package app

import (
	"apt_subscription_bot/internal/domain/announcement"
	domainTelegram "apt_subscription_bot/internal/domain/telegram"
	"apt_subscription_bot/internal/infra/config"
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Outcome is the terminal state of one invocation.
type Outcome int

const (
	OutcomeSkipped Outcome = iota
	OutcomeCompleted
)

const (
	SkippedMessage   = "오늘은 월요일이 아니에요! 실행 안 함 😊"
	CompletedMessage = "청약 알림 전송 완료!"
)

// Text is the fixed reply returned to whoever triggered the invocation.
func (o Outcome) Text() string {
	if o == OutcomeCompleted {
		return CompletedMessage
	}
	return SkippedMessage
}

func (o Outcome) String() string {
	if o == OutcomeCompleted {
		return "completed"
	}
	return "skipped"
}

// RunDayMatcher decides whether an invocation at t should do any work.
type RunDayMatcher interface {
	Matches(t time.Time) bool
}

// NotificationService runs the weekly announcement check. It holds no mutable state;
// concurrent Run calls are independent.
type NotificationService struct {
	source         announcement.Source
	telegramClient domainTelegram.Client
	runDay         RunDayMatcher
	clock          func() time.Time
	logger         *logrus.Entry
}

func NewNotificationService(
	source announcement.Source,
	tc domainTelegram.Client,
	runDay RunDayMatcher,
	clock func() time.Time,
	logger *logrus.Entry,
) *NotificationService {
	if clock == nil {
		clock = time.Now
	}
	return &NotificationService{
		source:         source,
		telegramClient: tc,
		runDay:         runDay,
		clock:          clock,
		logger:         logger,
	}
}

// Run performs one invocation: gate on the run day, load credentials, fetch,
// format and notify, strictly in that order. Any failure aborts the invocation.
func (s *NotificationService) Run(ctx context.Context, logger *logrus.Entry) (Outcome, error) {
	if logger == nil {
		logger = s.logger
	}
	now := s.clock()
	log := logger.WithFields(logrus.Fields{
		"called_at": now.Format(announcement.DateLayout),
		"weekday":   weekdayIndex(now),
	})
	log.Info("Invocation received")

	if !s.runDay.Matches(now) {
		log.Info("Not a run day. Skipping.")
		return OutcomeSkipped, nil
	}
	log.Info("Run day. Starting announcement check.")

	creds, err := config.LoadCredentials()
	if err != nil {
		log.WithError(err).Error("Credentials are incomplete")
		return OutcomeSkipped, fmt.Errorf("loading credentials: %w", err)
	}

	window := ComputeWindow(now)
	log = log.WithFields(logrus.Fields{
		"window_start": window.StartDate(),
		"window_end":   window.EndDate(),
		"threshold":    window.ThresholdDate(),
	})

	set, err := s.source.FetchAnnouncements(ctx, window, creds.APIKey)
	if err != nil {
		log.WithError(err).Error("Failed to fetch announcements")
		return OutcomeSkipped, fmt.Errorf("fetching announcements: %w", err)
	}

	message := FormatMessage(set, window.ThresholdDate())
	log.WithField("included", len(IncludedRecords(set, window.ThresholdDate()))).Debug("Message formatted")

	res, err := s.telegramClient.SendMessage(creds.TelegramToken, creds.TelegramChatID, message)
	if err != nil {
		log.WithError(err).Error("Failed to send Telegram notification")
		return OutcomeSkipped, fmt.Errorf("sending notification: %w", err)
	}

	log.WithField("message_id", res.MessageID).Info("Notification sent")
	return OutcomeCompleted, nil
}
