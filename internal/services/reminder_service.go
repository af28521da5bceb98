package services

import (
	"context"
	"fmt"

	"github.com/vytor/wordull/internal/clock"
	"github.com/vytor/wordull/internal/errors"
	"github.com/vytor/wordull/internal/logger"
	"github.com/vytor/wordull/internal/models"
	"github.com/vytor/wordull/internal/notify"
	"github.com/vytor/wordull/internal/repository"
)

// ReminderService decides whether to nudge the user about an unfinished
// puzzle and delivers the nudge. Delivery is best-effort: failures are logged
// and swallowed, never surfaced.
type ReminderService interface {
	ShouldRemind(cfg *models.UserConfig, state *models.GameState, today string) bool
	CheckAndSend(ctx context.Context)
	TestNotification(ctx context.Context, target string) error
}

type reminderService struct {
	store    repository.RecordStore
	notifier notify.Notifier
	clk      clock.Clock
}

// NewReminderService creates a new ReminderService
func NewReminderService(store repository.RecordStore, notifier notify.Notifier, clk clock.Clock) ReminderService {
	return &reminderService{store: store, notifier: notifier, clk: clk}
}

// ShouldRemind is true iff notifications are enabled with a target and
// today's puzzle exists but is unfinished.
func (s *reminderService) ShouldRemind(cfg *models.UserConfig, state *models.GameState, today string) bool {
	if cfg == nil || !cfg.NotificationsEnabled || cfg.AppriseURL == "" {
		return false
	}
	return state != nil && state.Date == today && state.GameStatus == models.StatusInProgress
}

// CheckAndSend runs one reminder tick. Invoked by the scheduler; every
// failure path logs and returns without error so the tick can never take the
// rest of the system down.
func (s *reminderService) CheckAndSend(ctx context.Context) {
	log := logger.FromContext(ctx).WithPrefix("reminder")

	cfg, err := repository.LoadOr(ctx, s.store, repository.KindConfig, models.DefaultUserConfig())
	if err != nil {
		log.Error("reminder check could not load config: %v", err)
		return
	}

	state, err := repository.Load[models.GameState](ctx, s.store, repository.KindGame)
	if err != nil {
		log.Error("reminder check could not load game record: %v", err)
		return
	}

	if !s.ShouldRemind(cfg, state, s.clk.Today()) {
		log.Debug("no reminder due")
		return
	}

	title := "Wordull Reminder"
	body := fmt.Sprintf("Don't forget to complete today's Wordull puzzle! You have %d guesses remaining.", state.RemainingGuesses())
	if err := s.notifier.Send(ctx, cfg.AppriseURL, title, body); err != nil {
		log.Warn("reminder delivery failed: %v", err)
		return
	}
	log.Info("sent reminder, %d guesses remaining", state.RemainingGuesses())
}

// TestNotification sends a test message to the given target so the user can
// verify their notification setup.
func (s *reminderService) TestNotification(ctx context.Context, target string) error {
	log := logger.FromContext(ctx)

	if target == "" {
		return errors.NewValidationError("appriseUrl", "is required")
	}

	err := s.notifier.Send(ctx, target,
		"Wordull Test",
		"This is a test notification from Wordull. If you received this, your notifications are working!")
	if err != nil {
		log.Warn("test notification failed: %v", err)
		return &errors.AppError{
			Code:    errors.ErrCodeInternal,
			Message: "failed to send notification",
			Status:  500,
			Err:     err,
		}
	}
	return nil
}
