package services

import (
	"context"

	"github.com/vytor/wordull/internal/errors"
	"github.com/vytor/wordull/internal/logger"
	"github.com/vytor/wordull/internal/models"
	"github.com/vytor/wordull/internal/reminder"
	"github.com/vytor/wordull/internal/repository"
)

// ReminderScheduler is the scheduling handle a config update drives.
type ReminderScheduler interface {
	Reschedule(cfg *models.UserConfig) error
}

// ConfigService reads and updates the user configuration record.
type ConfigService interface {
	GetConfig(ctx context.Context) (*models.UserConfig, error)
	UpdateConfig(ctx context.Context, cfg models.UserConfig) (*models.UserConfig, error)
}

type configService struct {
	store repository.RecordStore
	sched ReminderScheduler
}

// NewConfigService creates a new ConfigService
func NewConfigService(store repository.RecordStore, sched ReminderScheduler) ConfigService {
	return &configService{store: store, sched: sched}
}

func (s *configService) GetConfig(ctx context.Context) (*models.UserConfig, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting config")

	cfg, err := repository.LoadOr(ctx, s.store, repository.KindConfig, models.DefaultUserConfig())
	if err != nil {
		log.Error("failed to load config record: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return cfg, nil
}

// UpdateConfig persists the new configuration and reinstalls the reminder
// job to match it.
func (s *configService) UpdateConfig(ctx context.Context, cfg models.UserConfig) (*models.UserConfig, error) {
	log := logger.FromContext(ctx)
	log.Debug("updating config: notifications=%v, reminder_time=%s, hard_mode=%v",
		cfg.NotificationsEnabled, cfg.ReminderTime, cfg.HardMode)

	if cfg.ReminderTime != "" {
		if _, _, err := reminder.ParseTime(cfg.ReminderTime); err != nil {
			return nil, errors.NewValidationError("reminderTime", "must be HH:MM")
		}
	}
	if cfg.NotificationsEnabled && cfg.AppriseURL == "" {
		return nil, errors.NewValidationError("appriseUrl", "required when notifications are enabled")
	}

	if err := repository.Save(ctx, s.store, repository.KindConfig, &cfg); err != nil {
		log.Error("failed to save config record: %v", err)
		return nil, errors.NewInternalError(err)
	}

	// The config is already persisted; a scheduling hiccup should not fail
	// the update. It will be retried on the next config change or restart.
	if err := s.sched.Reschedule(&cfg); err != nil {
		log.Warn("failed to reschedule reminder: %v", err)
	}

	return &cfg, nil
}
