package reminder

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/vytor/wordull/internal/logger"
	"github.com/vytor/wordull/internal/models"
)

// Scheduler owns the single daily reminder job. Reconfiguration goes through
// Reschedule, which cancels any installed job before installing the new one,
// so there is never more than one reminder job live.
type Scheduler struct {
	mu    sync.Mutex
	sched gocron.Scheduler
	job   gocron.Job
	task  func()
	log   *logger.Logger
}

// NewScheduler creates a stopped scheduler that will run task on each
// reminder tick. Call Start once wiring is done.
func NewScheduler(loc *time.Location, task func()) (*Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, err
	}
	return &Scheduler{
		sched: s,
		task:  task,
		log:   logger.Default().WithPrefix("reminder"),
	}, nil
}

// Start begins executing scheduled jobs.
func (s *Scheduler) Start() {
	s.sched.Start()
}

// Stop shuts the scheduler down and waits for a running job to finish.
func (s *Scheduler) Stop() error {
	return s.sched.Shutdown()
}

// Reschedule cancels the current reminder job and, when notifications are
// enabled with a target and a time, installs a daily job at cfg.ReminderTime.
func (s *Scheduler) Reschedule(cfg *models.UserConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.job != nil {
		if err := s.sched.RemoveJob(s.job.ID()); err != nil {
			s.log.Warn("failed to remove previous reminder job: %v", err)
		}
		s.job = nil
	}

	if !cfg.NotificationsEnabled || cfg.AppriseURL == "" || cfg.ReminderTime == "" {
		s.log.Debug("reminders disabled, no job installed")
		return nil
	}

	hour, minute, err := ParseTime(cfg.ReminderTime)
	if err != nil {
		return err
	}

	job, err := s.sched.NewJob(
		gocron.CronJob(fmt.Sprintf("%d %d * * *", minute, hour), false),
		gocron.NewTask(s.task),
	)
	if err != nil {
		return err
	}
	s.job = job

	s.log.Info("reminder scheduled daily at %s", cfg.ReminderTime)
	return nil
}

// ParseTime parses an HH:MM wall-clock time.
func ParseTime(v string) (hour, minute int, err error) {
	parts := strings.Split(v, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("reminder time %q is not HH:MM", v)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("reminder time %q has an invalid hour", v)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("reminder time %q has an invalid minute", v)
	}
	return hour, minute, nil
}
