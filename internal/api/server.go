package api

import (
	"github.com/vytor/wordull/internal/clock"
	"github.com/vytor/wordull/internal/services"
	"github.com/vytor/wordull/internal/wordapi"
	"github.com/vytor/wordull/internal/words"
)

// Server bundles the services the HTTP handlers dispatch to.
type Server struct {
	GameService     services.GameService
	StatsService    services.StatsService
	ConfigService   services.ConfigService
	ReminderService services.ReminderService
	WordClient      wordapi.ClientInterface
	Words           *words.List
	Clock           clock.Clock
	StaticDir       string
}
