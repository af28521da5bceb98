package services

import (
	"context"

	"github.com/vytor/wordull/internal/errors"
	"github.com/vytor/wordull/internal/logger"
	"github.com/vytor/wordull/internal/models"
	"github.com/vytor/wordull/internal/repository"
	"github.com/vytor/wordull/internal/stats"
)

// StatsService exposes the running aggregate and external stats import.
type StatsService interface {
	GetStatistics(ctx context.Context) (*models.Stats, error)
	ImportStatistics(ctx context.Context, in models.ImportedStats) (*models.Stats, error)
}

type statsService struct {
	store repository.RecordStore
}

// NewStatsService creates a new StatsService
func NewStatsService(store repository.RecordStore) StatsService {
	return &statsService{store: store}
}

func (s *statsService) GetStatistics(ctx context.Context) (*models.Stats, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting statistics")

	aggregate, err := repository.LoadOr(ctx, s.store, repository.KindStats, models.NewStats())
	if err != nil {
		log.Error("failed to load stats record: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return aggregate, nil
}

// ImportStatistics replaces the local aggregate with an external export and
// marks the import done in the user's config.
func (s *statsService) ImportStatistics(ctx context.Context, in models.ImportedStats) (*models.Stats, error) {
	log := logger.FromContext(ctx)
	log.Debug("importing statistics: games_played=%d", in.GamesPlayed)

	if in.GamesPlayed < 0 {
		return nil, errors.NewValidationError("gamesPlayed", "must not be negative")
	}

	aggregate := stats.ImportAggregate(in)
	if err := repository.Save(ctx, s.store, repository.KindStats, aggregate); err != nil {
		log.Error("failed to save imported stats: %v", err)
		return nil, errors.NewInternalError(err)
	}

	cfg, err := repository.LoadOr(ctx, s.store, repository.KindConfig, models.DefaultUserConfig())
	if err != nil {
		log.Error("failed to load config record: %v", err)
		return nil, errors.NewInternalError(err)
	}
	cfg.StatsImported = true
	if err := repository.Save(ctx, s.store, repository.KindConfig, cfg); err != nil {
		log.Error("failed to save config record: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("imported statistics: games_played=%d, games_won=%d", aggregate.GamesPlayed, aggregate.GamesWon)
	return aggregate, nil
}
