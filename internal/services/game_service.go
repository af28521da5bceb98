package services

import (
	"context"
	"strings"

	"github.com/vytor/wordull/internal/clock"
	"github.com/vytor/wordull/internal/errors"
	"github.com/vytor/wordull/internal/evaluator"
	"github.com/vytor/wordull/internal/logger"
	"github.com/vytor/wordull/internal/models"
	"github.com/vytor/wordull/internal/repository"
	"github.com/vytor/wordull/internal/stats"
	"github.com/vytor/wordull/internal/wordapi"
)

// GameService drives the daily game lifecycle: day-boundary detection, lazy
// game creation, and guess submission.
type GameService interface {
	GetCurrentState(ctx context.Context) (*models.GameState, error)
	SaveState(ctx context.Context, state *models.GameState) error
	SubmitGuess(ctx context.Context, word string, rowIndex int) (*models.GuessResult, error)
}

type gameService struct {
	store repository.RecordStore
	words wordapi.ClientInterface
	clk   clock.Clock
}

// NewGameService creates a new GameService
func NewGameService(store repository.RecordStore, words wordapi.ClientInterface, clk clock.Clock) GameService {
	return &gameService{store: store, words: words, clk: clk}
}

// GetCurrentState returns today's game record with the solution redacted,
// creating a fresh record when none exists for today. Crossing a day boundary
// settles streak consequences of the superseded record first: an abandoned
// (still IN_PROGRESS) record breaks the streak, as does a gap of more than
// one calendar day since the record's date.
func (s *gameService) GetCurrentState(ctx context.Context) (*models.GameState, error) {
	log := logger.FromContext(ctx)
	today := s.clk.Today()

	state, err := repository.Load[models.GameState](ctx, s.store, repository.KindGame)
	if err != nil {
		log.Error("failed to load game record: %v", err)
		return nil, errors.NewInternalError(err)
	}

	cfg, err := repository.LoadOr(ctx, s.store, repository.KindConfig, models.DefaultUserConfig())
	if err != nil {
		log.Error("failed to load config record: %v", err)
		return nil, errors.NewInternalError(err)
	}

	if state != nil && state.Date != today {
		log.Debug("day boundary crossed: record=%s, today=%s, status=%s", state.Date, today, state.GameStatus)

		breaksStreak := false
		if state.GameStatus == models.StatusInProgress {
			// The previous puzzle was abandoned unfinished.
			breaksStreak = true
		} else if gap, gapErr := clock.DaysBetweenDates(state.Date, today); gapErr != nil || gap > 1 {
			// One or more whole days without any record at all. An
			// unparseable record date is treated the same way.
			if gapErr != nil {
				log.Warn("unparseable record date %q: %v", state.Date, gapErr)
			}
			breaksStreak = true
		}

		if breaksStreak {
			if err := s.zeroStreak(ctx); err != nil {
				return nil, err
			}
		}
	}

	if state == nil || state.Date != today {
		solution, err := s.words.FetchSolution(ctx, today)
		if err != nil {
			// Leave every record untouched; the caller may retry.
			log.Error("word fetch failed for %s: %v", today, err)
			return nil, errors.NewFetchError(err)
		}

		var lastCompleted *int64
		if state != nil {
			lastCompleted = state.LastCompletedTs
		}
		state = models.NewGameState(today, solution, cfg.HardMode, lastCompleted)
		if err := repository.Save(ctx, s.store, repository.KindGame, state); err != nil {
			log.Error("failed to save new game record: %v", err)
			return nil, errors.NewInternalError(err)
		}
		log.Info("created new game for %s (hard_mode=%v)", today, state.HardMode)
	}

	return state.Redacted(), nil
}

// SaveState overwrites today's game record with the submitted one. The date
// is always stamped server-side so a stale client cannot write a record for
// another day.
func (s *gameService) SaveState(ctx context.Context, state *models.GameState) error {
	log := logger.FromContext(ctx)

	state.Date = s.clk.Today()
	if err := repository.Save(ctx, s.store, repository.KindGame, state); err != nil {
		log.Error("failed to save game record: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *gameService) zeroStreak(ctx context.Context) error {
	log := logger.FromContext(ctx)

	aggregate, err := repository.LoadOr(ctx, s.store, repository.KindStats, models.NewStats())
	if err != nil {
		log.Error("failed to load stats record: %v", err)
		return errors.NewInternalError(err)
	}
	if aggregate.CurrentStreak == 0 {
		return nil
	}

	log.Info("breaking streak of %d across day boundary", aggregate.CurrentStreak)
	aggregate.CurrentStreak = 0
	if err := repository.Save(ctx, s.store, repository.KindStats, aggregate); err != nil {
		log.Error("failed to save stats record: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

// SubmitGuess evaluates a guess against the stored solution and persists the
// outcome. Statistics are folded exactly once, on the transition into WIN or
// FAIL; terminal records reject further guesses.
func (s *gameService) SubmitGuess(ctx context.Context, word string, rowIndex int) (*models.GuessResult, error) {
	log := logger.FromContext(ctx)

	word = strings.ToUpper(strings.TrimSpace(word))
	if len(word) != models.WordLength {
		return nil, errors.NewValidationError("word", "must be exactly 5 letters")
	}

	state, err := repository.Load[models.GameState](ctx, s.store, repository.KindGame)
	if err != nil {
		log.Error("failed to load game record: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if state == nil {
		return nil, errors.NewInvalidStateError("no active game")
	}
	if state.GameStatus != models.StatusInProgress {
		return nil, errors.NewInvalidStateError("game already complete")
	}
	if rowIndex != state.RowIndex {
		return nil, errors.NewValidationError("rowIndex", "does not match the current row")
	}

	verdicts, err := evaluator.Evaluate(word, state.Solution)
	if err != nil {
		// Inputs were validated; this is an invariant violation, not a
		// recoverable condition.
		log.Error("evaluation failed against stored solution: %v", err)
		return nil, errors.NewInternalError(err)
	}

	now := s.clk.Now()
	nowMs := now.UnixMilli()

	state.BoardState[rowIndex] = word
	state.Evaluations[rowIndex] = verdicts
	state.RowIndex = rowIndex + 1
	state.LastPlayedTs = &nowMs

	isWin := evaluator.IsWin(verdicts)
	isLoss := !isWin && rowIndex >= models.MaxGuesses-1

	if isWin || isLoss {
		aggregate, err := repository.LoadOr(ctx, s.store, repository.KindStats, models.NewStats())
		if err != nil {
			log.Error("failed to load stats record: %v", err)
			return nil, errors.NewInternalError(err)
		}

		guessCount := 0
		if isWin {
			state.GameStatus = models.StatusWin
			guessCount = rowIndex + 1
		} else {
			state.GameStatus = models.StatusFail
		}

		stats.ApplyCompletion(aggregate, isWin, guessCount, state.LastCompletedTs, now, s.clk.Location())
		if err := repository.Save(ctx, s.store, repository.KindStats, aggregate); err != nil {
			log.Error("failed to save stats record: %v", err)
			return nil, errors.NewInternalError(err)
		}

		state.LastCompletedTs = &nowMs
		log.Info("game completed: status=%s, guesses=%d, streak=%d", state.GameStatus, state.RowIndex, aggregate.CurrentStreak)
	}

	if err := repository.Save(ctx, s.store, repository.KindGame, state); err != nil {
		log.Error("failed to save game record: %v", err)
		return nil, errors.NewInternalError(err)
	}

	result := &models.GuessResult{
		Evaluation: verdicts,
		GameStatus: state.GameStatus,
		RowIndex:   state.RowIndex,
	}
	if state.Terminal() {
		result.Solution = state.Solution
	}
	return result, nil
}
