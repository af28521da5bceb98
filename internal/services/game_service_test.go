package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	apperrors "github.com/vytor/wordull/internal/errors"
	"github.com/vytor/wordull/internal/models"
	"github.com/vytor/wordull/internal/repository"
	"github.com/vytor/wordull/internal/repository/sqlite"
	"github.com/vytor/wordull/internal/services"
	"github.com/vytor/wordull/internal/testutil"
	"github.com/vytor/wordull/internal/testutil/mocks"
)

type gameFixture struct {
	store repository.RecordStore
	words *mocks.MockWordClient
	clk   *testutil.FixedClock
	svc   services.GameService
	ctx   context.Context
	t     *testing.T
}

func newGameFixture(t *testing.T, now time.Time) *gameFixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	store := sqlite.NewRecordStore(db.DB)
	words := &mocks.MockWordClient{}
	clk := &testutil.FixedClock{Current: now}
	return &gameFixture{
		store: store,
		words: words,
		clk:   clk,
		svc:   services.NewGameService(store, words, clk),
		ctx:   context.Background(),
		t:     t,
	}
}

func (f *gameFixture) seedGame(state *models.GameState) {
	f.t.Helper()
	require.NoError(f.t, repository.Save(f.ctx, f.store, repository.KindGame, state))
}

func (f *gameFixture) seedStats(s *models.Stats) {
	f.t.Helper()
	require.NoError(f.t, repository.Save(f.ctx, f.store, repository.KindStats, s))
}

func (f *gameFixture) loadStats() *models.Stats {
	f.t.Helper()
	s, err := repository.LoadOr(f.ctx, f.store, repository.KindStats, models.NewStats())
	require.NoError(f.t, err)
	return s
}

func (f *gameFixture) loadGame() *models.GameState {
	f.t.Helper()
	g, err := repository.Load[models.GameState](f.ctx, f.store, repository.KindGame)
	require.NoError(f.t, err)
	return g
}

func appCode(t *testing.T, err error) string {
	t.Helper()
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestGetCurrentState_CreatesGameOnFirstAccess(t *testing.T) {
	f := newGameFixture(t, time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))
	f.words.On("FetchSolution", mock.Anything, "2024-03-10").Return("ERASE", nil).Once()

	state, err := f.svc.GetCurrentState(f.ctx)

	require.NoError(t, err)
	assert.Equal(t, "2024-03-10", state.Date)
	assert.Equal(t, models.StatusInProgress, state.GameStatus)
	assert.Equal(t, 0, state.RowIndex)
	assert.Empty(t, state.Solution, "solution must be redacted")

	persisted := f.loadGame()
	assert.Equal(t, "ERASE", persisted.Solution, "persisted record keeps the solution")
	f.words.AssertExpectations(t)
}

func TestGetCurrentState_IdempotentWithinOneDay(t *testing.T) {
	f := newGameFixture(t, time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))
	f.words.On("FetchSolution", mock.Anything, "2024-03-10").Return("ERASE", nil).Once()

	first, err := f.svc.GetCurrentState(f.ctx)
	require.NoError(t, err)

	second, err := f.svc.GetCurrentState(f.ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	f.words.AssertNumberOfCalls(t, "FetchSolution", 1)
}

func TestGetCurrentState_FetchFailureLeavesNothingBehind(t *testing.T) {
	f := newGameFixture(t, time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))
	f.words.On("FetchSolution", mock.Anything, "2024-03-10").Return("", errors.New("upstream down"))

	_, err := f.svc.GetCurrentState(f.ctx)

	assert.Equal(t, apperrors.ErrCodeFetchFailed, appCode(t, err))
	assert.Nil(t, f.loadGame(), "no half-constructed record may be persisted")
}

func TestGetCurrentState_AbandonedGameBreaksStreak(t *testing.T) {
	f := newGameFixture(t, time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC))

	yesterday := models.NewGameState("2024-03-10", "CRANE", false, nil)
	yesterday.RowIndex = 2 // started but never finished
	f.seedGame(yesterday)

	seeded := models.NewStats()
	seeded.CurrentStreak = 5
	seeded.MaxStreak = 5
	f.seedStats(seeded)

	f.words.On("FetchSolution", mock.Anything, "2024-03-11").Return("SPEED", nil).Once()

	state, err := f.svc.GetCurrentState(f.ctx)

	require.NoError(t, err)
	assert.Equal(t, "2024-03-11", state.Date)
	assert.Equal(t, models.StatusInProgress, state.GameStatus)
	assert.Equal(t, 0, f.loadStats().CurrentStreak, "abandoned puzzle zeroes the streak")
	assert.Equal(t, 5, f.loadStats().MaxStreak)
}

func TestGetCurrentState_SkippedDaysBreakStreak(t *testing.T) {
	f := newGameFixture(t, time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC))

	completedMs := time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC).UnixMilli()
	old := models.NewGameState("2024-03-10", "CRANE", false, nil)
	old.GameStatus = models.StatusWin
	old.LastCompletedTs = &completedMs
	f.seedGame(old)

	seeded := models.NewStats()
	seeded.CurrentStreak = 3
	f.seedStats(seeded)

	f.words.On("FetchSolution", mock.Anything, "2024-03-14").Return("SPEED", nil).Once()

	_, err := f.svc.GetCurrentState(f.ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, f.loadStats().CurrentStreak, "multi-day gap zeroes the streak")

	fresh := f.loadGame()
	require.NotNil(t, fresh.LastCompletedTs)
	assert.Equal(t, completedMs, *fresh.LastCompletedTs, "completion timestamp is carried forward")
}

func TestGetCurrentState_YesterdayTerminalKeepsStreak(t *testing.T) {
	f := newGameFixture(t, time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC))

	old := models.NewGameState("2024-03-10", "CRANE", false, nil)
	old.GameStatus = models.StatusWin
	f.seedGame(old)

	seeded := models.NewStats()
	seeded.CurrentStreak = 5
	f.seedStats(seeded)

	f.words.On("FetchSolution", mock.Anything, "2024-03-11").Return("SPEED", nil).Once()

	_, err := f.svc.GetCurrentState(f.ctx)

	require.NoError(t, err)
	assert.Equal(t, 5, f.loadStats().CurrentStreak, "finishing yesterday keeps the streak alive")
}

func TestGetCurrentState_HardModeSnapshotFromConfig(t *testing.T) {
	f := newGameFixture(t, time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))

	cfg := models.DefaultUserConfig()
	cfg.HardMode = true
	require.NoError(t, repository.Save(f.ctx, f.store, repository.KindConfig, cfg))

	f.words.On("FetchSolution", mock.Anything, "2024-03-10").Return("ERASE", nil).Once()

	state, err := f.svc.GetCurrentState(f.ctx)

	require.NoError(t, err)
	assert.True(t, state.HardMode)
}

func TestSubmitGuess_IntermediateGuess(t *testing.T) {
	f := newGameFixture(t, time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))
	f.seedGame(models.NewGameState("2024-03-10", "ERASE", false, nil))

	result, err := f.svc.SubmitGuess(f.ctx, "speed", 0)

	require.NoError(t, err)
	assert.Equal(t, []string{"present", "absent", "present", "present", "absent"}, result.Evaluation)
	assert.Equal(t, models.StatusInProgress, result.GameStatus)
	assert.Equal(t, 1, result.RowIndex)
	assert.Empty(t, result.Solution, "solution withheld before a terminal state")

	assert.Equal(t, 0, f.loadStats().GamesPlayed, "intermediate guesses never touch stats")

	persisted := f.loadGame()
	assert.Equal(t, "SPEED", persisted.BoardState[0])
	assert.NotNil(t, persisted.LastPlayedTs)
	assert.Nil(t, persisted.LastCompletedTs)
}

func TestSubmitGuess_WinUpdatesStatsOnce(t *testing.T) {
	f := newGameFixture(t, time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))
	game := models.NewGameState("2024-03-10", "ERASE", false, nil)
	game.BoardState[0] = "SPEED"
	game.RowIndex = 1
	f.seedGame(game)

	result, err := f.svc.SubmitGuess(f.ctx, "ERASE", 1)

	require.NoError(t, err)
	assert.Equal(t, models.StatusWin, result.GameStatus)
	assert.Equal(t, "ERASE", result.Solution, "solution revealed on the terminal transition")

	s := f.loadStats()
	assert.Equal(t, 1, s.GamesPlayed)
	assert.Equal(t, 1, s.GamesWon)
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 1, s.Guesses["2"])
	assert.Equal(t, 100, s.WinPercentage)

	persisted := f.loadGame()
	require.NotNil(t, persisted.LastCompletedTs)
	assert.Equal(t, f.clk.Current.UnixMilli(), *persisted.LastCompletedTs)
}

func TestSubmitGuess_SixthWrongGuessIsLoss(t *testing.T) {
	f := newGameFixture(t, time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))
	game := models.NewGameState("2024-03-10", "ERASE", false, nil)
	for i := 0; i < 5; i++ {
		game.BoardState[i] = "SPEED"
	}
	game.RowIndex = 5
	f.seedGame(game)

	result, err := f.svc.SubmitGuess(f.ctx, "SPEED", 5)

	require.NoError(t, err)
	assert.Equal(t, models.StatusFail, result.GameStatus)
	assert.Equal(t, "ERASE", result.Solution)

	s := f.loadStats()
	assert.Equal(t, 1, s.GamesPlayed)
	assert.Equal(t, 0, s.GamesWon)
	assert.Equal(t, 0, s.CurrentStreak)
	assert.Equal(t, 1, s.Guesses[models.FailBucket])
}

func TestSubmitGuess_TerminalGameRejectsFurtherGuesses(t *testing.T) {
	f := newGameFixture(t, time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))
	game := models.NewGameState("2024-03-10", "ERASE", false, nil)
	game.GameStatus = models.StatusWin
	game.RowIndex = 2
	f.seedGame(game)

	seeded := models.NewStats()
	seeded.GamesPlayed = 1
	seeded.GamesWon = 1
	f.seedStats(seeded)

	_, err := f.svc.SubmitGuess(f.ctx, "CRANE", 2)

	assert.Equal(t, apperrors.ErrCodeInvalidState, appCode(t, err))
	assert.Equal(t, 1, f.loadStats().GamesPlayed, "stats must not be folded a second time")
}

func TestSubmitGuess_NoActiveGame(t *testing.T) {
	f := newGameFixture(t, time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := f.svc.SubmitGuess(f.ctx, "CRANE", 0)

	assert.Equal(t, apperrors.ErrCodeInvalidState, appCode(t, err))
}

func TestSubmitGuess_RejectsMalformedWord(t *testing.T) {
	f := newGameFixture(t, time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))
	f.seedGame(models.NewGameState("2024-03-10", "ERASE", false, nil))

	_, err := f.svc.SubmitGuess(f.ctx, "CRA", 0)

	assert.Equal(t, apperrors.ErrCodeValidation, appCode(t, err))
	assert.Equal(t, 0, f.loadGame().RowIndex, "record untouched on validation failure")
}

func TestSubmitGuess_RejectsStaleRowIndex(t *testing.T) {
	f := newGameFixture(t, time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))
	game := models.NewGameState("2024-03-10", "ERASE", false, nil)
	game.BoardState[0] = "SPEED"
	game.RowIndex = 1
	f.seedGame(game)

	_, err := f.svc.SubmitGuess(f.ctx, "CRANE", 0)

	assert.Equal(t, apperrors.ErrCodeValidation, appCode(t, err))
}

func TestSubmitGuess_WinStreakContinuesFromYesterday(t *testing.T) {
	f := newGameFixture(t, time.Date(2024, 3, 11, 20, 0, 0, 0, time.UTC))

	yesterdayMs := time.Date(2024, 3, 10, 19, 0, 0, 0, time.UTC).UnixMilli()
	game := models.NewGameState("2024-03-11", "ERASE", false, &yesterdayMs)
	f.seedGame(game)

	seeded := models.NewStats()
	seeded.CurrentStreak = 4
	seeded.MaxStreak = 4
	seeded.GamesPlayed = 4
	seeded.GamesWon = 4
	seeded.Guesses["3"] = 4
	f.seedStats(seeded)

	_, err := f.svc.SubmitGuess(f.ctx, "ERASE", 0)

	require.NoError(t, err)
	s := f.loadStats()
	assert.Equal(t, 5, s.CurrentStreak)
	assert.Equal(t, 5, s.MaxStreak)
}

func TestSaveState_StampsTodayOnSubmittedRecord(t *testing.T) {
	f := newGameFixture(t, time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))

	state := models.NewGameState("1999-01-01", "ERASE", false, nil)
	state.BoardState[0] = "CRANE"
	state.RowIndex = 1

	require.NoError(t, f.svc.SaveState(f.ctx, state))

	saved := f.loadGame()
	assert.Equal(t, "2024-03-10", saved.Date)
	assert.Equal(t, 1, saved.RowIndex)
	assert.Equal(t, "CRANE", saved.BoardState[0])
}
