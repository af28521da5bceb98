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

func enabledConfig() *models.UserConfig {
	cfg := models.DefaultUserConfig()
	cfg.NotificationsEnabled = true
	cfg.AppriseURL = "tgram://token/chat"
	return cfg
}

func TestShouldRemind(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := sqlite.NewRecordStore(db.DB)
	clk := &testutil.FixedClock{Current: time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)}
	svc := services.NewReminderService(store, &mocks.MockNotifier{}, clk)

	inProgress := models.NewGameState("2024-03-10", "ERASE", false, nil)
	won := models.NewGameState("2024-03-10", "ERASE", false, nil)
	won.GameStatus = models.StatusWin
	stale := models.NewGameState("2024-03-09", "CRANE", false, nil)

	disabled := models.DefaultUserConfig()
	noTarget := models.DefaultUserConfig()
	noTarget.NotificationsEnabled = true

	tests := []struct {
		name     string
		cfg      *models.UserConfig
		state    *models.GameState
		expected bool
	}{
		{name: "unfinished puzzle today", cfg: enabledConfig(), state: inProgress, expected: true},
		{name: "notifications disabled", cfg: disabled, state: inProgress, expected: false},
		{name: "no target configured", cfg: noTarget, state: inProgress, expected: false},
		{name: "no game record", cfg: enabledConfig(), state: nil, expected: false},
		{name: "already completed", cfg: enabledConfig(), state: won, expected: false},
		{name: "record from another day", cfg: enabledConfig(), state: stale, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.ShouldRemind(tt.cfg, tt.state, "2024-03-10"))
		})
	}
}

func TestCheckAndSend_SendsWithRemainingGuesses(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := sqlite.NewRecordStore(db.DB)
	notifier := &mocks.MockNotifier{}
	clk := &testutil.FixedClock{Current: time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)}
	svc := services.NewReminderService(store, notifier, clk)
	ctx := context.Background()

	require.NoError(t, repository.Save(ctx, store, repository.KindConfig, enabledConfig()))
	game := models.NewGameState("2024-03-10", "ERASE", false, nil)
	game.RowIndex = 2
	require.NoError(t, repository.Save(ctx, store, repository.KindGame, game))

	notifier.On("Send", mock.Anything, "tgram://token/chat", "Wordull Reminder",
		"Don't forget to complete today's Wordull puzzle! You have 4 guesses remaining.").
		Return(nil).Once()

	svc.CheckAndSend(ctx)

	notifier.AssertExpectations(t)
}

func TestCheckAndSend_NothingDueSendsNothing(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := sqlite.NewRecordStore(db.DB)
	notifier := &mocks.MockNotifier{}
	clk := &testutil.FixedClock{Current: time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)}
	svc := services.NewReminderService(store, notifier, clk)

	svc.CheckAndSend(context.Background())

	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckAndSend_SwallowsDeliveryFailure(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := sqlite.NewRecordStore(db.DB)
	notifier := &mocks.MockNotifier{}
	clk := &testutil.FixedClock{Current: time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)}
	svc := services.NewReminderService(store, notifier, clk)
	ctx := context.Background()

	require.NoError(t, repository.Save(ctx, store, repository.KindConfig, enabledConfig()))
	require.NoError(t, repository.Save(ctx, store, repository.KindGame,
		models.NewGameState("2024-03-10", "ERASE", false, nil)))

	notifier.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("gateway unreachable"))

	// Must not panic or propagate anything.
	svc.CheckAndSend(ctx)
}

func TestTestNotification(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := sqlite.NewRecordStore(db.DB)
	notifier := &mocks.MockNotifier{}
	clk := &testutil.FixedClock{Current: time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)}
	svc := services.NewReminderService(store, notifier, clk)
	ctx := context.Background()

	t.Run("empty target rejected", func(t *testing.T) {
		err := svc.TestNotification(ctx, "")

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	})

	t.Run("delivery success", func(t *testing.T) {
		notifier.On("Send", mock.Anything, "mailto://u:p@example.com", "Wordull Test", mock.Anything).
			Return(nil).Once()

		assert.NoError(t, svc.TestNotification(ctx, "mailto://u:p@example.com"))
		notifier.AssertExpectations(t)
	})

	t.Run("delivery failure surfaces", func(t *testing.T) {
		notifier.On("Send", mock.Anything, "bad://target", mock.Anything, mock.Anything).
			Return(errors.New("no such plugin")).Once()

		err := svc.TestNotification(ctx, "bad://target")

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrCodeInternal, appErr.Code)
	})
}
