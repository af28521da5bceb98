package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vytor/wordull/internal/clock"
	"github.com/vytor/wordull/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, database.Close())
	})
	return database
}

// FixedClock pins the clock to an arbitrary instant for deterministic
// lifecycle tests. Mutate Current to move time.
type FixedClock struct {
	Current time.Time
}

var _ clock.Clock = (*FixedClock)(nil)

func (c *FixedClock) Now() time.Time {
	return c.Current
}

func (c *FixedClock) Today() string {
	return c.Current.Format(clock.DateLayout)
}

func (c *FixedClock) Location() *time.Location {
	return c.Current.Location()
}

func (c *FixedClock) NextMidnight() time.Time {
	y, m, d := c.Current.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, c.Current.Location())
}
