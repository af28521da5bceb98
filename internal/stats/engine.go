package stats

import (
	"math"
	"strconv"
	"time"

	"github.com/vytor/wordull/internal/clock"
	"github.com/vytor/wordull/internal/models"
)

// ApplyCompletion folds one finished game into the running aggregate. Streak
// continuation is decided by the whole-calendar-day gap between the previous
// completion and now, computed in loc:
//
//	no prior completion  -> streak increments
//	gap of exactly 1 day -> streak increments
//	gap of 0 days        -> streak unchanged (duplicate same-day completion)
//	anything larger      -> streak restarts at 1
//
// A loss zeroes the streak and lands in the fail bucket; its guess count is
// irrelevant. Derived fields are recomputed from the base counters.
func ApplyCompletion(s *models.Stats, won bool, guessCount int, lastCompletedTs *int64, now time.Time, loc *time.Location) {
	if s.Guesses == nil {
		s.Guesses = models.NewStats().Guesses
	}

	s.GamesPlayed++

	if won {
		if lastCompletedTs == nil {
			s.CurrentStreak++
		} else {
			last := time.UnixMilli(*lastCompletedTs)
			switch gap := clock.DaysBetween(last, now, loc); {
			case gap == 0:
				// Already completed today; keep the streak as is.
			case gap == 1:
				s.CurrentStreak++
			default:
				s.CurrentStreak = 1
			}
		}
		s.Guesses[strconv.Itoa(guessCount)]++
		s.GamesWon++
		if s.CurrentStreak > s.MaxStreak {
			s.MaxStreak = s.CurrentStreak
		}
	} else {
		s.CurrentStreak = 0
		s.Guesses[models.FailBucket]++
	}

	Recompute(s)
}

// Recompute refreshes winPercentage and averageGuesses from the base
// counters. Both derived fields are 0 under a zero denominator.
func Recompute(s *models.Stats) {
	s.WinPercentage = 0
	if s.GamesPlayed > 0 {
		s.WinPercentage = int(math.Round(float64(s.GamesWon) / float64(s.GamesPlayed) * 100))
	}

	s.AverageGuesses = 0
	if s.GamesWon > 0 {
		total := 0
		for bucket, count := range s.Guesses {
			if bucket == models.FailBucket {
				continue
			}
			n, err := strconv.Atoi(bucket)
			if err != nil {
				continue
			}
			total += n * count
		}
		s.AverageGuesses = int(math.Round(float64(total) / float64(s.GamesWon)))
	}
}

// ImportAggregate builds a local aggregate from an externally exported one.
// gamesWon is derived from the winning distribution buckets and the derived
// fields are recomputed rather than trusted from the export.
func ImportAggregate(in models.ImportedStats) *models.Stats {
	s := models.NewStats()
	s.GamesPlayed = in.GamesPlayed
	s.CurrentStreak = in.CurrentStreak
	s.MaxStreak = in.MaxStreak

	for bucket, count := range in.Guesses {
		s.Guesses[bucket] = count
	}
	for i := 1; i <= models.MaxGuesses; i++ {
		s.GamesWon += s.Guesses[strconv.Itoa(i)]
	}

	Recompute(s)
	return s
}
