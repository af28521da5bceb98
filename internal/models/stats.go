package models

// FailBucket is the guess-distribution key for lost games.
const FailBucket = "fail"

// Stats is the running statistics aggregate. It is updated only when a game
// reaches a terminal state, never on intermediate guesses.
type Stats struct {
	CurrentStreak  int            `json:"currentStreak"`
	MaxStreak      int            `json:"maxStreak"`
	Guesses        map[string]int `json:"guesses"`
	WinPercentage  int            `json:"winPercentage"`
	GamesPlayed    int            `json:"gamesPlayed"`
	GamesWon       int            `json:"gamesWon"`
	AverageGuesses int            `json:"averageGuesses"`
}

// NewStats returns a zeroed aggregate with every distribution bucket present.
func NewStats() *Stats {
	return &Stats{
		Guesses: map[string]int{
			"1": 0, "2": 0, "3": 0, "4": 0, "5": 0, "6": 0,
			FailBucket: 0,
		},
	}
}

// ImportedStats is an externally exported aggregate (e.g. from the official
// Wordle) to seed local statistics from.
type ImportedStats struct {
	GamesPlayed   int            `json:"gamesPlayed"`
	WinPercentage int            `json:"winPercentage"`
	CurrentStreak int            `json:"currentStreak"`
	MaxStreak     int            `json:"maxStreak"`
	Guesses       map[string]int `json:"guesses"`
}
