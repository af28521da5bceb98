package models

// Game status values. WIN and FAIL are terminal: once reached, no further
// guesses are accepted for that day's record.
const (
	StatusInProgress = "IN_PROGRESS"
	StatusWin        = "WIN"
	StatusFail       = "FAIL"
)

const (
	// MaxGuesses is the number of board rows.
	MaxGuesses = 6
	// WordLength is the solution and guess length.
	WordLength = 5
)

// Per-letter verdict values.
const (
	VerdictCorrect = "correct"
	VerdictPresent = "present"
	VerdictAbsent  = "absent"
)

// GameState is the single live game record for one calendar day. At most one
// instance is persisted at a time; a new day's record supersedes the old one.
type GameState struct {
	BoardState      []string   `json:"boardState"`
	Evaluations     [][]string `json:"evaluations"`
	RowIndex        int        `json:"rowIndex"`
	Solution        string     `json:"solution,omitempty"`
	GameStatus      string     `json:"gameStatus"`
	LastPlayedTs    *int64     `json:"lastPlayedTs"`
	LastCompletedTs *int64     `json:"lastCompletedTs"`
	HardMode        bool       `json:"hardMode"`
	Date            string     `json:"date"`
}

// NewGameState creates a fresh IN_PROGRESS record for the given date.
// lastCompletedTs is carried forward from the superseded record so streak
// math still sees the previous completion.
func NewGameState(date, solution string, hardMode bool, lastCompletedTs *int64) *GameState {
	return &GameState{
		BoardState:      make([]string, MaxGuesses),
		Evaluations:     make([][]string, MaxGuesses),
		RowIndex:        0,
		Solution:        solution,
		GameStatus:      StatusInProgress,
		LastCompletedTs: lastCompletedTs,
		HardMode:        hardMode,
		Date:            date,
	}
}

// Terminal reports whether the game has reached WIN or FAIL.
func (g *GameState) Terminal() bool {
	return g.GameStatus == StatusWin || g.GameStatus == StatusFail
}

// RemainingGuesses returns how many rows are still open.
func (g *GameState) RemainingGuesses() int {
	return MaxGuesses - g.RowIndex
}

// Redacted returns a copy with the solution withheld. The answer is never
// exposed while the game is still in progress.
func (g *GameState) Redacted() *GameState {
	out := *g
	out.Solution = ""
	return &out
}

// GuessResult is the outcome of one submitted guess. Solution is populated
// only when this guess moved the game into a terminal state.
type GuessResult struct {
	Evaluation []string `json:"evaluation"`
	GameStatus string   `json:"gameStatus"`
	RowIndex   int      `json:"rowIndex"`
	Solution   string   `json:"solution,omitempty"`
}
