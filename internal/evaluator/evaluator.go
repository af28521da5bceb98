package evaluator

import (
	"strings"

	"github.com/vytor/wordull/internal/errors"
	"github.com/vytor/wordull/internal/models"
)

// Evaluate scores a guess against the solution, returning one verdict per
// letter position. Standard Wordle duplicate-letter semantics: a solution
// letter can back at most one correct or present verdict, and exact matches
// claim their letter before any present match does.
func Evaluate(guess, solution string) ([]string, error) {
	guess = strings.ToUpper(guess)
	solution = strings.ToUpper(solution)

	if len(guess) != models.WordLength {
		return nil, errors.NewValidationError("word", "must be exactly 5 letters")
	}
	if len(solution) != models.WordLength {
		return nil, errors.NewValidationError("solution", "must be exactly 5 letters")
	}

	verdicts := make([]string, models.WordLength)
	for i := range verdicts {
		verdicts[i] = models.VerdictAbsent
	}

	guessLetters := []byte(guess)
	solutionLetters := []byte(solution)

	// Pass 1: exact matches consume both letters.
	for i := 0; i < models.WordLength; i++ {
		if guessLetters[i] == solutionLetters[i] {
			verdicts[i] = models.VerdictCorrect
			guessLetters[i] = 0
			solutionLetters[i] = 0
		}
	}

	// Pass 2: left to right, each remaining guess letter consumes one
	// unclaimed occurrence in the solution if any is left.
	for i := 0; i < models.WordLength; i++ {
		if guessLetters[i] == 0 {
			continue
		}
		for j := 0; j < models.WordLength; j++ {
			if solutionLetters[j] == guessLetters[i] {
				verdicts[i] = models.VerdictPresent
				solutionLetters[j] = 0
				break
			}
		}
	}

	return verdicts, nil
}

// IsWin reports whether every verdict in the row is correct.
func IsWin(verdicts []string) bool {
	if len(verdicts) != models.WordLength {
		return false
	}
	for _, v := range verdicts {
		if v != models.VerdictCorrect {
			return false
		}
	}
	return true
}
