package words

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/vytor/wordull/internal/logger"
	"github.com/vytor/wordull/internal/models"
)

// List is the set of accepted guess words, uppercase-canonical.
type List struct {
	words map[string]struct{}
}

type wordsFile struct {
	Valid []string `json:"valid"`
}

// Load reads the word-list JSON file. A missing or unreadable file is not
// fatal: validation falls back to a shape check.
func Load(path string) *List {
	log := logger.Default().WithPrefix("words")

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("word list %s not loaded (%v), falling back to shape validation", path, err)
		return &List{}
	}

	var parsed wordsFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		log.Warn("word list %s is malformed (%v), falling back to shape validation", path, err)
		return &List{}
	}

	words := make(map[string]struct{}, len(parsed.Valid))
	for _, w := range parsed.Valid {
		words[strings.ToUpper(w)] = struct{}{}
	}
	log.Info("loaded %d valid words from %s", len(words), path)
	return &List{words: words}
}

// Valid reports whether the word is an accepted guess. With no loaded list,
// any 5-letter alphabetic word passes.
func (l *List) Valid(word string) bool {
	word = strings.ToUpper(word)
	if len(l.words) > 0 {
		_, ok := l.words[word]
		return ok
	}
	if len(word) != models.WordLength {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return false
		}
	}
	return true
}
