package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	DBPath        string
	Timezone      string
	LogLevel      string
	WordAPIBase   string
	FetchTimeout  time.Duration
	AppriseAPIURL string
	WordsPath     string
	StaticDir     string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:          envOr("ADDR", ":8080"),
		DBPath:        envOr("DB_PATH", "file:wordull.db"),
		Timezone:      envOr("TZ", "UTC"),
		LogLevel:      envOr("LOG_LEVEL", "INFO"),
		WordAPIBase:   envOr("WORD_API_BASE", "https://www.nytimes.com/svc/wordle/v2"),
		FetchTimeout:  envDurationOr("FETCH_TIMEOUT", 10*time.Second),
		AppriseAPIURL: envOr("APPRISE_API_URL", "http://localhost:8000"),
		WordsPath:     envOr("WORDS_PATH", "web/static/words.json"),
		StaticDir:     envOr("STATIC_DIR", "web/static"),
	}
}

// Validate checks the configuration for values that would prevent startup.
// All problems are reported at once.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	if c.WordAPIBase == "" {
		problems = append(problems, "WORD_API_BASE cannot be empty")
	}
	if c.FetchTimeout <= 0 {
		problems = append(problems, "FETCH_TIMEOUT must be positive")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not a valid level", c.LogLevel))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		// Not fatal: the clock falls back to UTC, but surface it.
		log.Printf("unknown TZ %q, falling back to UTC", c.Timezone)
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %v", key, v, def)
	}
	return def
}
