package internal

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the widget and its companion
// commands. Defaults are overridden by .env, then by the environment;
// cobra flags override both.
type Config struct {
	BaseURL        string        `env:"JOBCHAT_BASE_URL"`    // Backend base URL (no trailing slash)
	RequestTimeout time.Duration `env:"JOBCHAT_TIMEOUT"`     // 0 = no timeout, wait as long as the assistant takes
	SessionDBPath  string        `env:"JOBCHAT_SESSION_DB"`  // Session database location
	WelcomeText    string        `env:"JOBCHAT_WELCOME"`     // Welcome entry shown while the transcript is empty
	MaxInputHeight int           `env:"JOBCHAT_INPUT_LINES"` // Cap on the input area height, in lines
}

// DefaultWelcome is the ephemeral guidance entry shown when the
// transcript is empty. It is never persisted as a turn.
const DefaultWelcome = `Hi! I can answer questions about the tennis job listings on this site.

Try asking:
  • What jobs are available in Florida?
  • Which roles include housing or relocation help?
  • What's the highest scored listing right now?`

// Defaults returns the configuration preset used before any overrides
func Defaults() *Config {
	return &Config{
		BaseURL:        "http://localhost:8000",
		RequestTimeout: 0,
		SessionDBPath:  defaultSessionDBPath(),
		WelcomeText:    DefaultWelcome,
		MaxInputHeight: 5,
	}
}

// LoadConfig loads the configuration: defaults, then .env, then
// environment variables. Missing .env files are fine.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := Defaults()
	if err := env.Parse(cfg); err != nil {
		LogWarn("failed to parse environment config: %v", err)
	}
	return cfg
}

// defaultSessionDBPath places the session database under the user's
// home directory, falling back to the system temp directory.
func defaultSessionDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "jobchat", "session.db")
	}
	return filepath.Join(home, ".jobchat", "session.db")
}
