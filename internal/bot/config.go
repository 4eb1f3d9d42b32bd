package bot

import (
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the bot configuration loaded from environment variables.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,notEmpty"`

	// Prefix starts a text command. Empty, the default, disables text
	// commands. Setting it requests the privileged message content intent,
	// which must be enabled for the application in the developer portal.
	Prefix string `env:"COMMAND_PREFIX"`

	// HandlerTimeout bounds each command handler. Zero means no deadline.
	HandlerTimeout time.Duration `env:"HANDLER_TIMEOUT" envDefault:"0s"`

	// MetricsAddr is the listen address for /metrics and /health.
	// Empty disables the ops server.
	MetricsAddr string `env:"METRICS_ADDR"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	SentryDSN string `env:"SENTRY_DSN"`
}

// LoadConfig loads configuration from environment variables, after reading
// any .env files given (".env" when none are).
// Returns an error if required fields are missing.
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		slog.Info("no .env file found, using process environment")
	}

	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
