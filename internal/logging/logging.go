package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dotse/slug"
	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
	slogmulti "github.com/samber/slog-multi"
)

var ErrSentryInit = errors.New("failed to initialize sentry client")

const sentryFlushTimeout = 2 * time.Second

// Config selects where and how logs are written.
type Config struct {
	// Level is one of debug, info, warn or error.
	Level string
	// Format is json or text.
	Format string
	// SentryDSN enables reporting errors to sentry when set.
	SentryDSN string
	Version   string
}

// ParseLevel maps a level name to the slog level. Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewHandler creates the slog handler writing to w in the configured format.
func NewHandler(cfg Config, w io.Writer) slog.Handler {
	opts := slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	if strings.EqualFold(cfg.Format, "text") {
		return slug.NewHandler(slug.HandlerOptions{HandlerOptions: opts}, w)
	}

	return slog.NewJSONHandler(w, &opts)
}

// Setup installs the default logger. Logs go to w and, when a sentry DSN is
// configured, errors are also reported to sentry.
//
// Returns a cleanup function which should be called on program shutdown.
func Setup(ctx context.Context, cfg Config, w io.Writer) (func(), error) {
	closer := func() {}
	handlers := []slog.Handler{NewHandler(cfg, w)}

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:     cfg.SentryDSN,
			Release: cfg.Version,
		}); err != nil {
			return closer, errors.Join(err, ErrSentryInit)
		}

		handlers = append(handlers, sentryslog.Option{
			AddSource: true,
		}.NewSentryHandler(ctx))

		closer = func() {
			if !sentry.Flush(sentryFlushTimeout) {
				fmt.Fprintln(w, "timed out flushing sentry events")
			}
		}
	}

	logger := slog.New(slogmulti.Fanout(handlers...))
	if cfg.Version != "" {
		logger = logger.With("release", cfg.Version)
	}

	slog.SetDefault(logger)

	return closer, nil
}
