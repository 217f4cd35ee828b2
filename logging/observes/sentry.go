package observes

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/ncobase/monoapi/config"
)

// NewSentry initializes the sentry client. It returns false when no DSN is
// configured and sentry stays disabled.
func NewSentry(cfg *config.Sentry, name string) (bool, error) {
	if cfg == nil || cfg.Dsn == "" {
		return false, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Dsn,
		AttachStacktrace: true,
		SampleRate:       cfg.SampleRate,
		ServerName:       name,
		Release:          cfg.Release,
		Environment:      cfg.Environment,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// FlushSentry waits for buffered events to be sent.
func FlushSentry() {
	sentry.Flush(2 * time.Second)
}
