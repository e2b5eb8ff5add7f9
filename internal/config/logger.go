package config

import (
	"context"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Init configures the process logger. Production gets JSON output for log
// aggregation, everything else stays human-readable.
func Init(cfg Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Environment == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func Logger() *logrus.Logger {
	return log
}

// WithContext returns a request-scoped log entry carrying the chi request id
// when one is present.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(log)
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		entry = entry.WithField("request_id", reqID)
	}
	return entry
}
