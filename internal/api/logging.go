package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// requestLogFormatter writes one zerolog event per request.
type requestLogFormatter struct {
	log zerolog.Logger
}

// NewRequestLogger returns chi middleware that logs requests through log.
func NewRequestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return middleware.RequestLogger(&requestLogFormatter{log: log})
}

func (f *requestLogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &requestLogEntry{
		log: f.log.With().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Logger(),
	}
}

type requestLogEntry struct {
	log zerolog.Logger
}

func (e *requestLogEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	event := e.log.Info()
	if status >= http.StatusInternalServerError {
		event = e.log.Error()
	} else if status >= http.StatusBadRequest {
		event = e.log.Warn()
	}
	event.
		Int("status", status).
		Int("bytes", bytes).
		Dur("elapsed", elapsed).
		Msg("request")
}

func (e *requestLogEntry) Panic(v interface{}, stack []byte) {
	e.log.Error().
		Str("panic", fmt.Sprintf("%+v", v)).
		Bytes("stack", stack).
		Msg("request panicked")
}
