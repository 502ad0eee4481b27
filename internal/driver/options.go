package driver

import (
	"log/slog"

	"layec/internal/lexer"
	"layec/internal/observ"
)

// Options configures Tokenize and TokenizeDir.
type Options struct {
	Stepping lexer.Stepping
	// Jobs caps parallel workers in TokenizeDir; <=0 means GOMAXPROCS.
	Jobs int
	// Cache may be nil: every file is then lexed.
	Cache *TokenCache
	// Sink receives per-file progress events; nil drops them.
	Sink   ProgressSink
	Logger *slog.Logger
	Timer  *observ.Timer
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

func (o Options) emit(ev Event) {
	if o.Sink != nil {
		o.Sink.OnEvent(ev)
	}
}
