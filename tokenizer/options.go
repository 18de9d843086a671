package tokenizer

import (
	"log/slog"
	"os"
)

// Option configures a Tokenizer at construction.
type Option func(*Tokenizer)

// WithDefinitions supplies the set of normalized definition identifiers
// collected by the pre-pass. Without it, no reference link matches.
func WithDefinitions(defs DefinitionSet) Option {
	return func(t *Tokenizer) {
		t.Definitions = defs
	}
}

// WithLogger installs a debug logger that traces state dispatch,
// enter/exit, attempt restores, and resolver registration. Nil disables
// tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tokenizer) {
		t.logger = logger
	}
}

// defaultLogger returns a stderr debug logger when MDTOK_DEBUG is set
// in the environment, nil otherwise. The handler drops timestamps and
// levels so traces line up when read next to the input.
func defaultLogger() *slog.Logger {
	if os.Getenv("MDTOK_DEBUG") == "" {
		return nil
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
