package slogadapter

import (
	"log/slog"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/slogbridge"
)

// NewLogger builds a slog.Logger that drains into a fresh Bridge over
// sink. One call, explicit, no envs.
func NewLogger(sink zerolog.Logger, opts *Options) *slog.Logger {
	return slog.New(New(slogbridge.New(sink), opts))
}
