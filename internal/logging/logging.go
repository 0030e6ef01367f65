// Package logging configures the global zerolog logger. The TUI owns the
// terminal, so logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Level picks the log level: -v gives info, -vv debug; without flags the
// configured level name applies, defaulting to warn.
func Level(verbosity int, configured string) zerolog.Level {
	switch {
	case verbosity >= 2:
		return zerolog.DebugLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	}
	if lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(configured))); err == nil && lvl != zerolog.NoLevel {
		return lvl
	}
	return zerolog.WarnLevel
}

// Setup points the global logger at path. The returned closer must be
// closed on exit; with an empty path logs are discarded.
func Setup(path string, level zerolog.Level) (io.Closer, error) {
	if path == "" {
		log.Logger = zerolog.New(io.Discard)
		return io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).Level(level).With().Timestamp().Logger()
	return f, nil
}
