package commands

import (
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// slogAdapter wraps *slog.Logger to satisfy the emsearch.Logger interface.
type slogAdapter struct {
	l *slog.Logger
}

// NewLogger returns a text logger writing to w. Debug records are kept only
// when verbose is set.
func NewLogger(w io.Writer, verbose bool) emsearch.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})

	return &slogAdapter{l: slog.New(handler)}
}

func (a *slogAdapter) Debug(msg string, fields map[string]interface{}) { a.l.Debug(msg, attrs(fields)...) }
func (a *slogAdapter) Info(msg string, fields map[string]interface{})  { a.l.Info(msg, attrs(fields)...) }
func (a *slogAdapter) Warn(msg string, fields map[string]interface{})  { a.l.Warn(msg, attrs(fields)...) }
func (a *slogAdapter) Error(msg string, fields map[string]interface{}) { a.l.Error(msg, attrs(fields)...) }

// attrs turns a field map into slog arguments in key order.
func attrs(fields map[string]interface{}) []any {
	args := make([]any, 0, len(fields))
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		args = append(args, slog.Any(key, fields[key]))
	}

	return args
}
