package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	warningGlyph = "!"
	errorGlyph   = "✗"
)

// PrettyHandler is a slog.Handler producing human-readable, colored output.
type PrettyHandler struct {
	w     io.Writer
	level slog.Leveler
	attrs []slog.Attr
	group string

	info  lipgloss.Style
	warn  lipgloss.Style
	error lipgloss.Style
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
// Colors are dropped automatically when w is not a terminal.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level.Level()
	}

	levelVar := &slog.LevelVar{}
	levelVar.Set(level)

	r := lipgloss.NewRenderer(w)
	return &PrettyHandler{
		w:     w,
		level: levelVar,
		info:  r.NewStyle().Foreground(lipgloss.Color("#94A3B8")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("#EAB308")),
		error: r.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var msg string
	var style lipgloss.Style

	switch {
	case r.Level >= slog.LevelError:
		msg = errorGlyph + " " + r.Message
		style = h.error
	case r.Level >= slog.LevelWarn:
		msg = warningGlyph + " " + r.Message
		style = h.warn
	default:
		msg = r.Message
		style = h.info
	}

	attrParts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		attrParts = append(attrParts, formatAttr(h.group, attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		attrParts = append(attrParts, formatAttr(h.group, attr))
		return true
	})
	if len(attrParts) > 0 {
		msg += " " + strings.Join(attrParts, " ")
	}

	_, err := io.WriteString(h.w, style.Render(msg)+"\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &c
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.group = name
	return &c
}

// formatAttr formats a single attribute, prefixing the key with the group if set.
func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}
