package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/esb/internal/ui/output"
	"go.trai.ch/esb/internal/ui/style"
)

// PrettyHandler renders records as one colored line: an icon for the level,
// the message, then key=value pairs with group-qualified keys.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler

	// prefix is the open group path, e.g. "worker.request.".
	prefix string
	// fields holds the attributes added through WithAttrs, already rendered.
	fields string
}

// NewPrettyHandler creates a PrettyHandler writing to w. A nil writer means stderr.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{out: output.New(w), level: level}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	var line strings.Builder
	if icon != "" {
		line.WriteString(icon + " ")
	}
	line.WriteString(r.Message)
	line.WriteString(h.fields)
	r.Attrs(func(attr slog.Attr) bool {
		writeAttr(&line, h.prefix, attr)
		return true
	})

	styled := h.out.String(line.String()).Foreground(h.out.Color(string(color)))
	_, err := io.WriteString(h.out, styled.String()+"\n")
	return err
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var fields strings.Builder
	fields.WriteString(h.fields)
	for _, attr := range attrs {
		writeAttr(&fields, h.prefix, attr)
	}

	next := *h
	next.fields = fields.String()
	return &next
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func levelStyle(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, style.Red
	case level >= slog.LevelWarn:
		return style.Warning, style.Yellow
	case level >= slog.LevelInfo:
		return "", style.Slate
	default:
		return style.Tilde, style.Teal
	}
}

// writeAttr appends " key=value", flattening group values into dotted keys.
func writeAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			writeAttr(b, prefix, member)
		}
		return
	}

	b.WriteString(" " + prefix + attr.Key + "=" + attr.Value.String())
}
