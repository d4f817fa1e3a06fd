package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Options selects where and how log records are written
type Options struct {
	Level slog.Level
	// File, when set, receives the log instead of stdout
	File string
	// Both writes to stdout as well as File
	Both bool
	// NoColor disables ANSI colors on the level prefix
	NoColor bool
}

// New builds a logger writing to stdout and/or a file.
// The returned closer releases the file and is safe to call when no file was opened.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	var w io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %q: %w", opts.File, err)
		}
		closer = f
		w = f
		if opts.Both {
			w = io.MultiWriter(os.Stdout, f)
		} else {
			opts.NoColor = true
		}
	}

	return slog.New(NewColorHandler(w, opts.Level, opts.NoColor)), closer, nil
}

// ParseLevel accepts debug, info, warn/warning and error
func ParseLevel(s string) (slog.Level, error) {
	if strings.EqualFold(s, "warning") {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return level, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// levelStyle is the prefix and color printed for a level
type levelStyle struct {
	prefix string
	color  *color.Color
}

// ColorHandler prints records as "[LEVEL] message key=value ..." with a colored prefix
type ColorHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	level  slog.Leveler
	attrs  []slog.Attr
	group  string
	styles map[slog.Level]levelStyle
}

// NewColorHandler creates a handler writing to w
func NewColorHandler(w io.Writer, level slog.Leveler, noColor bool) *ColorHandler {
	styles := map[slog.Level]levelStyle{
		slog.LevelDebug: {"[DEBUG]", color.New(color.FgBlue)},
		slog.LevelInfo:  {"[INFO]", color.New(color.FgCyan)},
		slog.LevelWarn:  {"[WARNING]", color.New(color.FgYellow)},
		slog.LevelError: {"[ERROR]", color.New(color.FgRed)},
	}
	for _, s := range styles {
		if noColor {
			s.color.DisableColor()
		} else {
			s.color.EnableColor()
		}
	}

	return &ColorHandler{
		mu:     &sync.Mutex{},
		w:      w,
		level:  level,
		styles: styles,
	}
}

// Enabled implements slog.Handler
func (h *ColorHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler
func (h *ColorHandler) Handle(_ context.Context, r slog.Record) error {
	style := h.style(r.Level)

	var sb strings.Builder
	sb.WriteString(style.color.Sprint(style.prefix))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&sb, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.group, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

// WithAttrs implements slog.Handler
func (h *ColorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		clone.attrs = append(clone.attrs, a)
	}
	return &clone
}

// WithGroup implements slog.Handler
func (h *ColorHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if clone.group != "" {
		clone.group += "." + name
	} else {
		clone.group = name
	}
	return &clone
}

// style picks the nearest style at or below level
func (h *ColorHandler) style(level slog.Level) levelStyle {
	switch {
	case level >= slog.LevelError:
		return h.styles[slog.LevelError]
	case level >= slog.LevelWarn:
		return h.styles[slog.LevelWarn]
	case level >= slog.LevelInfo:
		return h.styles[slog.LevelInfo]
	default:
		return h.styles[slog.LevelDebug]
	}
}

func writeAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, inner := range a.Value.Group() {
			writeAttr(sb, key, inner)
		}
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	v := a.Value.String()
	if strings.ContainsAny(v, " \t\n\"=") {
		v = fmt.Sprintf("%q", v)
	}
	sb.WriteString(v)
}
