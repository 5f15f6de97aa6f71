package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// HomeAlias replaces the home directory in log output.
const HomeAlias = "~"

// PathHandler wraps an slog.Handler and rewrites every occurrence of the
// home directory in string and error attributes to HomeAlias.
type PathHandler struct {
	// handler is the underlying slog handler that receives rewritten records.
	handler slog.Handler

	// home is the directory being replaced. Empty disables rewriting.
	home string
}

// NewPathHandler creates a PathHandler wrapping handler that replaces home.
// If handler is nil, slog.Default().Handler() is used. If home is empty,
// the current user's home directory is used when it can be determined.
func NewPathHandler(handler slog.Handler, home string) *PathHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if home == "" {
		home, _ = os.UserHomeDir() //nolint:errcheck // No home directory means nothing to rewrite
	}
	home = strings.TrimSuffix(home, string(filepath.Separator))
	// Rewriting "/" would mangle every absolute path.
	if home == "" || home == string(filepath.Separator) {
		home = ""
	}
	return &PathHandler{handler: handler, home: home}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PathHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle rewrites the record's attributes and passes it on.
func (h *PathHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.home == "" {
		return h.handler.Handle(ctx, r)
	}

	rewritten := slog.NewRecord(r.Time, r.Level, h.shorten(r.Message), r.PC)
	r.Attrs(func(a slog.Attr) bool {
		rewritten.AddAttrs(h.rewriteAttr(a))
		return true
	})
	return h.handler.Handle(ctx, rewritten)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *PathHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rewritten := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		rewritten[i] = h.rewriteAttr(a)
	}
	return &PathHandler{handler: h.handler.WithAttrs(rewritten), home: h.home}
}

// WithGroup returns a new handler with the given group name.
func (h *PathHandler) WithGroup(name string) slog.Handler {
	return &PathHandler{handler: h.handler.WithGroup(name), home: h.home}
}

// rewriteAttr rewrites a single attribute, recursively handling groups.
func (h *PathHandler) rewriteAttr(a slog.Attr) slog.Attr {
	if h.home == "" {
		return a
	}

	switch a.Value.Kind() {
	case slog.KindGroup:
		attrs := a.Value.Group()
		rewritten := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			rewritten[i] = h.rewriteAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(rewritten...)}
	case slog.KindString:
		return slog.String(a.Key, h.shorten(a.Value.String()))
	case slog.KindAny:
		if err, ok := a.Value.Any().(error); ok && err != nil {
			return slog.String(a.Key, h.shorten(err.Error()))
		}
	}
	return a
}

// shorten replaces the home directory in s. Only whole path elements
// match, so "/home/al" does not rewrite "/home/alice".
func (h *PathHandler) shorten(s string) string {
	if !strings.Contains(s, h.home) {
		return s
	}

	var sb strings.Builder
	for {
		i := strings.Index(s, h.home)
		if i < 0 {
			sb.WriteString(s)
			return sb.String()
		}
		end := i + len(h.home)
		sb.WriteString(s[:i])
		if end == len(s) || s[end] == filepath.Separator || !isPathByte(s[end]) {
			sb.WriteString(HomeAlias)
		} else {
			sb.WriteString(h.home)
		}
		s = s[end:]
	}
}

// isPathByte reports whether b can continue a path element.
func isPathByte(b byte) bool {
	return b == '.' || b == '-' || b == '_' ||
		('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}

// NewLogger creates a text logger that shortens home-directory paths.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewPathHandler(slog.NewTextHandler(w, handlerOptions(verbose)), ""))
}

// handlerOptions returns the level settings for verbose or quiet mode.
func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
