package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// handler is a slog.Handler that always matches the current
// configuration of its Logger.
//
// slog.Handler.WithAttrs and slog.Handler.WithGroup are expected to
// return copies, and those copies must also follow configuration
// changes made after they were handed out. handler pulls instead of
// caching: on every Handle it looks up the currently configured format,
// and rebuilds its inner text or JSON handler only when the format
// changed since the last call.
type handler struct {
	w         io.Writer
	leveler   slog.Leveler
	formatter formatter

	// nested records the WithAttrs/WithGroup calls that produced this
	// handler, in order, so they can be replayed onto a rebuilt inner
	// handler.
	nested []nesting

	mut           sync.RWMutex
	currentFormat Format
	inner         slog.Handler
}

type nesting struct {
	attrs []slog.Attr
	group string
}

type formatter interface {
	Format() Format
}

var _ slog.Handler = (*handler)(nil)

func (h *handler) Enabled(ctx context.Context, l slog.Level) bool {
	// Bypass the cached inner handler and consult the leveler directly.
	return l >= h.leveler.Level()
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	return h.buildHandler().Handle(ctx, r)
}

func (h *handler) buildHandler() slog.Handler {
	// The format may change between this read and the return, in which
	// case one record goes out in the old format and the next call
	// rebuilds.
	expectFormat := h.formatter.Format()

	h.mut.RLock()
	if h.currentFormat == expectFormat && h.inner != nil {
		defer h.mut.RUnlock()
		return h.inner
	}
	h.mut.RUnlock()

	h.mut.Lock()
	defer h.mut.Unlock()

	var newHandler slog.Handler

	handlerOpts := slog.HandlerOptions{
		AddSource: true,
		Level:     h.leveler,

		// Keep attribute representation consistent with go-kit/log
		// output.
		ReplaceAttr: replace,
	}

	switch expectFormat {
	case FormatLogfmt:
		newHandler = slog.NewTextHandler(h.w, &handlerOpts)
	case FormatJSON:
		newHandler = slog.NewJSONHandler(h.w, &handlerOpts)
	default:
		panic(fmt.Sprintf("unknown format %v", expectFormat))
	}

	// Replay groups and attrs in the order they were applied.
	for _, n := range h.nested {
		if n.group != "" {
			newHandler = newHandler.WithGroup(n.group)
		} else {
			newHandler = newHandler.WithAttrs(n.attrs)
		}
	}

	h.currentFormat = expectFormat
	h.inner = newHandler
	return newHandler
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newNest := make([]nesting, 0, len(h.nested)+1)
	newNest = append(newNest, h.nested...)
	newNest = append(newNest, nesting{attrs: attrs})

	return &handler{
		w:         h.w,
		leveler:   h.leveler,
		formatter: h.formatter,
		nested:    newNest,
	}
}

func (h *handler) WithGroup(name string) slog.Handler {
	newNest := make([]nesting, 0, len(h.nested)+1)
	newNest = append(newNest, h.nested...)
	newNest = append(newNest, nesting{group: name})

	return &handler{
		w:         h.w,
		leveler:   h.leveler,
		formatter: h.formatter,
		nested:    newNest,
	}
}

var unsafeKeyCharReplacer = strings.NewReplacer(
	" ", "_",
	"=", "_",
	"\"", "_",
	"\t", "_",
	"\n", "_",
	"\v", "_",
	"\f", "_",
	"\r", "_",
)

func replace(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}

	switch a.Key {
	case slog.TimeKey:
		return slog.Attr{
			Key:   "ts",
			Value: slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano)),
		}

	case slog.SourceKey:
		source, ok := a.Value.Any().(*slog.Source)
		if !ok {
			// Not the handler-provided source attribute, likely a go-kit
			// caller that happens to use the same key. Leave it alone.
			return a
		}

		if source.File == "" && source.Line == 0 {
			// Drop attributes with no source information.
			return slog.Attr{}
		}

		return a

	case slog.MessageKey:
		if a.Value.String() == "" {
			// Drop empty message keys.
			return slog.Attr{}
		}

	case slog.LevelKey:
		level := a.Value.Any().(slog.Level)

		// Override the value names to match go-kit/log, which would
		// otherwise print as all-caps DEBUG/INFO/WARN/ERROR.
		switch level {
		case slog.LevelDebug:
			return slog.Attr{Key: "level", Value: slog.StringValue("debug")}
		case slog.LevelInfo:
			return slog.Attr{Key: "level", Value: slog.StringValue("info")}
		case slog.LevelWarn:
			return slog.Attr{Key: "level", Value: slog.StringValue("warn")}
		case slog.LevelError:
			return slog.Attr{Key: "level", Value: slog.StringValue("error")}
		}
	}

	return slog.Attr{
		Key:   unsafeKeyCharReplacer.Replace(strings.TrimSpace(a.Key)),
		Value: a.Value,
	}
}
