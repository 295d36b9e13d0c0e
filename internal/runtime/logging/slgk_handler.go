package logging

import (
	"context"
	"log/slog"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// NewSlogGoKitHandler returns a slog.Handler which forwards records to
// a go-kit logger. The handler lets the go-kit logger decide whether a
// level is enabled when it implements EnabledAware.
func NewSlogGoKitHandler(logger log.Logger) slog.Handler {
	return &slogGoKitHandler{logger: logger}
}

type slogGoKitHandler struct {
	logger       log.Logger
	group        string
	preformatted []any
}

var _ slog.Handler = (*slogGoKitHandler)(nil)

func (h *slogGoKitHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	if e, ok := h.logger.(EnabledAware); ok {
		return e.Enabled(ctx, lvl)
	}
	return true
}

func (h *slogGoKitHandler) Handle(ctx context.Context, record slog.Record) error {
	var lv level.Value
	switch {
	case record.Level < slog.LevelInfo:
		lv = level.DebugValue()
	case record.Level < slog.LevelWarn:
		lv = level.InfoValue()
	case record.Level < slog.LevelError:
		lv = level.WarnValue()
	default:
		lv = level.ErrorValue()
	}

	// The go-kit logger stamps its own timestamp, so the record time is
	// not forwarded.
	kvps := make([]any, 0, 2*record.NumAttrs()+len(h.preformatted)+4)
	kvps = append(kvps, level.Key(), lv, "msg", record.Message)
	kvps = append(kvps, h.preformatted...)
	record.Attrs(func(a slog.Attr) bool {
		kvps = appendAttr(kvps, a, h.group)
		return true
	})

	return h.logger.Log(kvps...)
}

func (h *slogGoKitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	preformatted := append([]any{}, h.preformatted...)
	for _, a := range attrs {
		preformatted = appendAttr(preformatted, a, h.group)
	}

	return &slogGoKitHandler{
		logger:       h.logger,
		group:        h.group,
		preformatted: preformatted,
	}
}

func (h *slogGoKitHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	group := name
	if h.group != "" {
		group = h.group + "." + name
	}

	return &slogGoKitHandler{
		logger:       h.logger,
		group:        group,
		preformatted: h.preformatted,
	}
}

// appendAttr flattens a into key-value pairs, qualifying keys with the
// given group prefix and splicing nested groups the way logfmt output
// expects.
func appendAttr(kvps []any, a slog.Attr, group string) []any {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			if prefix != "" {
				prefix += "." + a.Key
			} else {
				prefix = a.Key
			}
		}
		for _, ga := range a.Value.Group() {
			kvps = appendAttr(kvps, ga, prefix)
		}
		return kvps
	}

	if a.Key == "" {
		return kvps
	}

	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	return append(kvps, key, a.Value.Any())
}
