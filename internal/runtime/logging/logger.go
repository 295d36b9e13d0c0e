// Package logging provides the logging subsystem for fieldscan. The
// Logger it exposes is usable both as a go-kit logger and, through
// Handler, as a log/slog logger, and can be reconfigured while the
// process runs.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// EnabledAware is implemented by loggers which can report whether a
// level is enabled.
type EnabledAware interface {
	Enabled(context.Context, slog.Level) bool
}

// Logger writes logfmt or JSON log lines. It supports being dynamically
// updated at runtime and implements the go-kit Logger interface.
type Logger struct {
	updateMut sync.Mutex

	level   *slog.LevelVar
	format  *formatVar
	handler *handler
}

var _ EnabledAware = (*Logger)(nil)

// New creates a Logger writing to w with the given options.
func New(w io.Writer, o Options) (*Logger, error) {
	var (
		leveler slog.LevelVar
		format  formatVar
	)
	l := &Logger{
		level:  &leveler,
		format: &format,
		handler: &handler{
			w:         w,
			leveler:   &leveler,
			formatter: &format,
		},
	}
	if err := l.Update(o); err != nil {
		return nil, err
	}
	return l, nil
}

// NewNop returns a logger that discards everything written to it.
func NewNop() *Logger {
	l, _ := New(io.Discard, DefaultOptions)
	return l
}

// Update re-configures the options used for the logger. Handlers
// returned from Handler before the update pick up the new
// configuration.
func (l *Logger) Update(o Options) error {
	l.updateMut.Lock()
	defer l.updateMut.Unlock()

	if o.Level == "" {
		o.Level = LevelDefault
	}
	switch o.Level {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
	default:
		return fmt.Errorf("unrecognized log level %q", o.Level)
	}

	switch o.Format {
	case "":
		o.Format = FormatDefault
	case FormatLogfmt, FormatJSON:
	default:
		return fmt.Errorf("unrecognized log format %q", o.Format)
	}

	l.level.Set(slogLevel(o.Level).Level())
	l.format.Set(o.Format)
	return nil
}

// Handler returns a [slog.Handler]. The returned Handler remains valid
// if l is updated.
func (l *Logger) Handler() slog.Handler { return l.handler }

// Enabled implements EnabledAware.
func (l *Logger) Enabled(ctx context.Context, level slog.Level) bool {
	return l.handler.Enabled(ctx, level)
}

// Log implements the go-kit Logger interface. The "level" and "msg"
// keys are lifted out of kvps into the emitted record; everything else
// is carried as attributes in order.
func (l *Logger) Log(kvps ...any) error {
	if len(kvps)%2 != 0 {
		kvps = append(kvps, nil)
	}

	var (
		lvl   = slog.LevelInfo
		msg   string
		attrs []slog.Attr
	)
	for i := 0; i < len(kvps); i += 2 {
		key, ok := kvps[i].(string)
		if !ok {
			key = fmt.Sprint(kvps[i])
		}

		switch key {
		case "level":
			lvl = parseLevel(kvps[i+1])
		case "msg":
			msg = fmt.Sprint(kvps[i+1])
		default:
			attrs = append(attrs, slog.Any(key, kvps[i+1]))
		}
	}

	ctx := context.Background()
	if !l.handler.Enabled(ctx, lvl) {
		return nil
	}

	r := slog.NewRecord(time.Now(), lvl, msg, 0)
	r.AddAttrs(attrs...)
	return l.handler.Handle(ctx, r)
}

// parseLevel maps a go-kit level value to its slog equivalent,
// defaulting to info for values it does not recognize.
func parseLevel(v any) slog.Level {
	switch fmt.Sprint(v) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

type formatVar struct {
	mut sync.RWMutex
	f   Format
}

func (f *formatVar) Format() Format {
	f.mut.RLock()
	defer f.mut.RUnlock()
	return f.f
}

func (f *formatVar) Set(format Format) {
	f.mut.Lock()
	defer f.mut.Unlock()
	f.f = format
}
