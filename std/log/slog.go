package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
)

// Logger is a leveled logger on top of log/slog.
// Every message may carry a tag identifying the component that emitted it.
type Logger struct {
	slog  *slog.Logger
	level Level
}

// Tag is implemented by components that name themselves in log lines.
type Tag interface {
	String() string
}

func newLogger(h slog.Handler) *Logger {
	return &Logger{slog: slog.New(h), level: LevelInfo}
}

func handlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level:       slog.Level(LevelTrace),
		ReplaceAttr: replaceAttr,
	}
}

func NewText(w io.Writer) *Logger {
	return newLogger(slog.NewTextHandler(w, handlerOptions()))
}

func NewJson(w io.Writer) *Logger {
	return newLogger(slog.NewJSONHandler(w, handlerOptions()))
}

// SetLevel sets the logging level and returns the previous level.
func (l *Logger) SetLevel(level Level) (prev Level) {
	prev = l.level
	l.level = level
	return
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return l.level
}

// Enabled reports whether messages at the given level are written.
func (l *Logger) Enabled(level Level) bool {
	return l.level <= level
}

func (l *Logger) log(t any, msg string, level Level, v ...any) {
	if !l.Enabled(level) {
		return
	}

	// caller of the exported method, only worth the cost at debug
	if l.level <= LevelDebug {
		if pc, _, _, ok := runtime.Caller(2); ok {
			if f := runtime.FuncForPC(pc); f != nil {
				v = append(v, slog.SourceKey, f.Name())
			}
		}
	}

	if t != nil {
		if tag, ok := t.(Tag); ok {
			v = append([]any{"tag", tag.String()}, v...)
		} else {
			v = append([]any{"tag", t}, v...)
		}
	}

	l.slog.Log(context.Background(), slog.Level(level), msg, v...)
}

func (l *Logger) Trace(t any, msg string, v ...any) {
	l.log(t, msg, LevelTrace, v...)
}

func (l *Logger) Debug(t any, msg string, v ...any) {
	l.log(t, msg, LevelDebug, v...)
}

func (l *Logger) Info(t any, msg string, v ...any) {
	l.log(t, msg, LevelInfo, v...)
}

func (l *Logger) Warn(t any, msg string, v ...any) {
	l.log(t, msg, LevelWarn, v...)
}

func (l *Logger) Error(t any, msg string, v ...any) {
	l.log(t, msg, LevelError, v...)
}

// Fatal logs the message and exits with status 1.
func (l *Logger) Fatal(t any, msg string, v ...any) {
	l.log(t, msg, LevelFatal, v...)
	os.Exit(1)
}

func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if level, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(Level(level).String())
		}
	}
	return a
}
