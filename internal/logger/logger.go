package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options selects the level, format and destination of diagnostics.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger writes prompt diagnostics. Stdout carries the prompt line, so
// entries go to stderr unless Options.Writer says otherwise.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger. An empty level means warn; HumanReadable switches
// from JSON lines to the console format.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.WarnLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.TimeOnly
		output = console
	}

	base := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: base}, nil
}

// Nop discards every entry.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a child logger tagging each entry with fields, such as the module name.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}

	return &Logger{base: builder.Logger()}
}

// Elapsed records how long a module or render took, at debug level.
func (l *Logger) Elapsed(msg string, d time.Duration) {
	if l == nil {
		return
	}
	l.base.Debug().Dur("elapsed", d).Msg(msg)
}

// Debug logs msg at debug level.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Info logs msg at info level.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Warn logs msg at warn level, the default threshold.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error logs msg with err attached.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
