package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// GlobalLogger describes a Logger that is disabled by default. Each package should
// create its own sub-logger so that log output is grep-able by origin.
var GlobalLogger *Logger

// Logger describes a logging object that writes structured output to any number of
// arbitrary channels and unstructured output to console.
type Logger struct {
	// level describes the log level
	level zerolog.Level

	// multiLogger describes a logger used to output structured logs to any
	// arbitrary channel(s).
	multiLogger zerolog.Logger

	// consoleLogger describes a logger used to output unstructured output to
	// console.
	consoleLogger zerolog.Logger

	// writers describes the list of io.Writer objects where structured log output
	// will go.
	writers []io.Writer
}

// LogFormat describes what format to log in.
type LogFormat string

const (
	// STRUCTURED describes that logging should be done in structured JSON format.
	STRUCTURED LogFormat = "structured"
	// UNSTRUCTURED describes that logging should be done in an unstructured format.
	UNSTRUCTURED LogFormat = "unstructured"
)

// NewLogger will create a new Logger object with a specific log level. The Logger
// can output to console, if enabled, and to any number of arbitrary io.Writer
// channels.
func NewLogger(level zerolog.Level, consoleEnabled bool, writers ...io.Writer) *Logger {
	// The two base loggers start disabled so that we do not get nil dereferences if
	// neither output is configured.
	baseMultiLogger := zerolog.New(os.Stdout).Level(zerolog.Disabled)
	baseConsoleLogger := zerolog.New(os.Stdout).Level(zerolog.Disabled)

	if len(writers) > 0 {
		baseMultiLogger = zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level).With().Timestamp().Logger()
	}
	if consoleEnabled {
		consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout}
		baseConsoleLogger = zerolog.New(consoleWriter).Level(level)
	}

	return &Logger{
		level:         level,
		multiLogger:   baseMultiLogger,
		consoleLogger: baseConsoleLogger,
		writers:       writers,
	}
}

// NewSubLogger will create a new Logger with unique context in the form of a
// key-value pair. The expected use is for each package to have its own logger.
func (l *Logger) NewSubLogger(key string, value string) *Logger {
	subMultiLogger := l.multiLogger.With().Str(key, value).Logger()
	subConsoleLogger := l.consoleLogger.With().Str(key, value).Logger()
	return &Logger{
		level:         l.level,
		multiLogger:   subMultiLogger,
		consoleLogger: subConsoleLogger,
		writers:       l.writers,
	}
}

// AddWriter will add a writer to the list of channels where structured log output
// is sent.
func (l *Logger) AddWriter(writer io.Writer, format LogFormat) {
	for _, w := range l.writers {
		if writer == w {
			return
		}
	}

	// Unstructured output wraps the writer into a console writer with no ANSI
	// coloring.
	if format == UNSTRUCTURED {
		writer = zerolog.ConsoleWriter{Out: writer, NoColor: true}
	}

	l.writers = append(l.writers, writer)
	l.multiLogger = zerolog.New(zerolog.MultiLevelWriter(l.writers...)).Level(l.level).With().Timestamp().Logger()
}

// Level will get the log level of the Logger.
func (l *Logger) Level() zerolog.Level {
	return l.level
}

// SetLevel will update the log level of the Logger.
func (l *Logger) SetLevel(level zerolog.Level) {
	l.level = level
	l.multiLogger = l.multiLogger.Level(level)
	l.consoleLogger = l.consoleLogger.Level(level)
}

// Trace is a wrapper function that will log a trace event.
func (l *Logger) Trace(args ...any) {
	msg, err := buildMsg(args...)
	l.log(l.consoleLogger.Trace(), l.multiLogger.Trace(), msg, err)
}

// Debug is a wrapper function that will log a debug event.
func (l *Logger) Debug(args ...any) {
	msg, err := buildMsg(args...)
	l.log(l.consoleLogger.Debug(), l.multiLogger.Debug(), msg, err)
}

// Info is a wrapper function that will log an info event.
func (l *Logger) Info(args ...any) {
	msg, err := buildMsg(args...)
	l.log(l.consoleLogger.Info(), l.multiLogger.Info(), msg, err)
}

// Warn is a wrapper function that will log a warning event.
func (l *Logger) Warn(args ...any) {
	msg, err := buildMsg(args...)
	l.log(l.consoleLogger.Warn(), l.multiLogger.Warn(), msg, err)
}

// Error is a wrapper function that will log an error event.
func (l *Logger) Error(args ...any) {
	msg, err := buildMsg(args...)
	l.log(l.consoleLogger.Error(), l.multiLogger.Error(), msg, err)
}

// Panic is a wrapper function that will log a panic event. The console logger is
// given the chance to render the message before the multi logger panics.
func (l *Logger) Panic(args ...any) {
	msg, err := buildMsg(args...)
	consoleLog := l.consoleLogger.Panic()
	multiLog := l.multiLogger.Panic()
	if err != nil {
		consoleLog.Err(err)
		multiLog.Err(err).Stack()
	}
	// zerolog's Panic events panic on Msg, so the console event must not fire
	// first with a panic of its own.
	defer multiLog.Msg(msg)
	func() {
		defer func() { _ = recover() }()
		consoleLog.Msg(msg)
	}()
}

// log chains any error onto both events and sends them. Stack traces are attached to
// the structured event when the level is debug or lower.
func (l *Logger) log(consoleLog *zerolog.Event, multiLog *zerolog.Event, msg string, err error) {
	if err != nil {
		consoleLog.Err(err)
		if l.level <= zerolog.DebugLevel {
			multiLog.Stack().Err(err)
		} else {
			multiLog.Err(err)
		}
	}
	consoleLog.Msg(msg)
	multiLog.Msg(msg)
}

// buildMsg takes in a variadic list of arguments of any type, concatenates them into
// a message, and pulls out an error, if any, so that it can be chained onto the log
// events instead of flattened into the message.
func buildMsg(args ...any) (string, error) {
	var (
		msg string
		err error
	)
	for _, arg := range args {
		switch t := arg.(type) {
		case error:
			err = t
		default:
			msg += fmt.Sprintf("%v", t)
		}
	}
	return msg, err
}
