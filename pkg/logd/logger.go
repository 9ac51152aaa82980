package logd

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

const LogLevelEnv = "LOG_LEVEL"

// LogLevel follows logr verbosity: higher values are more verbose.
type LogLevel int

const (
	TraceLevel LogLevel = 2
	DebugLevel LogLevel = 1
	InfoLevel  LogLevel = 0
	WarnLevel  LogLevel = -1
	ErrorLevel LogLevel = -2
)

var levelNames = map[LogLevel]string{
	TraceLevel: "trace",
	DebugLevel: "debug",
	InfoLevel:  "info",
	WarnLevel:  "warn",
	ErrorLevel: "error",
}

func (level LogLevel) String() string {
	if name, ok := levelNames[level]; ok {
		return name
	}

	return "unknown"
}

// Logger wraps logr.Logger with level helpers used across the pizzeria.
type Logger struct {
	logr.Logger
}

var (
	baseLogger Logger
	baseOnce   sync.Once
)

// Get returns the process-wide base logger. Packages derive their own with WithName.
func Get() Logger {
	baseOnce.Do(func() {
		logLevel, err := readLogLevelFromEnv()
		baseLogger = Logger{newZapLogger(NewPrettyLogWriter(), logLevel)}

		if err != nil {
			baseLogger.Info("falling back to default log level", "level", "info", "error", err.Error())
		}
	})

	return baseLogger
}

// NewToWriter builds a standalone logger, mainly for commands and tests.
func NewToWriter(out io.Writer, logLevel LogLevel) Logger {
	return Logger{newZapLogger(NewPrettyLogWriter(WithWriter(out)), logLevel)}
}

func (l Logger) WithName(name string) Logger {
	return Logger{l.Logger.WithName(name)}
}

func (l Logger) WithValues(keysAndValues ...any) Logger {
	return Logger{l.Logger.WithValues(keysAndValues...)}
}

func (l Logger) Debug(message string, keysAndValues ...any) {
	l.V(int(DebugLevel)).Info(message, keysAndValues...)
}

func (l Logger) Trace(message string, keysAndValues ...any) {
	l.V(int(TraceLevel)).Info(message, keysAndValues...)
}

func readLogLevelFromEnv() (LogLevel, error) {
	return ParseLogLevel(os.Getenv(LogLevelEnv))
}

// ParseLogLevel maps a level name to a LogLevel. An empty name means info.
func ParseLogLevel(level string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info", "":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, errors.Errorf("unknown log level %q", level)
	}
}
