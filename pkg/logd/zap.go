package logd

import (
	"io"

	"github.com/go-logr/logr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	ctrlzap "sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// newZapLogger writes JSON lines with ISO8601 timestamps and the pizzeria level names.
// Stack traces are attached from error level on.
func newZapLogger(out io.Writer, logLevel LogLevel) logr.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.StacktraceKey = stacktraceKey
	encoderConfig.EncodeLevel = encodeLevel

	return ctrlzap.New(
		ctrlzap.WriteTo(out),
		ctrlzap.Encoder(zapcore.NewJSONEncoder(encoderConfig)),
		ctrlzap.Level(logLevel.zapLevel()),
		ctrlzap.StacktraceLevel(zapcore.ErrorLevel),
	)
}

// zap counts verbosity downwards, logr upwards.
func (level LogLevel) zapLevel() zapcore.Level {
	return zapcore.Level(-level)
}

func encodeLevel(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(LogLevel(-level).String())
}
