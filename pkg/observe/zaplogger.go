package observe

import (
	"io"
	"os"
	"runtime"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap with the field conventions used across the service.
type Logger struct {
	appName string
	l       *zap.Logger
}

// NewZapLogger builds a JSON logger writing to the given writers
// (stdout when none are supplied).
func NewZapLogger(appName string, writers ...io.Writer) *Logger {
	var syncers []zapcore.WriteSyncer

	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if len(writers) == 0 {
		syncers = append(syncers, os.Stdout)
	} else {
		for _, w := range writers {
			syncers = append(syncers, zapcore.AddSync(w))
		}
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(cfg),
		zapcore.NewMultiWriteSyncer(syncers...),
		zapcore.DebugLevel,
	)

	return &Logger{
		appName: appName,
		l:       zap.New(core),
	}
}

func (l *Logger) Stop() error {
	return l.l.Sync()
}

// Critical records an unrecoverable-within-the-cycle failure, such as a
// fetch attempt that fell back to the previous snapshot.
func (l *Logger) Critical(err error, fields ...map[string]any) {
	l.write(zapcore.ErrorLevel, err.Error(), fields,
		zap.String("severity", "critical"),
		zap.String("error", err.Error()),
		zap.Stack("stack"),
	)
}

func (l *Logger) Error(err error, fields ...map[string]any) {
	l.write(zapcore.ErrorLevel, err.Error(), fields,
		zap.String("error", err.Error()),
		zap.Stack("stack"),
	)
}

func (l *Logger) Warning(msg string, fields ...map[string]any) {
	l.write(zapcore.WarnLevel, msg, fields)
}

func (l *Logger) Info(msg string, fields ...map[string]any) {
	l.write(zapcore.InfoLevel, msg, fields)
}

func (l *Logger) Debug(msg string, fields ...map[string]any) {
	l.write(zapcore.DebugLevel, msg, fields)
}

func (l *Logger) Fatal(msg string, fields ...map[string]any) {
	l.write(zapcore.FatalLevel, msg, fields)
}

func (l *Logger) write(level zapcore.Level, msg string, fields []map[string]any, extra ...zap.Field) {
	file, line, funcName := getRuntimeParams()

	zapFields := []zapcore.Field{}
	if len(fields) > 0 {
		zapFields = mapToZapFields(fields[0])
	}

	zapFields = append(zapFields,
		zap.String("app_name", l.appName),
		zap.String("caller_file", file),
		zap.Int("caller_line", line),
		zap.String("caller_func", funcName),
	)
	zapFields = append(zapFields, extra...)

	if ce := l.l.Check(level, msg); ce != nil {
		ce.Write(zapFields...)
	}
}

func mapToZapFields(data map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(data))

	for k, v := range data {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	return zapFields
}

func getRuntimeParams() (file string, line int, funcName string) {
	pc, file, line, ok := runtime.Caller(3)
	if !ok {
		return "not_defined", 0, "not_defined"
	}
	return file, line, runtime.FuncForPC(pc).Name()
}
