package observe

import (
	"encoding/json"
	"log"
	"time"

	"github.com/getsentry/sentry-go"

	"go.uber.org/zap/zapcore"
)

const (
	_sentryMaxErrorDepth        int           = 9
	_sentryFlushTimeout         time.Duration = 5 * time.Second
	_sentryServerRequestTimeout time.Duration = 5 * time.Second
)

// SentryHook is an io.Writer that forwards error-and-above log records
// produced by Logger to Sentry. Attach it as an extra writer when a DSN
// is configured.
type SentryHook struct {
	appName string
}

func NewSentryHook(appName, dsn string, isDebug bool) *SentryHook {
	if dsn == "" {
		log.Println("sentry init skipped: no DSN")
		return nil
	}

	transport := sentry.NewHTTPTransport()
	transport.Timeout = _sentryServerRequestTimeout

	if err := sentry.Init(sentry.ClientOptions{
		AttachStacktrace: true,
		Debug:            isDebug,
		Dsn:              dsn,
		MaxErrorDepth:    _sentryMaxErrorDepth,
		ServerName:       appName,
		Transport:        transport,
	}); err != nil {
		log.Println("sentry init error:", err.Error())
		return nil
	}

	return &SentryHook{appName: appName}
}

func (h *SentryHook) Flush() {
	sentry.Flush(_sentryFlushTimeout)
}

func (h *SentryHook) Write(p []byte) (n int, err error) {
	type record struct {
		Level      string `json:"level"`
		Severity   string `json:"severity"`
		AppName    string `json:"app_name"`
		CallerFile string `json:"caller_file"`
		CallerLine int    `json:"caller_line"`
		CallerFunc string `json:"caller_func"`
		Stack      string `json:"stack"`
		Message    string `json:"msg"`
		Error      string `json:"error"`
	}

	var rec record
	if err := json.Unmarshal(p, &rec); err != nil {
		return len(p), nil
	}

	level, err := zapcore.ParseLevel(rec.Level)
	if err != nil || level < zapcore.ErrorLevel || rec.Message == "" {
		return len(p), nil
	}

	event := sentry.NewEvent()
	event.Message = rec.Message
	event.Level = sentry.LevelError
	if level >= zapcore.FatalLevel || rec.Severity == "critical" {
		event.Level = sentry.LevelFatal
	}
	event.Extra["AppName"] = h.appName
	event.Extra["CallerFile"] = rec.CallerFile
	event.Extra["CallerLine"] = rec.CallerLine
	event.Extra["CallerFunc"] = rec.CallerFunc
	event.Extra["Stack"] = rec.Stack
	event.Exception = append(event.Exception, sentry.Exception{
		Type:       rec.Message,
		Value:      rec.Error,
		Stacktrace: sentry.NewStacktrace(),
	})

	sentry.CaptureEvent(event)

	return len(p), nil
}
