package atoship

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Logger is the debug-trace sink. Arguments after the message are
// alternating key-value pairs.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// DebugConfig controls per-attempt request tracing.
type DebugConfig struct {
	Enabled      bool
	LogRequests  bool
	LogRetries   bool
	LogResponses bool
	// RequestIDGen produces the trace ID attached to every log line of one
	// logical call.
	RequestIDGen func() string
}

// DefaultDebugConfig returns a DebugConfig with all trace categories on and
// UUID request IDs. Enabled stays false until WithDebug is applied.
func DefaultDebugConfig() *DebugConfig {
	return &DebugConfig{
		Enabled:      false,
		LogRequests:  true,
		LogRetries:   true,
		LogResponses: true,
		RequestIDGen: uuid.NewString,
	}
}

// SimpleLogger writes logfmt-style lines to stderr. Useful for examples and
// quick debugging; production callers should prefer NewZerologLogger.
type SimpleLogger struct{}

// NewSimpleLogger creates a console logger.
func NewSimpleLogger() *SimpleLogger {
	return &SimpleLogger{}
}

func (l *SimpleLogger) log(level, msg string, keysAndValues ...any) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s atoship: %s", time.Now().Format(time.RFC3339), level, msg)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	fmt.Fprintln(os.Stderr, b.String())
}

func (l *SimpleLogger) Debug(msg string, keysAndValues ...any) { l.log("DEBUG", msg, keysAndValues...) }
func (l *SimpleLogger) Info(msg string, keysAndValues ...any)  { l.log("INFO", msg, keysAndValues...) }
func (l *SimpleLogger) Warn(msg string, keysAndValues ...any)  { l.log("WARN", msg, keysAndValues...) }
func (l *SimpleLogger) Error(msg string, keysAndValues ...any) { l.log("ERROR", msg, keysAndValues...) }

// ZerologLogger adapts a zerolog.Logger to the Logger interface.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger wraps an existing zerolog.Logger.
func NewZerologLogger(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: logger}
}

func (l *ZerologLogger) emit(ev *zerolog.Event, msg string, keysAndValues ...any) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		ev = ev.Interface(fmt.Sprintf("%v", keysAndValues[i]), keysAndValues[i+1])
	}
	ev.Msg(msg)
}

func (l *ZerologLogger) Debug(msg string, keysAndValues ...any) {
	l.emit(l.logger.Debug(), msg, keysAndValues...)
}

func (l *ZerologLogger) Info(msg string, keysAndValues ...any) {
	l.emit(l.logger.Info(), msg, keysAndValues...)
}

func (l *ZerologLogger) Warn(msg string, keysAndValues ...any) {
	l.emit(l.logger.Warn(), msg, keysAndValues...)
}

func (l *ZerologLogger) Error(msg string, keysAndValues ...any) {
	l.emit(l.logger.Error(), msg, keysAndValues...)
}

// sensitiveKeys are masked in debug traces, case-insensitively.
var sensitiveKeys = []string{"password", "apikey", "api_key", "secret", "token", "key", "credentials"}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if lower == s {
			return true
		}
	}
	return false
}

// maskValue redacts a secret, keeping the first and last two characters of
// longer values for correlation.
func maskValue(value string) string {
	if len(value) > 4 {
		return value[:2] + strings.Repeat("*", len(value)-4) + value[len(value)-2:]
	}
	return "***"
}

// maskFields returns a copy of data with sensitive keys masked, recursing
// into nested maps. The input is never mutated.
func maskFields(data map[string]any) map[string]any {
	masked := make(map[string]any, len(data))
	for key, value := range data {
		switch v := value.(type) {
		case string:
			if isSensitiveKey(key) {
				masked[key] = maskValue(v)
			} else {
				masked[key] = v
			}
		case map[string]any:
			masked[key] = maskFields(v)
		default:
			if isSensitiveKey(key) {
				masked[key] = "***"
			} else {
				masked[key] = value
			}
		}
	}
	return masked
}
