package recorder

// Logger receives the service's structured log records. Args alternate
// keys and values as with log/slog. Passwords are never passed to it;
// digests are shortened before logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NopLogger drops every record. It is used when no log sink is configured.
type NopLogger struct{}

func NewNopLogger() *NopLogger { return &NopLogger{} }

func (*NopLogger) Debug(string, ...any) {}
func (*NopLogger) Info(string, ...any)  {}
func (*NopLogger) Warn(string, ...any)  {}
func (*NopLogger) Error(string, ...any) {}

var _ Logger = (*NopLogger)(nil)
