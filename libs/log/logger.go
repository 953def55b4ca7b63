package log

const (
	// LogFormatPlain defines a logging format used for human-readable
	// text-based logging that is not structured. Typically used during
	// development and testing.
	LogFormatPlain string = "plain"

	// LogFormatJSON defines a logging format for structured JSON-based
	// logging that is typically used in production environments, which can
	// be sent to logging facilities that support complex log parsing and
	// querying.
	LogFormatJSON string = "json"

	// Supported logging levels.
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelError = "error"
)

// Logger defines a generic logging interface compatible with the rest of
// the light client. Pure verification functions never log; the wrappers
// around them take a Logger.
type Logger interface {
	Debug(msg string, keyVals ...interface{})
	Info(msg string, keyVals ...interface{})
	Error(msg string, keyVals ...interface{})

	With(keyVals ...interface{}) Logger
}
