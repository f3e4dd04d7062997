package ports

// Logger defines the interface for logging.
//
// Debug and Warn take slog-style key/value pairs after the message.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string)
	Warn(msg string, args ...any)
	Error(err error)
}
