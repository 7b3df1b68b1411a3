package i

// Logger is the component logger used across services and adapters.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
	With(key string, value any) Logger
}
