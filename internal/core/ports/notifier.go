package ports

// Notifier delivers user-facing notices raised by cross-cutting handlers.
// The delivery channel (toast queue, SSE, log sink) is an implementation
// concern; callers only pick the severity.
type Notifier interface {
	Info(message string)
	Warn(message string)
	Error(message string)
}
