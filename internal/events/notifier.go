package events

import "github.com/rs/zerolog"

// LogNotifier delivers notices as structured log events. Deployments that
// push toasts to connected clients substitute their own ports.Notifier; the
// fault handler does not care how notices travel.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Info(message string)  { n.log.Info().Str("notice", message).Msg("user notice") }
func (n *LogNotifier) Warn(message string)  { n.log.Warn().Str("notice", message).Msg("user notice") }
func (n *LogNotifier) Error(message string) { n.log.Error().Str("notice", message).Msg("user notice") }
