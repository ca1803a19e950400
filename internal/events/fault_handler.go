package events

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/orientavoc/orientation-platform/internal/api/metrics"
	"github.com/orientavoc/orientation-platform/internal/core/domain"
	"github.com/orientavoc/orientation-platform/internal/core/ports"
)

const defaultRedirectCooldown = 2 * time.Second

// Default notices used when a signal arrives without a message.
const (
	defaultUnauthorizedNotice = "Tu sesión ha expirado. Iniciá sesión nuevamente."
	defaultForbiddenNotice    = "No tenés permisos para realizar esta acción."
)

// FaultHandler is the single consumer of auth fault signals. Unauthorized
// tears the session down and redirects to login, at most once per cooldown
// window: several concurrent upstream calls can fail together and each would
// otherwise trigger its own redirect. Forbidden only warns; the permission
// guard already renders the denial. Generic errors surface as notices unless
// the message is empty.
type FaultHandler struct {
	sessions ports.SessionStore
	notifier ports.Notifier
	redirect func(path string)
	cooldown time.Duration
	log      zerolog.Logger

	mu           sync.Mutex
	lastRedirect time.Time
	now          func() time.Time
}

func NewFaultHandler(sessions ports.SessionStore, notifier ports.Notifier, redirect func(path string), cooldown time.Duration, log zerolog.Logger) *FaultHandler {
	if cooldown <= 0 {
		cooldown = defaultRedirectCooldown
	}
	return &FaultHandler{
		sessions: sessions,
		notifier: notifier,
		redirect: redirect,
		cooldown: cooldown,
		log:      log,
		now:      time.Now,
	}
}

// Attach subscribes the handler to the bus and returns the unsubscribe
// function.
func (h *FaultHandler) Attach(bus *Bus) func() {
	return bus.Subscribe(h.Handle)
}

// Handle processes one signal.
func (h *FaultHandler) Handle(sig Signal) {
	metrics.FaultSignalsTotal.WithLabelValues(string(sig.Type)).Inc()

	switch sig.Type {
	case SignalUnauthorized:
		h.onUnauthorized(sig)
	case SignalForbidden:
		msg := sig.Message
		if msg == "" {
			msg = defaultForbiddenNotice
		}
		h.notifier.Warn(msg)
	case SignalError:
		// An empty message would only produce a noisy blank notice.
		if sig.Message != "" {
			h.notifier.Error(sig.Message)
		}
	}
}

func (h *FaultHandler) onUnauthorized(sig Signal) {
	msg := sig.Message
	if msg == "" {
		msg = defaultUnauthorizedNotice
	}
	h.notifier.Info(msg)

	if sig.SessionID != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := h.sessions.Clear(ctx, sig.SessionID); err != nil {
			h.log.Warn().Err(err).Str("session_id", sig.SessionID).Msg("session teardown failed")
		}
	}

	h.mu.Lock()
	suppressed := h.now().Sub(h.lastRedirect) < h.cooldown
	if !suppressed {
		h.lastRedirect = h.now()
	}
	h.mu.Unlock()

	if suppressed {
		metrics.RedirectsSuppressedTotal.Inc()
		return
	}

	h.log.Info().Str("session_id", sig.SessionID).Msg("unauthorized signal, redirecting to login")
	h.redirect(domain.LoginPath)
}
