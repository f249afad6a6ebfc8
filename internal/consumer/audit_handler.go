package consumer

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// AuditHandler logs every roster event and tracks the latest roster size per activity.
type AuditHandler struct {
	logger zerolog.Logger

	mu    sync.Mutex
	sizes map[string]int
}

// NewAuditHandler constructs an AuditHandler.
func NewAuditHandler(logger zerolog.Logger) *AuditHandler {
	return &AuditHandler{logger: logger, sizes: make(map[string]int)}
}

// Handle implements Handler.
func (h *AuditHandler) Handle(_ context.Context, msg Message) error {
	evt := msg.Event

	h.mu.Lock()
	h.sizes[evt.Activity] = evt.RosterSize
	h.mu.Unlock()

	h.logger.Info().
		Str("event_id", evt.EventID).
		Str("event_type", string(evt.Type)).
		Str("activity", evt.Activity).
		Str("email", evt.Email).
		Int("roster_size", evt.RosterSize).
		Time("occurred_at", evt.OccurredAt).
		Int64("offset", msg.Offset).
		Msg("roster changed")
	return nil
}

// RosterSizes returns the last observed roster size for each activity.
func (h *AuditHandler) RosterSizes() map[string]int {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make(map[string]int, len(h.sizes))
	for k, v := range h.sizes {
		out[k] = v
	}
	return out
}
