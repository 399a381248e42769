package commands

import (
	"context"
	"time"

	"intake/internal/core/ports"
)

// CleanupSessionsCommandHandler evicts idle wizard sessions from the store.
type CleanupSessionsCommandHandler struct {
	store ports.SessionStore
}

// NewCleanupSessionsCommandHandler creates a handler for session cleanup.
func NewCleanupSessionsCommandHandler(store ports.SessionStore) CleanupSessionsCommandHandler {
	return CleanupSessionsCommandHandler{store: store}
}

// Handle removes every session idle longer than the command's TTL and
// reports how many were evicted.
func (h CleanupSessionsCommandHandler) Handle(ctx context.Context, cmd CleanupSessionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-cmd.IdleTTL())
	return h.store.DeleteIdleSince(ctx, cutoff)
}
