package ports

import (
	"context"
	"time"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/wizard"
)

// SessionStore keeps the open wizard sessions. Sessions live only for the
// duration of one open wizard and are discarded on close, reset, or idle
// eviction; implementations hold them in memory, never in durable storage.
type SessionStore interface {
	// Add registers a freshly opened session.
	Add(ctx context.Context, session *wizard.Session) error

	// Get retrieves an open session by its identifier.
	// Returns an ObjectNotFoundError when the session does not exist.
	Get(ctx context.Context, id kernel.UUID) (*wizard.Session, error)

	// Touch marks the session as recently active so idle eviction skips it.
	Touch(ctx context.Context, id kernel.UUID) error

	// Delete discards a session. Deleting an unknown session is not an
	// error.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteIdleSince discards sessions whose last activity is before the
	// cutoff and returns how many were evicted.
	DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error)
}
