package commands

import (
	"errors"
	"time"

	"intake/internal/pkg/errs"
	"intake/internal/pkg/guard"
)

var ErrCleanupSessionsCommandIsNotConstructed = errors.New(
	"CleanupSessionsCommand must be created via NewCleanupSessionsCommand constructor",
)

// CleanupSessionsCommand represents a request to evict wizard sessions that
// have been idle longer than the given TTL.
type CleanupSessionsCommand struct { //nolint:recvcheck //using for validation
	idleTTL time.Duration

	guard guard.ConstructorGuard
}

// NewCleanupSessionsCommand creates a cleanup command with the given idle TTL.
func NewCleanupSessionsCommand(idleTTL time.Duration) (CleanupSessionsCommand, error) {
	command := CleanupSessionsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setIdleTTL(idleTTL); err != nil {
		return CleanupSessionsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CleanupSessionsCommand) Validate() error {
	return c.guard.Validate(ErrCleanupSessionsCommandIsNotConstructed)
}

// IdleTTL returns how long a session may stay idle before eviction.
func (c CleanupSessionsCommand) IdleTTL() time.Duration {
	return c.idleTTL
}

func (c *CleanupSessionsCommand) setIdleTTL(idleTTL time.Duration) error {
	if idleTTL <= 0 {
		return errs.NewValueIsInvalidError("idle TTL")
	}

	c.idleTTL = idleTTL
	return nil
}
