package commands

import (
	"errors"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/guard"
)

var ErrResolveLookupCommandIsNotConstructed = errors.New(
	"ResolveLookupCommand must be created via NewResolveLookupCommand constructor",
)

// ResolveLookupCommand represents a request to resolve a staged plate match:
// check the order tracker for an open order on the matched customer and
// vehicle before the wizard moves on.
type ResolveLookupCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResolveLookupCommand creates a command to resolve the session's staged
// plate match.
func NewResolveLookupCommand(sessionID kernel.UUID) (ResolveLookupCommand, error) {
	command := ResolveLookupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSessionID(sessionID); err != nil {
		return ResolveLookupCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveLookupCommand) Validate() error {
	return c.guard.Validate(ErrResolveLookupCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c ResolveLookupCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *ResolveLookupCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
