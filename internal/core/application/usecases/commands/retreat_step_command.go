package commands

import (
	"errors"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/guard"
)

var ErrRetreatStepCommandIsNotConstructed = errors.New(
	"RetreatStepCommand must be created via NewRetreatStepCommand constructor",
)

// RetreatStepCommand represents a request to move the wizard one step
// backward. Backward navigation never validates and never discards entered
// values.
type RetreatStepCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRetreatStepCommand creates a command to retreat the wizard.
func NewRetreatStepCommand(sessionID kernel.UUID) (RetreatStepCommand, error) {
	command := RetreatStepCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSessionID(sessionID); err != nil {
		return RetreatStepCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RetreatStepCommand) Validate() error {
	return c.guard.Validate(ErrRetreatStepCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c RetreatStepCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *RetreatStepCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
