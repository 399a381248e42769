package commands

import (
	"errors"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/guard"
)

var ErrOpenWizardCommandIsNotConstructed = errors.New(
	"OpenWizardCommand must be created via NewOpenWizardCommand constructor",
)

// OpenWizardCommand represents a request to open a fresh intake wizard
// session positioned at the lookup step.
//
// Example:
//
//	sessionID := kernel.NewUUID()
//	cmd, err := NewOpenWizardCommand(sessionID)
//	if err != nil {
//	    return fmt.Errorf("invalid session id: %w", err)
//	}
//
//	handler := NewOpenWizardCommandHandler(store)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to open wizard: %w", err)
//	}
type OpenWizardCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewOpenWizardCommand creates a command to open a wizard session.
// Validates that the session ID is constructed.
func NewOpenWizardCommand(sessionID kernel.UUID) (OpenWizardCommand, error) {
	command := OpenWizardCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSessionID(sessionID); err != nil {
		return OpenWizardCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenWizardCommand) Validate() error {
	return c.guard.Validate(ErrOpenWizardCommandIsNotConstructed)
}

// SessionID returns the identifier for the new session.
func (c OpenWizardCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *OpenWizardCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
