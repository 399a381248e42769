package commands

import (
	"errors"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/pkg/guard"
)

var ErrResetWizardCommandIsNotConstructed = errors.New(
	"ResetWizardCommand must be created via NewResetWizardCommand constructor",
)

// ResetWizardCommand represents a request to jump the wizard back to an
// earlier step. Resetting to the first step clears the form entirely.
type ResetWizardCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	target    wizard.Step

	guard guard.ConstructorGuard
}

// NewResetWizardCommand creates a command to reset the wizard to target.
func NewResetWizardCommand(sessionID kernel.UUID, target wizard.Step) (ResetWizardCommand, error) {
	command := ResetWizardCommand{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		command.setSessionID(sessionID),
		command.setTarget(target),
	)
	if err != nil {
		return ResetWizardCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetWizardCommand) Validate() error {
	return c.guard.Validate(ErrResetWizardCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c ResetWizardCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Target returns the step the wizard should be reset to.
func (c ResetWizardCommand) Target() wizard.Step {
	return c.target
}

func (c *ResetWizardCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *ResetWizardCommand) setTarget(target wizard.Step) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
