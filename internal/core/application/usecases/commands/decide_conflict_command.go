package commands

import (
	"errors"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/pkg/guard"
)

var ErrDecideConflictCommandIsNotConstructed = errors.New(
	"DecideConflictCommand must be created via NewDecideConflictCommand constructor",
)

// DecideConflictCommand represents the operator's explicit choice for an open
// order conflict: continue the existing order or start a new one. There is no
// silent default.
type DecideConflictCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	decision  wizard.ConflictDecision

	guard guard.ConstructorGuard
}

// NewDecideConflictCommand creates a command carrying the operator's decision.
func NewDecideConflictCommand(sessionID kernel.UUID, decision wizard.ConflictDecision) (DecideConflictCommand, error) {
	command := DecideConflictCommand{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		command.setSessionID(sessionID),
		command.setDecision(decision),
	)
	if err != nil {
		return DecideConflictCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DecideConflictCommand) Validate() error {
	return c.guard.Validate(ErrDecideConflictCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c DecideConflictCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Decision returns the operator's choice.
func (c DecideConflictCommand) Decision() wizard.ConflictDecision {
	return c.decision
}

func (c *DecideConflictCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *DecideConflictCommand) setDecision(decision wizard.ConflictDecision) error {
	if err := decision.Validate(); err != nil {
		return err
	}

	c.decision = decision
	return nil
}
