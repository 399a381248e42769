package commands

import (
	"errors"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a request to confirm the final step and
// create the service order. The optional input carries the operator's last
// edits to the extracted data fields.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	extracted *ExtractedDataInput

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit the session's order.
func NewSubmitOrderCommand(sessionID kernel.UUID, extracted *ExtractedDataInput) (SubmitOrderCommand, error) {
	command := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSessionID(sessionID); err != nil {
		return SubmitOrderCommand{}, err
	}
	command.extracted = extracted

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c SubmitOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// ExtractedDataInput returns the operator's final field edits, or nil when
// the form is submitted as-is.
func (c SubmitOrderCommand) ExtractedDataInput() *ExtractedDataInput {
	return c.extracted
}

func (c *SubmitOrderCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
