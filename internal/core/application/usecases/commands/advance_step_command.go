package commands

import (
	"errors"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/guard"
)

var ErrAdvanceStepCommandIsNotConstructed = errors.New(
	"AdvanceStepCommand must be created via NewAdvanceStepCommand constructor",
)

// AdvanceStepCommand represents a request to confirm the current wizard step
// and move forward. The optional inputs carry the field values posted with
// the confirmation; they are committed to the form state only when the step
// validates.
//
// Advancing from the lookup step with no input is the "skip lookup" path.
type AdvanceStepCommand struct { //nolint:recvcheck //using for validation
	sessionID     kernel.UUID
	customerType  *CustomerTypeInput
	extractedData *ExtractedDataInput

	guard guard.ConstructorGuard
}

// NewAdvanceStepCommand creates a command to advance the wizard.
// Either or both inputs may be nil when the corresponding step's fields are
// not being updated.
func NewAdvanceStepCommand(
	sessionID kernel.UUID,
	customerType *CustomerTypeInput,
	extractedData *ExtractedDataInput,
) (AdvanceStepCommand, error) {
	command := AdvanceStepCommand{
		customerType:  customerType,
		extractedData: extractedData,
		guard:         guard.NewConstructorGuard(),
	}

	if err := command.setSessionID(sessionID); err != nil {
		return AdvanceStepCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceStepCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStepCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c AdvanceStepCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// CustomerTypeInput returns the posted customer-type fields, or nil.
func (c AdvanceStepCommand) CustomerTypeInput() *CustomerTypeInput {
	return c.customerType
}

// ExtractedDataInput returns the posted extracted-data fields, or nil.
func (c AdvanceStepCommand) ExtractedDataInput() *ExtractedDataInput {
	return c.extractedData
}

func (c *AdvanceStepCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
