package commands

import (
	"errors"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/guard"
)

var ErrLookupPlateCommandIsNotConstructed = errors.New(
	"LookupPlateCommand must be created via NewLookupPlateCommand constructor",
)

// LookupPlateCommand represents a request to look up a vehicle registration
// plate. The plate is normalized during construction, so an empty or
// oversized plate fails here without reaching the order tracker.
type LookupPlateCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	plate     kernel.Plate

	guard guard.ConstructorGuard
}

// NewLookupPlateCommand creates a command to look up rawPlate for the session.
func NewLookupPlateCommand(sessionID kernel.UUID, rawPlate string) (LookupPlateCommand, error) {
	command := LookupPlateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSessionID(sessionID); err != nil {
		return LookupPlateCommand{}, err
	}
	if err := command.setPlate(rawPlate); err != nil {
		return LookupPlateCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c LookupPlateCommand) Validate() error {
	return c.guard.Validate(ErrLookupPlateCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c LookupPlateCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Plate returns the normalized plate to look up.
func (c LookupPlateCommand) Plate() kernel.Plate {
	return c.plate
}

func (c *LookupPlateCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *LookupPlateCommand) setPlate(rawPlate string) error {
	plate, err := kernel.NewPlate(rawPlate)
	if err != nil {
		return err
	}

	c.plate = plate
	return nil
}
