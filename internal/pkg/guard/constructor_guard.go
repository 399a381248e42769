// Package guard provides a constructor guard for value objects and commands.
// Embedding a ConstructorGuard lets a type detect whether it was created
// through its designated constructor or left as a zero value, so validation
// can reject improperly constructed instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by
// ConstructorGuard.Validate when no specific validation error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// constructor. The zero value is unconstructed and fails validation.
//
// Example usage:
//
//	type LookupPlateCommand struct {
//	    plateText string
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewLookupPlateCommand(plateText string) (LookupPlateCommand, error) {
//	    return LookupPlateCommand{
//	        plateText: plateText,
//	        guard:     guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c LookupPlateCommand) Validate() error {
//	    return c.guard.Validate(ErrLookupPlateCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
// Call this from the owning type's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
