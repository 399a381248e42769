package kernel

import (
	"strings"

	"intake/internal/pkg/errs"
)

// maxPlateLength bounds plate input so arbitrary text cannot be sent to the
// plate-check collaborator.
const maxPlateLength = 16

// ErrPlateIsNotConstructed indicates that a Plate was not created via NewPlate.
var ErrPlateIsNotConstructed = errs.NewValueIsRequiredError("Plate must be created via NewPlate")

// Plate is a value object representing a normalized vehicle registration plate.
// Normalization trims surrounding whitespace and upper-cases the text, so two
// user spellings of the same plate compare equal and the plate-check
// collaborator always receives a canonical value.
//
// The zero value is invalid; empty input after trimming is rejected locally
// and never reaches the network.
type Plate struct {
	value string
}

// NewPlate normalizes raw plate text and creates a Plate.
// Returns a ValueIsRequiredError when the text is empty after trimming, or a
// ValueIsOutOfRangeError when it exceeds the maximum plate length.
func NewPlate(raw string) (Plate, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if normalized == "" {
		return Plate{}, errs.NewValueIsRequiredError("plate")
	}
	if len(normalized) > maxPlateLength {
		return Plate{}, errs.NewValueIsOutOfRangeError("plate length", len(normalized), 1, maxPlateLength)
	}

	return Plate{value: normalized}, nil
}

// String returns the normalized plate text.
func (p Plate) String() string {
	return p.value
}

// IsEqual compares two plates by their normalized text.
func (p Plate) IsEqual(other Plate) bool {
	return p.value == other.value
}

// Validate checks if the Plate was properly constructed.
// Returns ErrPlateIsNotConstructed for the zero value.
func (p Plate) Validate() error {
	if p.value == "" {
		return ErrPlateIsNotConstructed
	}
	return nil
}
