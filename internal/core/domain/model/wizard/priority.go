package wizard

import (
	"fmt"

	"intake/internal/pkg/errs"
)

// Priority orders service work by urgency. The zero value means the operator
// left the field untouched; the submission payload falls back to Medium then.
type Priority int

const (
	// UnknownPriority means no priority has been chosen.
	UnknownPriority Priority = iota

	Low
	Medium
	High
	Urgent
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		Low:    "low",
		Medium: "medium",
		High:   "high",
		Urgent: "urgent",
	}
}

// Validate checks that the priority is one of the selectable values.
func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// IsSpecified reports whether a priority has been chosen.
func (p Priority) IsSpecified() bool {
	return p != UnknownPriority
}

// String returns the wire name of the priority, or "unknown".
func (p Priority) String() string {
	if s, ok := getPriorityStrings()[p]; ok {
		return s
	}
	return "unknown"
}

// ParsePriority converts wire text into a Priority. Empty input maps to
// UnknownPriority without error.
func ParsePriority(s string) (Priority, error) {
	if s == "" {
		return UnknownPriority, nil
	}
	for p, name := range getPriorityStrings() {
		if name == s {
			return p, nil
		}
	}
	return UnknownPriority, errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", s))
}
