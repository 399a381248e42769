package wizard

import (
	"fmt"

	"intake/internal/pkg/errs"
)

// Step represents the wizard's position in its fixed three-step flow.
// It implements a small state machine with defined transitions:
//
//	Lookup ──> CustomerType ──> ExtractedData ──> (Submitted)
//	   ^            │   ^            │
//	   └────────────┘   └────────────┘
//	          (free retreat)
//
// Step 0 (Lookup) is always optional and may be skipped. The terminal
// Submitted state is held on the Session aggregate, not on Step.
type Step int

const (
	// StepLookup is the optional plate-lookup step.
	StepLookup Step = iota

	// StepCustomerType selects the customer type and its details.
	StepCustomerType

	// StepExtractedData fills in the extracted order data and submits.
	StepExtractedData
)

// TotalSteps is the fixed number of wizard steps.
const TotalSteps = 3

func getStepStrings() map[Step]string {
	return map[Step]string{
		StepLookup:        "Lookup",
		StepCustomerType:  "CustomerType",
		StepExtractedData: "ExtractedData",
	}
}

// StepFromOrdinal converts a raw ordinal into a Step.
// Returns a ValueIsOutOfRangeError for ordinals outside [0, TotalSteps-1].
func StepFromOrdinal(n int) (Step, error) {
	step := Step(n)
	if err := step.Validate(); err != nil {
		return 0, err
	}
	return step, nil
}

// Validate checks that the step ordinal is within [0, TotalSteps-1].
func (s Step) Validate() error {
	if s < StepLookup || s > StepExtractedData {
		return errs.NewValueIsOutOfRangeError("step", int(s), 0, TotalSteps-1)
	}
	return nil
}

// Ordinal returns the zero-based step index.
func (s Step) Ordinal() int {
	return int(s)
}

// IsFirst reports whether this is the first step.
func (s Step) IsFirst() bool {
	return s == StepLookup
}

// IsLast reports whether this is the last step.
func (s Step) IsLast() bool {
	return s == StepExtractedData
}

// Next transitions forward by one step.
// Returns an error when already at the last step.
func (s Step) Next() (Step, error) {
	if s.IsLast() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"step",
			fmt.Errorf("%s is the last step", s.String()),
		)
	}
	return s + 1, nil
}

// Prev transitions backward by one step.
// Returns an error when already at the first step.
func (s Step) Prev() (Step, error) {
	if s.IsFirst() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"step",
			fmt.Errorf("%s is the first step", s.String()),
		)
	}
	return s - 1, nil
}

// String returns the human-readable name of the step.
func (s Step) String() string {
	if str, ok := getStepStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
