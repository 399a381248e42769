package wizard

import (
	"fmt"

	"intake/internal/pkg/errs"
)

// LookupOutcomeKind discriminates the LookupOutcome tagged variant.
type LookupOutcomeKind int

const (
	// LookupOutcomeUnknown marks a zero-value outcome; it is invalid.
	LookupOutcomeUnknown LookupOutcomeKind = iota

	// LookupNotFound means the plate matched no existing customer or vehicle.
	LookupNotFound

	// LookupFoundNoConflict means an identity was resolved and no open order
	// exists for it.
	LookupFoundNoConflict

	// LookupFoundWithConflict means an identity was resolved but an open
	// order already exists; an explicit user decision is required.
	LookupFoundWithConflict
)

// LookupOutcome is the result of resolving a plate lookup. It is produced
// fresh on every lookup call and consumed once by the Session; it is never
// persisted beyond the current wizard session.
//
// A transport failure during lookup is NOT an outcome: it is reported as an
// error by the resolver so the caller can surface it without touching the
// form state.
type LookupOutcome struct {
	kind                LookupOutcomeKind
	customer            Customer
	vehicle             Vehicle
	existingOrderNumber string
}

// NewNotFoundOutcome creates the outcome for a plate that matched nothing.
func NewNotFoundOutcome() LookupOutcome {
	return LookupOutcome{kind: LookupNotFound}
}

// NewFoundNoConflictOutcome creates the outcome for a resolved identity with
// no existing open order. The vehicle's plate must be constructed.
func NewFoundNoConflictOutcome(customer Customer, vehicle Vehicle) (LookupOutcome, error) {
	if err := vehicle.Plate.Validate(); err != nil {
		return LookupOutcome{}, err
	}

	return LookupOutcome{
		kind:     LookupFoundNoConflict,
		customer: customer,
		vehicle:  vehicle,
	}, nil
}

// NewFoundWithConflictOutcome creates the outcome for a resolved identity
// that already has an open order, identified by its human-readable number.
func NewFoundWithConflictOutcome(customer Customer, vehicle Vehicle, existingOrderNumber string) (LookupOutcome, error) {
	if err := vehicle.Plate.Validate(); err != nil {
		return LookupOutcome{}, err
	}
	if existingOrderNumber == "" {
		return LookupOutcome{}, errs.NewValueIsRequiredError("existing order number")
	}

	return LookupOutcome{
		kind:                LookupFoundWithConflict,
		customer:            customer,
		vehicle:             vehicle,
		existingOrderNumber: existingOrderNumber,
	}, nil
}

// Kind returns the variant discriminator.
func (o LookupOutcome) Kind() LookupOutcomeKind {
	return o.kind
}

// Customer returns the resolved customer identity.
// Meaningful only when HasIdentity is true.
func (o LookupOutcome) Customer() Customer {
	return o.customer
}

// Vehicle returns the resolved vehicle identity.
// Meaningful only when HasIdentity is true.
func (o LookupOutcome) Vehicle() Vehicle {
	return o.vehicle
}

// ExistingOrderNumber returns the open order's human-readable number for
// LookupFoundWithConflict outcomes, empty otherwise.
func (o LookupOutcome) ExistingOrderNumber() string {
	return o.existingOrderNumber
}

// HasIdentity reports whether the outcome carries a resolved customer and
// vehicle.
func (o LookupOutcome) HasIdentity() bool {
	return o.kind == LookupFoundNoConflict || o.kind == LookupFoundWithConflict
}

// Validate checks that the outcome was created via one of the constructors.
func (o LookupOutcome) Validate() error {
	if o.kind == LookupOutcomeUnknown {
		return errs.NewValueIsRequiredError("LookupOutcome must be created via one of its constructors")
	}
	return nil
}

// ConflictDecision is the operator's answer to a duplicate-open-order
// conflict surfaced during lookup resolution.
type ConflictDecision int

const (
	// NoDecision means the operator has not decided yet. Proceeding past a
	// conflict with NoDecision is a hard error.
	NoDecision ConflictDecision = iota

	// ContinueExistingOrder ends the wizard and continues with the already
	// open order; no new order is created.
	ContinueExistingOrder

	// StartNewOrder proceeds with a new order for the resolved identity
	// despite the existing open one.
	StartNewOrder
)

func getConflictDecisionStrings() map[ConflictDecision]string {
	return map[ConflictDecision]string{
		ContinueExistingOrder: "continue-existing",
		StartNewOrder:         "start-new",
	}
}

// Validate checks the decision is one of the two explicit choices.
func (d ConflictDecision) Validate() error {
	if _, ok := getConflictDecisionStrings()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("conflict decision", fmt.Errorf("%d is not a valid conflict decision", d))
	}
	return nil
}

// String returns the wire name of the decision, or "none".
func (d ConflictDecision) String() string {
	if s, ok := getConflictDecisionStrings()[d]; ok {
		return s
	}
	return "none"
}

// ParseConflictDecision converts wire text into a ConflictDecision.
// Unlike the form-field enums, empty input is invalid here: a conflict can
// only be resolved by an explicit choice.
func ParseConflictDecision(s string) (ConflictDecision, error) {
	for d, name := range getConflictDecisionStrings() {
		if name == s {
			return d, nil
		}
	}
	return NoDecision, errs.NewValueIsInvalidErrorWithCause("conflict decision", fmt.Errorf("%q is not a valid conflict decision", s))
}
