package wizard

import (
	"errors"
	"sync"
	"time"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/errs"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session instance was not
	// created through the NewSession factory method.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

	// ErrSessionFinished is returned when an operation is attempted on a
	// session that has already been submitted or closed.
	ErrSessionFinished = errors.New("wizard session is already finished")

	// ErrLookupAlreadyInFlight is returned when a lookup is triggered while
	// another lookup for the same session has not resolved yet.
	ErrLookupAlreadyInFlight = errors.New("a lookup is already in flight for this session")

	// ErrSubmitAlreadyInFlight is returned when a submission is triggered
	// while another submission for the same session has not resolved yet.
	ErrSubmitAlreadyInFlight = errors.New("a submission is already in flight for this session")

	// ErrDecisionIsRequired is returned when a conflicting open order was
	// found and the caller tries to proceed without an explicit decision.
	ErrDecisionIsRequired = errors.New("an explicit decision is required to resolve the order conflict")

	// ErrNoPendingIdentity is returned when conflict resolution is requested
	// but no plate lookup has resolved an identity first.
	ErrNoPendingIdentity = errors.New("no resolved customer/vehicle is pending for this session")

	// ErrNoDecisionPending is returned when a conflict decision arrives but
	// no conflict is awaiting one.
	ErrNoDecisionPending = errors.New("no conflict decision is pending for this session")
)

// Session is the aggregate root for one open intake wizard. It owns the
// FormState, the current Step, and the bookkeeping the conflict-aware lookup
// flow needs: the identity staged by a plate lookup, a pending conflict
// decision, and the in-flight guards for lookup and submission.
//
// Session follows these invariants:
//   - The step never moves backward past the first step or forward past the
//     last step
//   - A found conflict is never passed without an explicit decision
//   - At most one lookup and one submission are logically in flight at a time
//   - Once submitted or closed, no further transitions are possible
//
// Session lives only for the duration of one open wizard; it is never
// persisted. Methods are safe for concurrent use, although the intended model
// is a single logical caller per session.
type Session struct {
	mu sync.Mutex

	id        kernel.UUID
	step      Step
	form      FormState
	createdAt time.Time

	// identity staged by a successful plate lookup, not yet merged
	pendingCustomer *Customer
	pendingVehicle  *Vehicle

	// conflict awaiting an explicit operator decision
	awaitingDecision   bool
	pendingOrderNumber string

	lookupInFlight bool
	submitInFlight bool

	submitted   bool
	closed      bool
	orderNumber string

	isConstructed bool
}

// NewSession creates a session positioned at the lookup step with an empty
// form.
func NewSession(id kernel.UUID) (*Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		id:            id,
		step:          StepLookup,
		createdAt:     time.Now(),
		isConstructed: true,
	}, nil
}

// Validate ensures the Session instance was created through NewSession.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// CreatedAt returns when the wizard was opened.
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// Step returns the current wizard step.
func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// FormSnapshot returns a copy of the current form state. Callers validate
// and edit the copy; CommitForm writes it back so a failed validation never
// leaves a partial mutation behind.
func (s *Session) FormSnapshot() FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// CommitForm replaces the form state with an edited copy.
func (s *Session) CommitForm(form FormState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted || s.closed {
		return ErrSessionFinished
	}
	s.form = form
	return nil
}

// Advance moves one step forward. Callers run step validation first; Advance
// itself only enforces bounds. At the last step it is a no-op: the only way
// out of the final step is a successful submission.
//
// Entering the extracted-data step triggers the idempotent prepare hook that
// pre-fills still-empty fields from a prior lookup without overwriting user
// edits.
func (s *Session) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted || s.closed {
		return ErrSessionFinished
	}
	if s.step.IsLast() {
		return nil
	}

	next, err := s.step.Next()
	if err != nil {
		return err
	}
	s.step = next

	if s.step == StepExtractedData {
		s.prepareExtractedData()
	}
	return nil
}

// Retreat moves one step backward. Backward navigation is always allowed,
// never validates, and never clears already-entered field values. At the
// first step it is a no-op.
func (s *Session) Retreat() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted || s.closed {
		return ErrSessionFinished
	}
	if s.step.IsFirst() {
		return nil
	}

	prev, err := s.step.Prev()
	if err != nil {
		return err
	}
	s.step = prev
	return nil
}

// ResetToStep jumps to the given step. Resetting to the first step is a full
// reset: the form state and any staged lookup results are discarded, giving
// fresh-session semantics. No other transition re-enters the first step.
func (s *Session) ResetToStep(target Step) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted || s.closed {
		return ErrSessionFinished
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if target.IsFirst() {
		s.form = FormState{}
		s.pendingCustomer = nil
		s.pendingVehicle = nil
		s.awaitingDecision = false
		s.pendingOrderNumber = ""
	}
	s.step = target
	return nil
}

// BeginLookup marks a lookup as in flight. A second lookup trigger while one
// is pending is rejected so the host can keep the control disabled.
func (s *Session) BeginLookup() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted || s.closed {
		return ErrSessionFinished
	}
	if s.lookupInFlight {
		return ErrLookupAlreadyInFlight
	}
	s.lookupInFlight = true
	return nil
}

// FinishLookup clears the lookup in-flight guard. It is called exactly once
// per BeginLookup, on success and on error alike.
func (s *Session) FinishLookup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookupInFlight = false
}

// StagePendingIdentity records the customer and vehicle resolved by a plate
// lookup without touching the form state. The identity is merged only when
// the operator proceeds with it (ApplyLookup).
func (s *Session) StagePendingIdentity(customer Customer, vehicle Vehicle) error {
	if err := vehicle.Plate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted || s.closed {
		return ErrSessionFinished
	}
	s.pendingCustomer = &customer
	s.pendingVehicle = &vehicle
	return nil
}

// PendingIdentity returns the staged customer and vehicle, or nils when no
// lookup has resolved an identity.
func (s *Session) PendingIdentity() (*Customer, *Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingCustomer, s.pendingVehicle
}

// RequireDecision records that an open order conflict was found for the
// staged identity and an explicit operator decision is now mandatory.
func (s *Session) RequireDecision(existingOrderNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted || s.closed {
		return ErrSessionFinished
	}
	if s.pendingCustomer == nil || s.pendingVehicle == nil {
		return ErrNoPendingIdentity
	}
	if existingOrderNumber == "" {
		return errs.NewValueIsRequiredError("existing order number")
	}

	s.awaitingDecision = true
	s.pendingOrderNumber = existingOrderNumber
	return nil
}

// AwaitingDecision reports whether a conflict decision is pending.
func (s *Session) AwaitingDecision() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.awaitingDecision
}

// PendingOrderNumber returns the conflicting open order's number while a
// decision is pending, empty otherwise.
func (s *Session) PendingOrderNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingOrderNumber
}

// ApplyLookup merges a lookup resolution into the session.
//
// Outcome handling:
//   - LookupNotFound: no identity is merged; the wizard advances to the
//     customer-type step with no pre-fill.
//   - LookupFoundNoConflict: the resolved identity is merged, vehicle fields
//     are pre-filled, the customer type is pre-selected (defaulting to
//     personal when unknown), ForceNewOrder stays false, and the wizard
//     advances.
//   - LookupFoundWithConflict: a decision is mandatory. StartNewOrder merges
//     like the no-conflict case but sets ForceNewOrder. ContinueExistingOrder
//     closes the wizard without mutating the form; the existing order's
//     number is retained for host navigation.
func (s *Session) ApplyLookup(outcome LookupOutcome, decision ConflictDecision) error {
	if err := outcome.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted || s.closed {
		return ErrSessionFinished
	}

	switch outcome.Kind() {
	case LookupNotFound:
		s.clearPending()
		s.advanceToCustomerType()
		return nil

	case LookupFoundNoConflict:
		s.mergeIdentity(outcome, false)
		s.clearPending()
		s.advanceToCustomerType()
		return nil

	case LookupFoundWithConflict:
		switch decision {
		case ContinueExistingOrder:
			s.closed = true
			s.orderNumber = outcome.ExistingOrderNumber()
			s.clearPending()
			return nil
		case StartNewOrder:
			s.mergeIdentity(outcome, true)
			s.clearPending()
			s.advanceToCustomerType()
			return nil
		default:
			return ErrDecisionIsRequired
		}

	default:
		return errs.NewValueIsInvalidError("lookup outcome")
	}
}

// BeginSubmit marks a submission as in flight. A repeated submit while one
// is pending is rejected.
func (s *Session) BeginSubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted || s.closed {
		return ErrSessionFinished
	}
	if s.submitInFlight {
		return ErrSubmitAlreadyInFlight
	}
	s.submitInFlight = true
	return nil
}

// FinishSubmit clears the submission in-flight guard, re-enabling retry
// after a failed attempt.
func (s *Session) FinishSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitInFlight = false
}

// MarkSubmitted records a successful submission and moves the session to its
// terminal state.
func (s *Session) MarkSubmitted(orderNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted || s.closed {
		return ErrSessionFinished
	}
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("order number")
	}

	s.submitted = true
	s.orderNumber = orderNumber
	return nil
}

// Submitted reports whether the wizard ended with a created order.
func (s *Session) Submitted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitted
}

// Closed reports whether the wizard ended by continuing with an existing
// open order.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Finished reports whether the wizard reached either terminal outcome.
func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitted || s.closed
}

// OrderNumber returns the created order's number after submission, or the
// existing order's number after a continue-existing decision.
func (s *Session) OrderNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderNumber
}

// mergeIdentity merges a resolved identity into the form: sets the customer
// and vehicle, pre-fills still-empty vehicle fields, and pre-selects the
// customer type. Callers hold s.mu.
func (s *Session) mergeIdentity(outcome LookupOutcome, forceNew bool) {
	customer := outcome.Customer()
	vehicle := outcome.Vehicle()
	s.form.Customer = &customer
	s.form.Vehicle = &vehicle
	s.form.ForceNewOrder = forceNew

	if customer.CustomerType.IsSpecified() {
		s.form.CustomerType = customer.CustomerType
	} else {
		s.form.CustomerType = Personal
	}

	if s.form.Extracted.Plate == "" {
		s.form.Extracted.Plate = vehicle.Plate.String()
	}
	if s.form.Extracted.Make == "" {
		s.form.Extracted.Make = vehicle.Make
	}
	if s.form.Extracted.Model == "" {
		s.form.Extracted.Model = vehicle.Model
	}
}

// prepareExtractedData fills still-empty extracted fields from the resolved
// identities. Running it repeatedly never duplicates or overwrites input the
// operator has already edited. Callers hold s.mu.
func (s *Session) prepareExtractedData() {
	if c := s.form.Customer; c != nil {
		if s.form.Extracted.Name == "" {
			s.form.Extracted.Name = c.FullName
		}
		if s.form.Extracted.Phone == "" {
			s.form.Extracted.Phone = c.Phone
		}
	}
	if v := s.form.Vehicle; v != nil {
		if s.form.Extracted.Plate == "" {
			s.form.Extracted.Plate = v.Plate.String()
		}
		if s.form.Extracted.Make == "" {
			s.form.Extracted.Make = v.Make
		}
		if s.form.Extracted.Model == "" {
			s.form.Extracted.Model = v.Model
		}
	}
}

// advanceToCustomerType moves a session still on the lookup step forward.
// Lookup resolution can only ever drive the 0 to 1 transition. Callers hold
// s.mu.
func (s *Session) advanceToCustomerType() {
	if s.step == StepLookup {
		s.step = StepCustomerType
	}
}

// clearPending drops the staged identity and any pending conflict. Callers
// hold s.mu.
func (s *Session) clearPending() {
	s.pendingCustomer = nil
	s.pendingVehicle = nil
	s.awaitingDecision = false
	s.pendingOrderNumber = ""
}
