// Package wizard provides the domain model for the service-order intake wizard.
// It implements the Session aggregate root that drives the multi-step flow from
// an optional plate lookup through customer-type selection to order submission.
//
// The package includes:
//   - Session: The aggregate root that owns the form state and step transitions
//   - FormState: Accumulated field values and resolved lookup identities
//   - Step: A state machine over the three wizard steps
//   - LookupOutcome: A tagged variant describing plate-lookup resolution
//   - SubmissionResult: A tagged variant describing order-creation outcomes
//   - Payload: The assembled order-creation request built from FormState
//
// Key business rules:
//   - The lookup step is always optional and can be skipped
//   - A duplicate open order found during lookup requires an explicit user
//     decision before the wizard may proceed
//   - Backward navigation never validates and never clears entered values
//   - At most one lookup and one submission may be in flight per session
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package wizard
