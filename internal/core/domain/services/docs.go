// Package services provides domain services for the intake wizard. It
// implements business logic that operates on the wizard's form state but
// doesn't naturally belong to the Session aggregate itself.
//
// The package includes:
//   - StepValidator: Per-step validation rules for the wizard's form state
//
// Domain services here are stateless and side-effect free except where their
// contract documents otherwise.
package services
