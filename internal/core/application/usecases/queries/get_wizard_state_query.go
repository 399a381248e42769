// Package queries contains the read-side wizard operations. Queries never
// mutate session state and never touch the tracker backend.
package queries

import (
	"errors"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/pkg/guard"
)

var ErrGetWizardStateQueryIsNotConstructed = errors.New(
	"GetWizardStateQuery must be created via NewGetWizardStateQuery constructor",
)

// GetWizardStateQuery retrieves the full observable state of one wizard
// session: current step, form contents, and any pending conflict decision.
// Used by host applications to render the wizard after a reload.
type GetWizardStateQuery struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWizardStateQuery creates a query for the given session.
func NewGetWizardStateQuery(sessionID kernel.UUID) (GetWizardStateQuery, error) {
	query := GetWizardStateQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setSessionID(sessionID); err != nil {
		return GetWizardStateQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWizardStateQuery) Validate() error {
	return q.guard.Validate(ErrGetWizardStateQueryIsNotConstructed)
}

// SessionID returns the session to read.
func (q GetWizardStateQuery) SessionID() kernel.UUID {
	return q.sessionID
}

func (q *GetWizardStateQuery) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	q.sessionID = sessionID
	return nil
}

// GetWizardStateQueryResponse is the observable state of a wizard session.
type GetWizardStateQueryResponse struct {
	ID         kernel.UUID
	Step       wizard.Step
	StepName   string
	TotalSteps int

	Form wizard.FormState

	AwaitingDecision    bool
	ExistingOrderNumber string

	Submitted   bool
	Closed      bool
	OrderNumber string
}
