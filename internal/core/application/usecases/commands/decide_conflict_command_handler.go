package commands

import (
	"context"

	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
)

// DecideConflictResult reports where the wizard ended up after the operator's
// conflict decision. Closed is set when the operator chose to continue the
// existing order; OrderNumber then carries that order's number.
type DecideConflictResult struct {
	Step        wizard.Step
	Closed      bool
	OrderNumber string
}

// DecideConflictCommandHandler applies the operator's open order conflict
// decision to the session.
type DecideConflictCommandHandler struct {
	store ports.SessionStore
}

// NewDecideConflictCommandHandler creates a handler for conflict decisions.
func NewDecideConflictCommandHandler(store ports.SessionStore) DecideConflictCommandHandler {
	return DecideConflictCommandHandler{store: store}
}

// Handle processes the decision.
func (h DecideConflictCommandHandler) Handle(ctx context.Context, cmd DecideConflictCommand) (DecideConflictResult, error) {
	if err := cmd.Validate(); err != nil {
		return DecideConflictResult{}, err
	}

	session, err := h.store.Get(ctx, cmd.SessionID())
	if err != nil {
		return DecideConflictResult{}, err
	}
	if session.Finished() {
		return DecideConflictResult{}, wizard.ErrSessionFinished
	}
	if !session.AwaitingDecision() {
		return DecideConflictResult{}, wizard.ErrNoDecisionPending
	}

	customer, vehicle := session.PendingIdentity()
	if customer == nil || vehicle == nil {
		return DecideConflictResult{}, wizard.ErrNoPendingIdentity
	}

	outcome, err := wizard.NewFoundWithConflictOutcome(*customer, *vehicle, session.PendingOrderNumber())
	if err != nil {
		return DecideConflictResult{}, err
	}
	if err = session.ApplyLookup(outcome, cmd.Decision()); err != nil {
		return DecideConflictResult{}, err
	}
	if err = h.store.Touch(ctx, session.ID()); err != nil {
		return DecideConflictResult{}, err
	}

	return DecideConflictResult{
		Step:        session.Step(),
		Closed:      session.Closed(),
		OrderNumber: session.OrderNumber(),
	}, nil
}
