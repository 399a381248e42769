package commands

import (
	"context"

	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
)

// RetreatStepResult reports the step the wizard is on after a retreat
// attempt. Retreating from the first step is a no-op, not an error.
type RetreatStepResult struct {
	Step wizard.Step
}

// RetreatStepCommandHandler moves the wizard one step backward, keeping all
// entered values intact.
type RetreatStepCommandHandler struct {
	store ports.SessionStore
}

// NewRetreatStepCommandHandler creates a handler for backward navigation.
func NewRetreatStepCommandHandler(store ports.SessionStore) RetreatStepCommandHandler {
	return RetreatStepCommandHandler{store: store}
}

// Handle processes the retreat request.
func (h RetreatStepCommandHandler) Handle(ctx context.Context, cmd RetreatStepCommand) (RetreatStepResult, error) {
	if err := cmd.Validate(); err != nil {
		return RetreatStepResult{}, err
	}

	session, err := h.store.Get(ctx, cmd.SessionID())
	if err != nil {
		return RetreatStepResult{}, err
	}
	if session.Finished() {
		return RetreatStepResult{}, wizard.ErrSessionFinished
	}

	if err = session.Retreat(); err != nil {
		return RetreatStepResult{}, err
	}
	if err = h.store.Touch(ctx, session.ID()); err != nil {
		return RetreatStepResult{}, err
	}

	return RetreatStepResult{Step: session.Step()}, nil
}
