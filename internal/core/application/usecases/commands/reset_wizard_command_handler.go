package commands

import (
	"context"

	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
)

// ResetWizardResult reports the step the wizard landed on after a reset.
type ResetWizardResult struct {
	Step wizard.Step
}

// ResetWizardCommandHandler jumps the wizard back to an earlier step.
type ResetWizardCommandHandler struct {
	store ports.SessionStore
}

// NewResetWizardCommandHandler creates a handler for wizard resets.
func NewResetWizardCommandHandler(store ports.SessionStore) ResetWizardCommandHandler {
	return ResetWizardCommandHandler{store: store}
}

// Handle processes the reset request.
func (h ResetWizardCommandHandler) Handle(ctx context.Context, cmd ResetWizardCommand) (ResetWizardResult, error) {
	if err := cmd.Validate(); err != nil {
		return ResetWizardResult{}, err
	}

	session, err := h.store.Get(ctx, cmd.SessionID())
	if err != nil {
		return ResetWizardResult{}, err
	}
	if session.Finished() {
		return ResetWizardResult{}, wizard.ErrSessionFinished
	}

	if err = session.ResetToStep(cmd.Target()); err != nil {
		return ResetWizardResult{}, err
	}
	if err = h.store.Touch(ctx, session.ID()); err != nil {
		return ResetWizardResult{}, err
	}

	return ResetWizardResult{Step: session.Step()}, nil
}
