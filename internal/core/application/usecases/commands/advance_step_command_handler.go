package commands

import (
	"context"

	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/domain/services"
	"intake/internal/core/ports"
)

// AdvanceStepResult reports where the wizard ended up after an advance
// attempt. When Validation fails the step is unchanged and the form state
// untouched.
type AdvanceStepResult struct {
	Step       wizard.Step
	Validation wizard.StepValidation
}

// AdvanceStepCommandHandler confirms the current step and moves the wizard
// forward.
//
// The handler applies the posted field values to a copy of the form state,
// validates the copy, and commits it only on success; a failed validation
// surfaces its ordered error messages without mutating the session.
type AdvanceStepCommandHandler struct {
	store     ports.SessionStore
	validator services.StepValidator
}

// NewAdvanceStepCommandHandler creates a handler for step advancement.
func NewAdvanceStepCommandHandler(store ports.SessionStore, validator services.StepValidator) AdvanceStepCommandHandler {
	return AdvanceStepCommandHandler{store: store, validator: validator}
}

// Handle processes the advance request.
func (h AdvanceStepCommandHandler) Handle(ctx context.Context, cmd AdvanceStepCommand) (AdvanceStepResult, error) {
	if err := cmd.Validate(); err != nil {
		return AdvanceStepResult{}, err
	}

	session, err := h.store.Get(ctx, cmd.SessionID())
	if err != nil {
		return AdvanceStepResult{}, err
	}
	if session.Finished() {
		return AdvanceStepResult{}, wizard.ErrSessionFinished
	}

	candidate := session.FormSnapshot()
	applyCustomerTypeInput(&candidate, cmd.CustomerTypeInput())
	applyExtractedDataInput(&candidate, cmd.ExtractedDataInput())

	validation := h.validator.Validate(session.Step(), &candidate)
	if !validation.OK {
		return AdvanceStepResult{Step: session.Step(), Validation: validation}, nil
	}

	if err = session.CommitForm(candidate); err != nil {
		return AdvanceStepResult{}, err
	}
	if err = session.Advance(); err != nil {
		return AdvanceStepResult{}, err
	}
	if err = h.store.Touch(ctx, session.ID()); err != nil {
		return AdvanceStepResult{}, err
	}

	return AdvanceStepResult{Step: session.Step(), Validation: validation}, nil
}
