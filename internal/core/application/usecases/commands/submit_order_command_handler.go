package commands

import (
	"context"
	"fmt"

	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/domain/services"
	"intake/internal/core/ports"
	"intake/internal/pkg/errs"
)

// SubmitOrderResult reports the outcome of a submission attempt.
//
// A failed validation leaves Submission empty and the session untouched.
// Otherwise Submission carries success, rejection, or transport failure;
// only a success ends the wizard.
type SubmitOrderResult struct {
	Validation wizard.StepValidation
	Submission wizard.SubmissionResult
}

// SubmitOrderCommandHandler validates the final step, assembles the order
// payload, and sends it to the order tracker.
//
// A tracker transport failure is reported inside the result, not as a
// handler error: the session stays open so the operator can retry.
type SubmitOrderCommandHandler struct {
	store     ports.SessionStore
	validator services.StepValidator
	creator   ports.OrderCreator
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
func NewSubmitOrderCommandHandler(
	store ports.SessionStore,
	validator services.StepValidator,
	creator ports.OrderCreator,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{store: store, validator: validator, creator: creator}
}

// Handle processes the submission.
func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (SubmitOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitOrderResult{}, err
	}

	session, err := h.store.Get(ctx, cmd.SessionID())
	if err != nil {
		return SubmitOrderResult{}, err
	}
	if session.Finished() {
		return SubmitOrderResult{}, wizard.ErrSessionFinished
	}
	if !session.Step().IsLast() {
		return SubmitOrderResult{}, errs.NewValueIsInvalidErrorWithCause("step",
			fmt.Errorf("submission is only allowed from the %s step", wizard.StepExtractedData))
	}

	candidate := session.FormSnapshot()
	applyExtractedDataInput(&candidate, cmd.ExtractedDataInput())

	validation := h.validator.Validate(session.Step(), &candidate)
	if !validation.OK {
		return SubmitOrderResult{Validation: validation}, nil
	}

	if err = session.BeginSubmit(); err != nil {
		return SubmitOrderResult{}, err
	}
	defer session.FinishSubmit()

	if err = session.CommitForm(candidate); err != nil {
		return SubmitOrderResult{}, err
	}

	payload := wizard.BuildPayload(&candidate)

	created, err := h.creator.CreateOrder(ctx, payload)
	if err != nil {
		return SubmitOrderResult{
			Validation: validation,
			Submission: wizard.NewSubmissionTransportError(),
		}, nil
	}

	if !created.Succeeded {
		return SubmitOrderResult{
			Validation: validation,
			Submission: wizard.NewSubmissionFailure(created.Message),
		}, nil
	}

	if err = session.MarkSubmitted(created.OrderNumber); err != nil {
		return SubmitOrderResult{}, err
	}
	if err = h.store.Touch(ctx, session.ID()); err != nil {
		return SubmitOrderResult{}, err
	}

	return SubmitOrderResult{
		Validation: validation,
		Submission: wizard.NewSubmissionSuccess(created.OrderNumber),
	}, nil
}
