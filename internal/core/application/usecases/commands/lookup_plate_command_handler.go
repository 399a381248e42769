package commands

import (
	"context"

	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
)

// LookupPlateResult reports what the plate lookup found.
//
// When nothing matched the wizard has already advanced past the lookup step.
// When a match was found the identity is staged on the session and the caller
// must resolve it before the wizard moves on.
type LookupPlateResult struct {
	Found    bool
	Step     wizard.Step
	Customer *wizard.Customer
	Vehicle  *wizard.Vehicle
}

// LookupPlateCommandHandler asks the order tracker whether a plate is known.
//
// A tracker failure is returned as an error and leaves the session exactly
// where it was; it is never folded into a "not found" answer.
type LookupPlateCommandHandler struct {
	store   ports.SessionStore
	checker ports.PlateChecker
}

// NewLookupPlateCommandHandler creates a handler for plate lookups.
func NewLookupPlateCommandHandler(store ports.SessionStore, checker ports.PlateChecker) LookupPlateCommandHandler {
	return LookupPlateCommandHandler{store: store, checker: checker}
}

// Handle processes the lookup request.
func (h LookupPlateCommandHandler) Handle(ctx context.Context, cmd LookupPlateCommand) (LookupPlateResult, error) {
	if err := cmd.Validate(); err != nil {
		return LookupPlateResult{}, err
	}

	session, err := h.store.Get(ctx, cmd.SessionID())
	if err != nil {
		return LookupPlateResult{}, err
	}
	if session.Finished() {
		return LookupPlateResult{}, wizard.ErrSessionFinished
	}

	if err = session.BeginLookup(); err != nil {
		return LookupPlateResult{}, err
	}
	defer session.FinishLookup()

	match, err := h.checker.CheckPlate(ctx, cmd.Plate())
	if err != nil {
		return LookupPlateResult{}, err
	}

	// Remember the entered plate once the tracker has answered so the
	// extracted data step is prefilled even when nothing matches. A tracker
	// failure above must leave the form exactly as it was.
	form := session.FormSnapshot()
	form.Extracted.Plate = cmd.Plate().String()
	if err = session.CommitForm(form); err != nil {
		return LookupPlateResult{}, err
	}

	if match == nil {
		outcome := wizard.NewNotFoundOutcome()
		if err = session.ApplyLookup(outcome, wizard.NoDecision); err != nil {
			return LookupPlateResult{}, err
		}
		if err = h.store.Touch(ctx, session.ID()); err != nil {
			return LookupPlateResult{}, err
		}

		return LookupPlateResult{Found: false, Step: session.Step()}, nil
	}

	if err = session.StagePendingIdentity(match.Customer, match.Vehicle); err != nil {
		return LookupPlateResult{}, err
	}
	if err = h.store.Touch(ctx, session.ID()); err != nil {
		return LookupPlateResult{}, err
	}

	customer, vehicle := session.PendingIdentity()

	return LookupPlateResult{
		Found:    true,
		Step:     session.Step(),
		Customer: customer,
		Vehicle:  vehicle,
	}, nil
}
