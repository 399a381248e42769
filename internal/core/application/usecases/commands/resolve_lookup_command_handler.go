package commands

import (
	"context"

	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
)

// ResolveLookupResult reports how a staged plate match was resolved.
//
// Without an open order conflict the identity is merged and the wizard has
// advanced. With a conflict the wizard stays put and DecisionRequired is set
// along with the conflicting order's number.
type ResolveLookupResult struct {
	Step                wizard.Step
	DecisionRequired    bool
	ExistingOrderNumber string
}

// ResolveLookupCommandHandler checks the order tracker for an open service
// order on the session's staged identity and either merges the identity or
// demands an explicit operator decision.
type ResolveLookupCommandHandler struct {
	store   ports.SessionStore
	checker ports.ConflictChecker
}

// NewResolveLookupCommandHandler creates a handler for lookup resolution.
func NewResolveLookupCommandHandler(store ports.SessionStore, checker ports.ConflictChecker) ResolveLookupCommandHandler {
	return ResolveLookupCommandHandler{store: store, checker: checker}
}

// Handle processes the resolution request.
func (h ResolveLookupCommandHandler) Handle(ctx context.Context, cmd ResolveLookupCommand) (ResolveLookupResult, error) {
	if err := cmd.Validate(); err != nil {
		return ResolveLookupResult{}, err
	}

	session, err := h.store.Get(ctx, cmd.SessionID())
	if err != nil {
		return ResolveLookupResult{}, err
	}
	if session.Finished() {
		return ResolveLookupResult{}, wizard.ErrSessionFinished
	}

	customer, vehicle := session.PendingIdentity()
	if customer == nil || vehicle == nil {
		return ResolveLookupResult{}, wizard.ErrNoPendingIdentity
	}

	if err = session.BeginLookup(); err != nil {
		return ResolveLookupResult{}, err
	}
	defer session.FinishLookup()

	orderNumber, err := h.checker.CheckOpenOrder(ctx, ports.OpenOrderCheck{
		Plate:               vehicle.Plate,
		OrderType:           ServiceOrderType,
		UseExistingCustomer: true,
		CustomerID:          customer.ID,
	})
	if err != nil {
		return ResolveLookupResult{}, err
	}

	if orderNumber == "" {
		outcome, err := wizard.NewFoundNoConflictOutcome(*customer, *vehicle)
		if err != nil {
			return ResolveLookupResult{}, err
		}
		if err = session.ApplyLookup(outcome, wizard.NoDecision); err != nil {
			return ResolveLookupResult{}, err
		}
		if err = h.store.Touch(ctx, session.ID()); err != nil {
			return ResolveLookupResult{}, err
		}

		return ResolveLookupResult{Step: session.Step()}, nil
	}

	if err = session.RequireDecision(orderNumber); err != nil {
		return ResolveLookupResult{}, err
	}
	if err = h.store.Touch(ctx, session.ID()); err != nil {
		return ResolveLookupResult{}, err
	}

	return ResolveLookupResult{
		Step:                session.Step(),
		DecisionRequired:    true,
		ExistingOrderNumber: orderNumber,
	}, nil
}
