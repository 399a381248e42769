package queries

import (
	"context"

	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
)

// GetWizardStateQueryHandler reads wizard session state from the store.
type GetWizardStateQueryHandler struct {
	store ports.SessionStore
}

// NewGetWizardStateQueryHandler creates a handler backed by the given session
// store.
func NewGetWizardStateQueryHandler(store ports.SessionStore) GetWizardStateQueryHandler {
	return GetWizardStateQueryHandler{store: store}
}

// Handle returns the session's observable state. Reading does not count as
// activity, so an abandoned session still expires on schedule.
func (h GetWizardStateQueryHandler) Handle(
	ctx context.Context,
	query GetWizardStateQuery,
) (GetWizardStateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWizardStateQueryResponse{}, err
	}

	session, err := h.store.Get(ctx, query.SessionID())
	if err != nil {
		return GetWizardStateQueryResponse{}, err
	}

	step := session.Step()

	return GetWizardStateQueryResponse{
		ID:                  session.ID(),
		Step:                step,
		StepName:            step.String(),
		TotalSteps:          wizard.TotalSteps,
		Form:                session.FormSnapshot(),
		AwaitingDecision:    session.AwaitingDecision(),
		ExistingOrderNumber: session.PendingOrderNumber(),
		Submitted:           session.Submitted(),
		Closed:              session.Closed(),
		OrderNumber:         session.OrderNumber(),
	}, nil
}
