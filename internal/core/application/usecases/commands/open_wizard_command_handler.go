package commands

import (
	"context"

	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
)

// OpenWizardCommandHandler opens intake wizard sessions.
type OpenWizardCommandHandler struct {
	store ports.SessionStore
}

// NewOpenWizardCommandHandler creates a handler backed by the given session
// store.
func NewOpenWizardCommandHandler(store ports.SessionStore) OpenWizardCommandHandler {
	return OpenWizardCommandHandler{store: store}
}

// Handle creates a new session at the lookup step and registers it in the
// store.
func (h OpenWizardCommandHandler) Handle(ctx context.Context, cmd OpenWizardCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	session, err := wizard.NewSession(cmd.SessionID())
	if err != nil {
		return err
	}

	return h.store.Add(ctx, session)
}
