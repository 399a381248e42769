package ports

import (
	"context"

	"intake/internal/core/domain/model/wizard"
)

// OrderCreateResult is the structured answer of the order-creation endpoint.
// A transport failure is reported as an error by the port instead, so a
// server-side rejection is never confused with an unreachable server.
type OrderCreateResult struct {
	Succeeded   bool
	OrderNumber string

	// Message is the server-provided failure detail when Succeeded is false.
	// It may be empty; callers substitute a generic fallback then.
	Message string
}

// OrderCreator submits an assembled order payload to the tracker backend.
type OrderCreator interface {
	// CreateOrder performs one independent creation attempt. It applies no
	// client-side deduplication or retry.
	CreateOrder(ctx context.Context, payload wizard.Payload) (OrderCreateResult, error)
}
