package ports

import (
	"context"

	"intake/internal/core/domain/model/kernel"
)

// OpenOrderCheck describes the order-start existence query sent when the
// operator intends to proceed with a resolved identity.
type OpenOrderCheck struct {
	Plate kernel.Plate

	// OrderType is the kind of order the wizard is about to create.
	OrderType string

	// UseExistingCustomer and CustomerID identify the resolved customer the
	// order would be attached to.
	UseExistingCustomer bool
	CustomerID          int64

	// ForceNew asks the backend to skip duplicate detection.
	ForceNew bool
}

// ConflictChecker queries the tracker backend for an open order that would
// conflict with creating a new one for the same vehicle.
type ConflictChecker interface {
	// CheckOpenOrder returns the conflicting open order's human-readable
	// number, or an empty string when none exists. A non-nil error means
	// the check could not be performed; it never implies either answer.
	CheckOpenOrder(ctx context.Context, check OpenOrderCheck) (string, error)
}
