// Package ports defines the contracts between the wizard core and its
// external collaborators: the tracker backend's plate-check, conflict-check
// and order-creation endpoints, and the in-memory session store.
package ports

import (
	"context"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/wizard"
)

// PlateMatch is an existing customer/vehicle pair resolved by the plate-check
// collaborator.
type PlateMatch struct {
	Customer wizard.Customer
	Vehicle  wizard.Vehicle
}

// PlateChecker queries the tracker backend for an existing customer/vehicle
// registered under a plate.
type PlateChecker interface {
	// CheckPlate looks up a normalized plate. A nil match means nothing is
	// registered under the plate. A non-nil error means the check could not
	// be performed (transport or protocol failure); it is never folded into
	// a not-found answer.
	CheckPlate(ctx context.Context, plate kernel.Plate) (*PlateMatch, error)
}
