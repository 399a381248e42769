package wizard

import "intake/internal/core/domain/model/kernel"

// Customer is the identity of an already-registered customer resolved by a
// plate lookup.
type Customer struct {
	ID           int64
	FullName     string
	Phone        string
	CustomerType CustomerType
}

// Vehicle is the identity of an already-registered vehicle resolved by a
// plate lookup.
type Vehicle struct {
	Plate kernel.Plate
	Make  string
	Model string
}
