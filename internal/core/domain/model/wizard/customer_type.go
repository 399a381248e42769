package wizard

import (
	"fmt"

	"intake/internal/pkg/errs"
)

// CustomerType classifies the customer a service order is created for.
// It is a value object; the zero value means "not selected yet", which is a
// valid intermediate state while the wizard is on its early steps but fails
// step validation when the customer-type step is confirmed.
type CustomerType int

const (
	// UnknownCustomerType means no customer type has been selected.
	UnknownCustomerType CustomerType = iota

	// Personal is an individual customer; requires a PersonalSubtype.
	Personal

	// Company is a commercial organization; requires organization details.
	Company

	// Government is a public-sector organization; requires organization details.
	Government

	// NGO is a non-governmental organization; requires organization details.
	NGO
)

func getCustomerTypeStrings() map[CustomerType]string {
	return map[CustomerType]string{
		Personal:   "personal",
		Company:    "company",
		Government: "government",
		NGO:        "ngo",
	}
}

// Validate checks that the customer type is one of the selectable values.
// UnknownCustomerType is invalid.
func (c CustomerType) Validate() error {
	if _, ok := getCustomerTypeStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("customer type", fmt.Errorf("%d is not a valid customer type", c))
	}
	return nil
}

// IsSpecified reports whether a customer type has been selected.
func (c CustomerType) IsSpecified() bool {
	return c != UnknownCustomerType
}

// IsOrganizational reports whether the type requires organization name and
// tax number.
func (c CustomerType) IsOrganizational() bool {
	return c == Company || c == Government || c == NGO
}

// String returns the wire name of the customer type, or "unknown" when no
// type is selected.
func (c CustomerType) String() string {
	if s, ok := getCustomerTypeStrings()[c]; ok {
		return s
	}
	return "unknown"
}

// ParseCustomerType converts wire text into a CustomerType. Empty input maps
// to UnknownCustomerType without error so that an unselected form field can
// round-trip; any other unrecognized text is invalid.
func ParseCustomerType(s string) (CustomerType, error) {
	if s == "" {
		return UnknownCustomerType, nil
	}
	for ct, name := range getCustomerTypeStrings() {
		if name == s {
			return ct, nil
		}
	}
	return UnknownCustomerType, errs.NewValueIsInvalidErrorWithCause("customer type", fmt.Errorf("%q is not a valid customer type", s))
}

// PersonalSubtype distinguishes whether a personal customer is the vehicle's
// owner or its driver. Required if and only if the customer type is Personal.
type PersonalSubtype int

const (
	// UnknownPersonalSubtype means no subtype has been selected.
	UnknownPersonalSubtype PersonalSubtype = iota

	// Owner is the registered owner of the vehicle.
	Owner

	// Driver drives the vehicle on the owner's behalf.
	Driver
)

func getPersonalSubtypeStrings() map[PersonalSubtype]string {
	return map[PersonalSubtype]string{
		Owner:  "owner",
		Driver: "driver",
	}
}

// Validate checks that the subtype is one of the selectable values.
func (p PersonalSubtype) Validate() error {
	if _, ok := getPersonalSubtypeStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("personal subtype", fmt.Errorf("%d is not a valid personal subtype", p))
	}
	return nil
}

// IsSpecified reports whether a subtype has been selected.
func (p PersonalSubtype) IsSpecified() bool {
	return p != UnknownPersonalSubtype
}

// String returns the wire name of the subtype, or "unknown".
func (p PersonalSubtype) String() string {
	if s, ok := getPersonalSubtypeStrings()[p]; ok {
		return s
	}
	return "unknown"
}

// ParsePersonalSubtype converts wire text into a PersonalSubtype. Empty input
// maps to UnknownPersonalSubtype without error.
func ParsePersonalSubtype(s string) (PersonalSubtype, error) {
	if s == "" {
		return UnknownPersonalSubtype, nil
	}
	for ps, name := range getPersonalSubtypeStrings() {
		if name == s {
			return ps, nil
		}
	}
	return UnknownPersonalSubtype, errs.NewValueIsInvalidErrorWithCause("personal subtype", fmt.Errorf("%q is not a valid personal subtype", s))
}
