package wizard

// ExtractedFields holds the order data entered or pre-filled at the final
// wizard step. All fields are free text except Priority.
type ExtractedFields struct {
	Name              string
	Phone             string
	Email             string
	Address           string
	Description       string
	EstimatedDuration string
	Priority          Priority
	Plate             string
	Make              string
	Model             string
}

// FormState holds the values accumulated across the wizard steps together
// with the identities resolved by an optional plate lookup. It is pure data,
// exclusively owned and mutated by the Session aggregate and the step
// validator's documented write-back.
//
// Invariants maintained by the step validator on successful confirmation of
// the customer-type step:
//   - PersonalSubtype is set if and only if CustomerType is Personal
//   - OrganizationName and TaxNumber are set if and only if CustomerType is
//     organizational (company, government, ngo)
type FormState struct {
	CustomerType     CustomerType
	PersonalSubtype  PersonalSubtype
	OrganizationName string
	TaxNumber        string

	// Customer and Vehicle are set only when a plate lookup resolved an
	// existing identity the operator chose to proceed with.
	Customer *Customer
	Vehicle  *Vehicle

	// ForceNewOrder records that the operator chose to create a new order
	// despite an existing open one for the same vehicle.
	ForceNewOrder bool

	Extracted ExtractedFields
}

// StepValidation is the result of validating one wizard step.
// Errors is ordered; the customer-type step surfaces exactly one message
// for the first failing rule, while the extracted-data step joins all
// missing-field complaints into a single combined message.
type StepValidation struct {
	OK     bool
	Errors []string
}

// ValidStep returns a passing validation result.
func ValidStep() StepValidation {
	return StepValidation{OK: true}
}

// InvalidStep returns a failing validation result carrying the given
// ordered error messages.
func InvalidStep(messages ...string) StepValidation {
	return StepValidation{OK: false, Errors: messages}
}
