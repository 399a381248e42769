package services

import (
	"strings"

	"intake/internal/core/domain/model/wizard"
)

// User-facing validation messages. The customer-type step surfaces exactly
// one of these per attempt, in rule order; the extracted-data step joins its
// complaints into a single combined message.
const (
	MsgCustomerTypeRequired     = "please select a customer type"
	MsgPersonalSubtypeRequired  = "please select owner or driver"
	MsgOrganizationNameRequired = "organization name is required"
	MsgTaxNumberRequired        = "tax number is required"
	MsgNameRequired             = "customer name is required"
	MsgPhoneRequired            = "phone number is required"
)

// StepValidator is a domain service that validates the wizard's form state
// for one step at a time.
//
// Validation policies differ per step and are part of the contract:
//   - The lookup step is always valid (lookup is optional).
//   - The customer-type step applies a first-failure policy with a fixed rule
//     order: missing type, missing subtype, missing organization name,
//     missing tax number. Exactly one message surfaces per attempt.
//   - The extracted-data step checks name and phone together and joins both
//     missing reasons into one combined message rather than short-circuiting.
//
// Validate is a pure function of the form state on failure. On success of
// the customer-type step it writes the trimmed organization values back and
// clears fields that don't apply to the selected type, maintaining the
// FormState invariants.
type StepValidator struct{}

// NewStepValidator creates a new StepValidator instance.
func NewStepValidator() StepValidator {
	return StepValidator{}
}

// Validate applies the given step's rules to the form state.
func (v StepValidator) Validate(step wizard.Step, form *wizard.FormState) wizard.StepValidation {
	switch step {
	case wizard.StepLookup:
		return wizard.ValidStep()
	case wizard.StepCustomerType:
		return v.validateCustomerType(form)
	case wizard.StepExtractedData:
		return v.validateExtractedData(form)
	default:
		return wizard.InvalidStep("unknown wizard step")
	}
}

func (v StepValidator) validateCustomerType(form *wizard.FormState) wizard.StepValidation {
	if !form.CustomerType.IsSpecified() {
		return wizard.InvalidStep(MsgCustomerTypeRequired)
	}

	if form.CustomerType == wizard.Personal {
		if !form.PersonalSubtype.IsSpecified() {
			return wizard.InvalidStep(MsgPersonalSubtypeRequired)
		}

		// write-back: personal customers carry no organization details
		form.OrganizationName = ""
		form.TaxNumber = ""
		return wizard.ValidStep()
	}

	orgName := strings.TrimSpace(form.OrganizationName)
	if orgName == "" {
		return wizard.InvalidStep(MsgOrganizationNameRequired)
	}

	taxNumber := strings.TrimSpace(form.TaxNumber)
	if taxNumber == "" {
		return wizard.InvalidStep(MsgTaxNumberRequired)
	}

	// write-back: trimmed organization details, no personal subtype
	form.OrganizationName = orgName
	form.TaxNumber = taxNumber
	form.PersonalSubtype = wizard.UnknownPersonalSubtype
	return wizard.ValidStep()
}

func (v StepValidator) validateExtractedData(form *wizard.FormState) wizard.StepValidation {
	var missing []string
	if strings.TrimSpace(form.Extracted.Name) == "" {
		missing = append(missing, MsgNameRequired)
	}
	if strings.TrimSpace(form.Extracted.Phone) == "" {
		missing = append(missing, MsgPhoneRequired)
	}

	if len(missing) > 0 {
		return wizard.InvalidStep(strings.Join(missing, ", "))
	}
	return wizard.ValidStep()
}
