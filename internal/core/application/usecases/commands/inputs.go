// Package commands contains the wizard operations that modify session state.
// Implements the Command pattern: each operation is a validated command value
// object processed by a dedicated handler. Handlers fetch the session from
// the store, drive the Session aggregate, and talk to the tracker backend
// through the ports interfaces.
package commands

import "intake/internal/core/domain/model/wizard"

// ServiceOrderType is the order kind this wizard creates; it is sent with
// the open-order conflict check so the backend scopes duplicate detection.
const ServiceOrderType = "service"

// CustomerTypeInput carries the field values posted with the customer-type
// step. The values are applied to a copy of the form state and committed
// only when step validation passes, so a failed attempt never leaves a
// partial mutation behind.
type CustomerTypeInput struct {
	CustomerType     wizard.CustomerType
	PersonalSubtype  wizard.PersonalSubtype
	OrganizationName string
	TaxNumber        string
}

// ExtractedDataInput carries the field values posted with the extracted-data
// step. Same copy-validate-commit handling as CustomerTypeInput.
type ExtractedDataInput struct {
	Name              string
	Phone             string
	Email             string
	Address           string
	Description       string
	EstimatedDuration string
	Priority          wizard.Priority
	Plate             string
	Make              string
	Model             string
}

// applyCustomerTypeInput writes the posted customer-type fields into a form
// copy.
func applyCustomerTypeInput(form *wizard.FormState, in *CustomerTypeInput) {
	if in == nil {
		return
	}
	form.CustomerType = in.CustomerType
	form.PersonalSubtype = in.PersonalSubtype
	form.OrganizationName = in.OrganizationName
	form.TaxNumber = in.TaxNumber
}

// applyExtractedDataInput writes the posted extracted-data fields into a
// form copy.
func applyExtractedDataInput(form *wizard.FormState, in *ExtractedDataInput) {
	if in == nil {
		return
	}
	form.Extracted.Name = in.Name
	form.Extracted.Phone = in.Phone
	form.Extracted.Email = in.Email
	form.Extracted.Address = in.Address
	form.Extracted.Description = in.Description
	form.Extracted.EstimatedDuration = in.EstimatedDuration
	form.Extracted.Priority = in.Priority
	form.Extracted.Plate = in.Plate
	form.Extracted.Make = in.Make
	form.Extracted.Model = in.Model
}
