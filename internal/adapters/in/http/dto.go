package http

import (
	"intake/internal/core/application/usecases/commands"
	"intake/internal/core/application/usecases/queries"
	"intake/internal/core/domain/model/wizard"
)

// Error is the uniform error body of the wizard API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type openWizardResponse struct {
	ID string `json:"id"`
}

type customerTypeBody struct {
	CustomerType     string `json:"customer_type"`
	PersonalSubtype  string `json:"personal_subtype"`
	OrganizationName string `json:"organization_name"`
	TaxNumber        string `json:"tax_number"`
}

type extractedDataBody struct {
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	Address           string `json:"address"`
	Description       string `json:"description"`
	EstimatedDuration string `json:"estimated_duration"`
	Priority          string `json:"priority"`
	Plate             string `json:"plate"`
	Make              string `json:"make"`
	Model             string `json:"model"`
}

type advanceRequest struct {
	CustomerType  *customerTypeBody  `json:"customer_type_step,omitempty"`
	ExtractedData *extractedDataBody `json:"extracted_data_step,omitempty"`
}

type stepResponse struct {
	Step     int      `json:"step"`
	StepName string   `json:"step_name"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
}

type resetRequest struct {
	Step int `json:"step"`
}

type lookupRequest struct {
	Plate string `json:"plate"`
}

type customerBody struct {
	ID           int64  `json:"id"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	CustomerType string `json:"customer_type"`
}

type vehicleBody struct {
	Plate string `json:"plate"`
	Make  string `json:"make"`
	Model string `json:"model"`
}

type lookupResponse struct {
	Found    bool          `json:"found"`
	Step     int           `json:"step"`
	StepName string        `json:"step_name"`
	Customer *customerBody `json:"customer,omitempty"`
	Vehicle  *vehicleBody  `json:"vehicle,omitempty"`
}

type resolveResponse struct {
	Step                int    `json:"step"`
	StepName            string `json:"step_name"`
	DecisionRequired    bool   `json:"decision_required"`
	ExistingOrderNumber string `json:"existing_order_number,omitempty"`
}

type decisionRequest struct {
	Decision string `json:"decision"`
}

type decisionResponse struct {
	Step        int    `json:"step"`
	StepName    string `json:"step_name"`
	Closed      bool   `json:"closed"`
	OrderNumber string `json:"order_number,omitempty"`
}

type submitRequest struct {
	ExtractedData *extractedDataBody `json:"extracted_data_step,omitempty"`
}

type submitResponse struct {
	Valid       bool     `json:"valid"`
	Errors      []string `json:"errors,omitempty"`
	Submitted   bool     `json:"submitted"`
	OrderNumber string   `json:"order_number,omitempty"`
	Message     string   `json:"message,omitempty"`
}

type formStateBody struct {
	CustomerType     string        `json:"customer_type"`
	PersonalSubtype  string        `json:"personal_subtype"`
	OrganizationName string        `json:"organization_name"`
	TaxNumber        string        `json:"tax_number"`
	Customer         *customerBody `json:"customer,omitempty"`
	Vehicle          *vehicleBody  `json:"vehicle,omitempty"`
	ForceNewOrder    bool          `json:"force_new_order"`

	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	Address           string `json:"address"`
	Description       string `json:"description"`
	EstimatedDuration string `json:"estimated_duration"`
	Priority          string `json:"priority"`
	Plate             string `json:"plate"`
	Make              string `json:"make"`
	Model             string `json:"model"`
}

type wizardStateResponse struct {
	ID         string `json:"id"`
	Step       int    `json:"step"`
	StepName   string `json:"step_name"`
	TotalSteps int    `json:"total_steps"`

	Form formStateBody `json:"form"`

	AwaitingDecision    bool   `json:"awaiting_decision"`
	ExistingOrderNumber string `json:"existing_order_number,omitempty"`

	Submitted   bool   `json:"submitted"`
	Closed      bool   `json:"closed"`
	OrderNumber string `json:"order_number,omitempty"`
}

func toCustomerBody(c *wizard.Customer) *customerBody {
	if c == nil {
		return nil
	}
	return &customerBody{
		ID:           c.ID,
		FullName:     c.FullName,
		Phone:        c.Phone,
		CustomerType: c.CustomerType.String(),
	}
}

func toVehicleBody(v *wizard.Vehicle) *vehicleBody {
	if v == nil {
		return nil
	}
	return &vehicleBody{
		Plate: v.Plate.String(),
		Make:  v.Make,
		Model: v.Model,
	}
}

func enumName(s string) string {
	// wire names use "unknown" only internally; unselected fields serialize
	// as empty strings
	if s == "unknown" {
		return ""
	}
	return s
}

func toFormStateBody(form wizard.FormState) formStateBody {
	return formStateBody{
		CustomerType:      enumName(form.CustomerType.String()),
		PersonalSubtype:   enumName(form.PersonalSubtype.String()),
		OrganizationName:  form.OrganizationName,
		TaxNumber:         form.TaxNumber,
		Customer:          toCustomerBody(form.Customer),
		Vehicle:           toVehicleBody(form.Vehicle),
		ForceNewOrder:     form.ForceNewOrder,
		Name:              form.Extracted.Name,
		Phone:             form.Extracted.Phone,
		Email:             form.Extracted.Email,
		Address:           form.Extracted.Address,
		Description:       form.Extracted.Description,
		EstimatedDuration: form.Extracted.EstimatedDuration,
		Priority:          enumName(form.Extracted.Priority.String()),
		Plate:             form.Extracted.Plate,
		Make:              form.Extracted.Make,
		Model:             form.Extracted.Model,
	}
}

func toWizardStateResponse(resp queries.GetWizardStateQueryResponse) wizardStateResponse {
	return wizardStateResponse{
		ID:                  resp.ID.String(),
		Step:                resp.Step.Ordinal(),
		StepName:            resp.StepName,
		TotalSteps:          resp.TotalSteps,
		Form:                toFormStateBody(resp.Form),
		AwaitingDecision:    resp.AwaitingDecision,
		ExistingOrderNumber: resp.ExistingOrderNumber,
		Submitted:           resp.Submitted,
		Closed:              resp.Closed,
		OrderNumber:         resp.OrderNumber,
	}
}

func toCustomerTypeInput(body *customerTypeBody) (*commands.CustomerTypeInput, error) {
	if body == nil {
		return nil, nil
	}

	customerType, err := wizard.ParseCustomerType(body.CustomerType)
	if err != nil {
		return nil, err
	}
	subtype, err := wizard.ParsePersonalSubtype(body.PersonalSubtype)
	if err != nil {
		return nil, err
	}

	return &commands.CustomerTypeInput{
		CustomerType:     customerType,
		PersonalSubtype:  subtype,
		OrganizationName: body.OrganizationName,
		TaxNumber:        body.TaxNumber,
	}, nil
}

func toExtractedDataInput(body *extractedDataBody) (*commands.ExtractedDataInput, error) {
	if body == nil {
		return nil, nil
	}

	priority, err := wizard.ParsePriority(body.Priority)
	if err != nil {
		return nil, err
	}

	return &commands.ExtractedDataInput{
		Name:              body.Name,
		Phone:             body.Phone,
		Email:             body.Email,
		Address:           body.Address,
		Description:       body.Description,
		EstimatedDuration: body.EstimatedDuration,
		Priority:          priority,
		Plate:             body.Plate,
		Make:              body.Make,
		Model:             body.Model,
	}, nil
}
