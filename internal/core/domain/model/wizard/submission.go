package wizard

// Generic user-facing messages used when the order service gives no usable
// detail.
const (
	genericFailureMessage   = "order could not be created"
	genericTransportMessage = "order service is unavailable, please try again"
)

// SubmissionResultKind discriminates the SubmissionResult tagged variant.
type SubmissionResultKind int

const (
	// SubmissionUnknown marks a zero-value result; it is invalid.
	SubmissionUnknown SubmissionResultKind = iota

	// SubmissionSucceeded means the order was created and an order number
	// was returned.
	SubmissionSucceeded

	// SubmissionFailed means the order service rejected the payload with a
	// structured failure message.
	SubmissionFailed

	// SubmissionTransportFailed means no structured response was obtained
	// (network or parse failure). Never confused with SubmissionFailed.
	SubmissionTransportFailed
)

// SubmissionResult is the outcome of one order-creation attempt. It is
// ephemeral: consumed immediately to update the host UI and, on success,
// trigger navigation.
type SubmissionResult struct {
	kind        SubmissionResultKind
	orderNumber string
	message     string
}

// NewSubmissionSuccess creates a successful result carrying the created
// order's number.
func NewSubmissionSuccess(orderNumber string) SubmissionResult {
	return SubmissionResult{kind: SubmissionSucceeded, orderNumber: orderNumber}
}

// NewSubmissionFailure creates a structured-failure result. The message is
// the server-provided one when present, else a generic fallback.
func NewSubmissionFailure(message string) SubmissionResult {
	if message == "" {
		message = genericFailureMessage
	}
	return SubmissionResult{kind: SubmissionFailed, message: message}
}

// NewSubmissionTransportError creates a transport-failure result with a
// generic user-facing message.
func NewSubmissionTransportError() SubmissionResult {
	return SubmissionResult{kind: SubmissionTransportFailed, message: genericTransportMessage}
}

// Kind returns the variant discriminator.
func (r SubmissionResult) Kind() SubmissionResultKind {
	return r.kind
}

// Succeeded reports whether the order was created.
func (r SubmissionResult) Succeeded() bool {
	return r.kind == SubmissionSucceeded
}

// OrderNumber returns the created order's number on success, empty otherwise.
func (r SubmissionResult) OrderNumber() string {
	return r.orderNumber
}

// Message returns the user-facing message for failed attempts, empty on
// success.
func (r SubmissionResult) Message() string {
	return r.message
}

// Payload is the assembled order-creation request built from FormState.
// Extracted fields map 1:1 with empty-string defaults for optional fields
// left blank; Priority falls back to medium when unset. ForceNewOrder is
// meaningful only when true; the outbound adapter omits it from the wire
// representation otherwise.
type Payload struct {
	CustomerName      string
	Phone             string
	Email             string
	Address           string
	Description       string
	EstimatedDuration string
	Priority          string

	Plate        string
	VehicleMake  string
	VehicleModel string

	CustomerType     string
	PersonalSubtype  string
	OrganizationName string
	TaxNumber        string

	UseExistingCustomer bool
	ExistingCustomerID  int64
	ForceNewOrder       bool
}

// BuildPayload assembles the order-creation payload from the form state.
// It performs no validation; callers validate the extracted-data step before
// building. The assembler performs no deduplication or retry, so repeated
// calls with an unchanged form produce independent server-side attempts.
func BuildPayload(form *FormState) Payload {
	payload := Payload{
		CustomerName:      form.Extracted.Name,
		Phone:             form.Extracted.Phone,
		Email:             form.Extracted.Email,
		Address:           form.Extracted.Address,
		Description:       form.Extracted.Description,
		EstimatedDuration: form.Extracted.EstimatedDuration,
		Priority:          Medium.String(),
		Plate:             form.Extracted.Plate,
		VehicleMake:       form.Extracted.Make,
		VehicleModel:      form.Extracted.Model,
		OrganizationName:  form.OrganizationName,
		TaxNumber:         form.TaxNumber,
		ForceNewOrder:     form.ForceNewOrder,
	}

	if form.Extracted.Priority.IsSpecified() {
		payload.Priority = form.Extracted.Priority.String()
	}
	if form.CustomerType.IsSpecified() {
		payload.CustomerType = form.CustomerType.String()
	}
	if form.PersonalSubtype.IsSpecified() {
		payload.PersonalSubtype = form.PersonalSubtype.String()
	}
	if form.Customer != nil {
		payload.UseExistingCustomer = true
		payload.ExistingCustomerID = form.Customer.ID
	}

	return payload
}
