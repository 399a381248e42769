package trackerhttp

// Request and response shapes of the order tracker's JSON API.

type plateCheckRequest struct {
	Plate string `json:"plate"`
}

type customerDTO struct {
	ID           int64  `json:"id"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	CustomerType string `json:"customer_type"`
}

type vehicleDTO struct {
	Plate string `json:"plate"`
	Make  string `json:"make"`
	Model string `json:"model"`
}

type plateCheckResponse struct {
	Found    bool         `json:"found"`
	Customer *customerDTO `json:"customer,omitempty"`
	Vehicle  *vehicleDTO  `json:"vehicle,omitempty"`
}

type openOrderCheckRequest struct {
	Plate               string `json:"plate"`
	OrderType           string `json:"order_type"`
	UseExistingCustomer bool   `json:"use_existing_customer"`
	CustomerID          int64  `json:"customer_id,omitempty"`
	// force_new_order is meaningful only when true; false stays off the wire.
	ForceNewOrder bool `json:"force_new_order,omitempty"`
}

type openOrderCheckResponse struct {
	ExistingOrderNumber string `json:"existing_order_number"`
}

type createOrderRequest struct {
	CustomerName      string `json:"customer_name"`
	Phone             string `json:"phone"`
	Email             string `json:"email,omitempty"`
	Address           string `json:"address,omitempty"`
	Description       string `json:"description,omitempty"`
	EstimatedDuration string `json:"estimated_duration,omitempty"`
	Priority          string `json:"priority"`

	Plate        string `json:"plate"`
	VehicleMake  string `json:"vehicle_make,omitempty"`
	VehicleModel string `json:"vehicle_model,omitempty"`

	CustomerType     string `json:"customer_type"`
	PersonalSubtype  string `json:"personal_subtype,omitempty"`
	OrganizationName string `json:"organization_name,omitempty"`
	TaxNumber        string `json:"tax_number,omitempty"`

	UseExistingCustomer bool  `json:"use_existing_customer,omitempty"`
	ExistingCustomerID  int64 `json:"existing_customer_id,omitempty"`
	// force_new_order is meaningful only when true; false stays off the wire.
	ForceNewOrder bool `json:"force_new_order,omitempty"`
}

type createOrderResponse struct {
	Success     bool   `json:"success"`
	OrderNumber string `json:"order_number"`
	Message     string `json:"message"`
}
