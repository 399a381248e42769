// Package trackerhttp talks to the order tracker backend over its JSON API.
// One client implements all three outbound ports: plate lookup, open-order
// conflict check, and order creation.
package trackerhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
)

const (
	plateCheckPath  = "/api/orders/plate-check/"
	orderStartPath  = "/api/orders/start/"
	orderCreatePath = "/api/orders/create/"

	defaultTimeout = 15 * time.Second
)

// Client is an HTTP implementation of the tracker-facing ports.
type Client struct {
	base string
	http *http.Client
}

var (
	_ ports.PlateChecker    = (*Client)(nil)
	_ ports.ConflictChecker = (*Client)(nil)
	_ ports.OrderCreator    = (*Client)(nil)
)

// NewClient creates a tracker client for the given base URL.
func NewClient(base string) *Client {
	return &Client{
		base: base,
		http: &http.Client{Timeout: defaultTimeout},
	}
}

// NewClientWithHTTP creates a tracker client with a caller-supplied
// http.Client, used by tests and callers needing custom transports.
func NewClientWithHTTP(base string, httpClient *http.Client) *Client {
	return &Client{base: base, http: httpClient}
}

// CheckPlate asks the tracker whether the plate belongs to a registered
// customer and vehicle. A nil match means not found; transport and decode
// failures are returned as errors, never folded into not-found.
func (c *Client) CheckPlate(ctx context.Context, plate kernel.Plate) (*ports.PlateMatch, error) {
	var out plateCheckResponse
	err := c.postJSON(ctx, plateCheckPath, plateCheckRequest{Plate: plate.String()}, &out)
	if err != nil {
		return nil, err
	}

	if !out.Found {
		return nil, nil
	}
	if out.Customer == nil || out.Vehicle == nil {
		return nil, fmt.Errorf("plate check: found without customer or vehicle")
	}

	matchPlate, err := kernel.NewPlate(out.Vehicle.Plate)
	if err != nil {
		return nil, fmt.Errorf("plate check: %w", err)
	}
	customerType, err := wizard.ParseCustomerType(out.Customer.CustomerType)
	if err != nil {
		return nil, fmt.Errorf("plate check: %w", err)
	}

	return &ports.PlateMatch{
		Customer: wizard.Customer{
			ID:           out.Customer.ID,
			FullName:     out.Customer.FullName,
			Phone:        out.Customer.Phone,
			CustomerType: customerType,
		},
		Vehicle: wizard.Vehicle{
			Plate: matchPlate,
			Make:  out.Vehicle.Make,
			Model: out.Vehicle.Model,
		},
	}, nil
}

// CheckOpenOrder asks the tracker whether an open order of the given type
// already exists for the customer and vehicle. An empty order number means
// no conflict.
func (c *Client) CheckOpenOrder(ctx context.Context, check ports.OpenOrderCheck) (string, error) {
	var out openOrderCheckResponse
	err := c.postJSON(ctx, orderStartPath, openOrderCheckRequest{
		Plate:               check.Plate.String(),
		OrderType:           check.OrderType,
		UseExistingCustomer: check.UseExistingCustomer,
		CustomerID:          check.CustomerID,
		ForceNewOrder:       check.ForceNew,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.ExistingOrderNumber, nil
}

// CreateOrder submits the assembled payload. A structured rejection comes
// back as a non-succeeded result; only transport and decode failures are
// errors.
func (c *Client) CreateOrder(ctx context.Context, payload wizard.Payload) (ports.OrderCreateResult, error) {
	body := createOrderRequest{
		CustomerName:        payload.CustomerName,
		Phone:               payload.Phone,
		Email:               payload.Email,
		Address:             payload.Address,
		Description:         payload.Description,
		EstimatedDuration:   payload.EstimatedDuration,
		Priority:            payload.Priority,
		Plate:               payload.Plate,
		VehicleMake:         payload.VehicleMake,
		VehicleModel:        payload.VehicleModel,
		CustomerType:        payload.CustomerType,
		PersonalSubtype:     payload.PersonalSubtype,
		OrganizationName:    payload.OrganizationName,
		TaxNumber:           payload.TaxNumber,
		UseExistingCustomer: payload.UseExistingCustomer,
		ExistingCustomerID:  payload.ExistingCustomerID,
		ForceNewOrder:       payload.ForceNewOrder,
	}

	b, err := json.Marshal(body)
	if err != nil {
		return ports.OrderCreateResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+orderCreatePath, bytes.NewReader(b))
	if err != nil {
		return ports.OrderCreateResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return ports.OrderCreateResult{}, err
	}
	defer resp.Body.Close()

	// The tracker answers rejections with a structured body on 4xx as well
	// as 200, so decode before judging the status code.
	var out createOrderResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ports.OrderCreateResult{}, fmt.Errorf("create order: %s: %w", resp.Status, err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return ports.OrderCreateResult{}, fmt.Errorf("create order failed: %s", resp.Status)
	}

	return ports.OrderCreateResult{
		Succeeded:   out.Success,
		OrderNumber: out.OrderNumber,
		Message:     out.Message,
	}, nil
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s failed: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
