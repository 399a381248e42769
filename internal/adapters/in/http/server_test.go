package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	intakehttp "intake/internal/adapters/in/http"
	"intake/internal/adapters/out/memstore"
	"intake/internal/core/application/usecases/commands"
	"intake/internal/core/application/usecases/queries"
	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/domain/services"
	"intake/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTracker is a canned-response implementation of the tracker ports.
type stubTracker struct {
	match       *ports.PlateMatch
	matchErr    error
	openOrder   string
	openErr     error
	createRes   ports.OrderCreateResult
	createErr   error
	createCalls int
}

func (s *stubTracker) CheckPlate(context.Context, kernel.Plate) (*ports.PlateMatch, error) {
	return s.match, s.matchErr
}

func (s *stubTracker) CheckOpenOrder(context.Context, ports.OpenOrderCheck) (string, error) {
	return s.openOrder, s.openErr
}

func (s *stubTracker) CreateOrder(context.Context, wizard.Payload) (ports.OrderCreateResult, error) {
	s.createCalls++
	return s.createRes, s.createErr
}

func newTestEcho(tracker *stubTracker) *echo.Echo {
	store := memstore.NewSessionStore()
	validator := services.NewStepValidator()

	server := intakehttp.NewServer(
		commands.NewOpenWizardCommandHandler(store),
		commands.NewAdvanceStepCommandHandler(store, validator),
		commands.NewRetreatStepCommandHandler(store),
		commands.NewResetWizardCommandHandler(store),
		commands.NewLookupPlateCommandHandler(store, tracker),
		commands.NewResolveLookupCommandHandler(store, tracker),
		commands.NewDecideConflictCommandHandler(store),
		commands.NewSubmitOrderCommandHandler(store, validator, tracker),
		queries.NewGetWizardStateQueryHandler(store),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (int, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

func openWizard(t *testing.T, e *echo.Echo) string {
	t.Helper()
	code, body := doJSON(t, e, http.MethodPost, "/api/v1/wizards", "")
	require.Equal(t, http.StatusCreated, code)
	id, ok := body["id"].(string)
	require.True(t, ok)
	return id
}

func TestServer_Health(t *testing.T) {
	e := newTestEcho(&stubTracker{})
	code, body := doJSON(t, e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body["status"])
}

func TestServer_FullFlow_NotFoundPlate(t *testing.T) {
	tracker := &stubTracker{createRes: ports.OrderCreateResult{Succeeded: true, OrderNumber: "SO-1001"}}
	e := newTestEcho(tracker)
	id := openWizard(t, e)

	code, body := doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/lookup",
		`{"plate":"ab123cd"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["found"])
	assert.Equal(t, "CustomerType", body["step_name"])

	code, body = doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/advance",
		`{"customer_type_step":{"customer_type":"personal","personal_subtype":"owner"}}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ExtractedData", body["step_name"])

	code, body = doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/submit",
		`{"extracted_data_step":{"name":"Jamie Mercer","phone":"+15550100","priority":"high"}}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["submitted"])
	assert.Equal(t, "SO-1001", body["order_number"])

	// session is terminal now
	code, _ = doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/advance", "")
	assert.Equal(t, http.StatusConflict, code)
}

func TestServer_Lookup_FoundWithConflict_ContinueExisting(t *testing.T) {
	plate, err := kernel.NewPlate("XY999ZZ")
	require.NoError(t, err)
	tracker := &stubTracker{
		match: &ports.PlateMatch{
			Customer: wizard.Customer{ID: 42, FullName: "Jamie Mercer", CustomerType: wizard.Personal},
			Vehicle:  wizard.Vehicle{Plate: plate, Make: "Toyota", Model: "Corolla"},
		},
		openOrder: "SO-2077",
	}
	e := newTestEcho(tracker)
	id := openWizard(t, e)

	code, body := doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/lookup",
		`{"plate":"XY999ZZ"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["found"])

	code, body = doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/resolve", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["decision_required"])
	assert.Equal(t, "SO-2077", body["existing_order_number"])

	code, body = doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/decision",
		`{"decision":"continue-existing"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["closed"])
	assert.Equal(t, "SO-2077", body["order_number"])

	// the closed session is still readable until idle eviction removes it
	code, body = doJSON(t, e, http.MethodGet, "/api/v1/wizards/"+id, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["closed"])
	assert.Equal(t, "SO-2077", body["order_number"])
}

func TestServer_Decision_WithoutPendingConflict(t *testing.T) {
	e := newTestEcho(&stubTracker{})
	id := openWizard(t, e)

	code, _ := doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/decision",
		`{"decision":"start-new"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestServer_Decision_InvalidValue(t *testing.T) {
	e := newTestEcho(&stubTracker{})
	id := openWizard(t, e)

	code, _ := doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/decision",
		`{"decision":"maybe"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestServer_Lookup_TrackerDown(t *testing.T) {
	e := newTestEcho(&stubTracker{matchErr: assert.AnError})
	id := openWizard(t, e)

	code, _ := doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/lookup",
		`{"plate":"AB123CD"}`)
	assert.Equal(t, http.StatusBadGateway, code)
}

func TestServer_Lookup_EmptyPlate(t *testing.T) {
	e := newTestEcho(&stubTracker{})
	id := openWizard(t, e)

	code, _ := doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/lookup",
		`{"plate":"  "}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestServer_Advance_ValidationErrors(t *testing.T) {
	e := newTestEcho(&stubTracker{})
	id := openWizard(t, e)

	// past the lookup step first
	code, _ := doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/advance", "")
	require.Equal(t, http.StatusOK, code)

	code, body := doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/advance",
		`{"customer_type_step":{"customer_type":"company"}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, false, body["valid"])
	require.Len(t, body["errors"], 1)
}

func TestServer_Submit_ValidationFailureSkipsTracker(t *testing.T) {
	tracker := &stubTracker{}
	e := newTestEcho(tracker)
	id := openWizard(t, e)

	doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/advance", "")
	doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/advance",
		`{"customer_type_step":{"customer_type":"personal","personal_subtype":"driver"}}`)

	code, body := doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/submit", "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, false, body["valid"])
	assert.Zero(t, tracker.createCalls)
}

func TestServer_Submit_TrackerRejection(t *testing.T) {
	tracker := &stubTracker{createRes: ports.OrderCreateResult{Message: "duplicate order"}}
	e := newTestEcho(tracker)
	id := openWizard(t, e)

	doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/advance", "")
	doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/advance",
		`{"customer_type_step":{"customer_type":"personal","personal_subtype":"owner"}}`)

	code, resp := doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/submit",
		`{"extracted_data_step":{"name":"Jamie Mercer","phone":"+15550100"}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, false, resp["submitted"])
	assert.Equal(t, "duplicate order", resp["message"])

	// the session stays open so the corrected order can be resubmitted
	code, _ = doJSON(t, e, http.MethodGet, "/api/v1/wizards/"+id, "")
	assert.Equal(t, http.StatusOK, code)
}

func TestServer_Submit_TransportErrorAllowsRetry(t *testing.T) {
	tracker := &stubTracker{createErr: assert.AnError}
	e := newTestEcho(tracker)
	id := openWizard(t, e)

	doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/advance", "")
	doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/advance",
		`{"customer_type_step":{"customer_type":"personal","personal_subtype":"owner"}}`)

	body := `{"extracted_data_step":{"name":"Jamie Mercer","phone":"+15550100"}}`
	code, resp := doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/submit", body)
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, false, resp["submitted"])

	tracker.createErr = nil
	tracker.createRes = ports.OrderCreateResult{Succeeded: true, OrderNumber: "SO-1002"}
	code, resp = doJSON(t, e, http.MethodPost, "/api/v1/wizards/"+id+"/submit", body)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "SO-1002", resp["order_number"])
}

func TestServer_GetWizardState(t *testing.T) {
	e := newTestEcho(&stubTracker{})
	id := openWizard(t, e)

	code, body := doJSON(t, e, http.MethodGet, "/api/v1/wizards/"+id, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, id, body["id"])
	assert.Equal(t, "Lookup", body["step_name"])
	assert.Equal(t, float64(3), body["total_steps"])
}

func TestServer_UnknownSession(t *testing.T) {
	e := newTestEcho(&stubTracker{})

	code, _ := doJSON(t, e, http.MethodGet, "/api/v1/wizards/"+kernel.NewUUID().String(), "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestServer_MalformedSessionID(t *testing.T) {
	e := newTestEcho(&stubTracker{})

	code, _ := doJSON(t, e, http.MethodGet, "/api/v1/wizards/not-a-uuid", "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}
