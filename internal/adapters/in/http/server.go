// Package http exposes the intake wizard over a JSON API. The server is a
// thin adapter: it parses requests into commands and queries, invokes their
// handlers, and maps domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"intake/internal/core/application/usecases/commands"
	"intake/internal/core/application/usecases/queries"
	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	openWizardHandler     commands.OpenWizardCommandHandler
	advanceStepHandler    commands.AdvanceStepCommandHandler
	retreatStepHandler    commands.RetreatStepCommandHandler
	resetWizardHandler    commands.ResetWizardCommandHandler
	lookupPlateHandler    commands.LookupPlateCommandHandler
	resolveLookupHandler  commands.ResolveLookupCommandHandler
	decideConflictHandler commands.DecideConflictCommandHandler
	submitOrderHandler    commands.SubmitOrderCommandHandler

	getWizardStateHandler queries.GetWizardStateQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	openWizardHandler commands.OpenWizardCommandHandler,
	advanceStepHandler commands.AdvanceStepCommandHandler,
	retreatStepHandler commands.RetreatStepCommandHandler,
	resetWizardHandler commands.ResetWizardCommandHandler,
	lookupPlateHandler commands.LookupPlateCommandHandler,
	resolveLookupHandler commands.ResolveLookupCommandHandler,
	decideConflictHandler commands.DecideConflictCommandHandler,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	getWizardStateHandler queries.GetWizardStateQueryHandler,
) *Server {
	return &Server{
		openWizardHandler:     openWizardHandler,
		advanceStepHandler:    advanceStepHandler,
		retreatStepHandler:    retreatStepHandler,
		resetWizardHandler:    resetWizardHandler,
		lookupPlateHandler:    lookupPlateHandler,
		resolveLookupHandler:  resolveLookupHandler,
		decideConflictHandler: decideConflictHandler,
		submitOrderHandler:    submitOrderHandler,
		getWizardStateHandler: getWizardStateHandler,
	}
}

// RegisterRoutes mounts the wizard API on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/wizards", s.OpenWizard)
	api.GET("/wizards/:id", s.GetWizardState)
	api.POST("/wizards/:id/advance", s.AdvanceStep)
	api.POST("/wizards/:id/retreat", s.RetreatStep)
	api.POST("/wizards/:id/reset", s.ResetWizard)
	api.POST("/wizards/:id/lookup", s.LookupPlate)
	api.POST("/wizards/:id/resolve", s.ResolveLookup)
	api.POST("/wizards/:id/decision", s.DecideConflict)
	api.POST("/wizards/:id/submit", s.SubmitOrder)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// OpenWizard handles POST /api/v1/wizards - opens a new wizard session.
func (s *Server) OpenWizard(ctx echo.Context) error {
	sessionID := kernel.NewUUID()

	cmd, err := commands.NewOpenWizardCommand(sessionID)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, err)
	}
	if err = s.openWizardHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, openWizardResponse{ID: sessionID.String()})
}

// GetWizardState handles GET /api/v1/wizards/:id - reads session state.
func (s *Server) GetWizardState(ctx echo.Context) error {
	sessionID, err := parseSessionID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	}

	query, err := queries.NewGetWizardStateQuery(sessionID)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	}

	resp, err := s.getWizardStateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWizardStateResponse(resp))
}

// AdvanceStep handles POST /api/v1/wizards/:id/advance - confirms the current
// step and moves forward.
func (s *Server) AdvanceStep(ctx echo.Context) error {
	sessionID, err := parseSessionID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	}

	var req advanceRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, errors.New("invalid request body"))
	}

	customerType, err := toCustomerTypeInput(req.CustomerType)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	}
	extracted, err := toExtractedDataInput(req.ExtractedData)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	}

	cmd, err := commands.NewAdvanceStepCommand(sessionID, customerType, extracted)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	}

	result, err := s.advanceStepHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}
	if !result.Validation.OK {
		return ctx.JSON(http.StatusUnprocessableEntity, stepResponse{
			Step:     result.Step.Ordinal(),
			StepName: result.Step.String(),
			Valid:    false,
			Errors:   result.Validation.Errors,
		})
	}

	return ctx.JSON(http.StatusOK, stepResponse{
		Step:     result.Step.Ordinal(),
		StepName: result.Step.String(),
		Valid:    true,
	})
}

// RetreatStep handles POST /api/v1/wizards/:id/retreat - moves one step back.
func (s *Server) RetreatStep(ctx echo.Context) error {
	sessionID, err := parseSessionID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	}

	cmd, err := commands.NewRetreatStepCommand(sessionID)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	}

	result, err := s.retreatStepHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stepResponse{
		Step:     result.Step.Ordinal(),
		StepName: result.Step.String(),
		Valid:    true,
	})
}

// ResetWizard handles POST /api/v1/wizards/:id/reset - jumps back to an
// earlier step.
func (s *Server) ResetWizard(ctx echo.Context) error {
	sessionID, err := parseSessionID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	}

	var req resetRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, errors.New("invalid request body"))
	}

	target, err := wizard.StepFromOrdinal(req.Step)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	}

	cmd, err := commands.NewResetWizardCommand(sessionID, target)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	}

	result, err := s.resetWizardHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stepResponse{
		Step:     result.Step.Ordinal(),
		StepName: result.Step.String(),
		Valid:    true,
	})
}

// LookupPlate handles POST /api/v1/wizards/:id/lookup - looks up a plate.
func (s *Server) LookupPlate(ctx echo.Context) error {
	sessionID, err := parseSessionID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	}

	var req lookupRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, errors.New("invalid request body"))
	}

	cmd, err := commands.NewLookupPlateCommand(sessionID, req.Plate)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	}

	result, err := s.lookupPlateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, lookupResponse{
		Found:    result.Found,
		Step:     result.Step.Ordinal(),
		StepName: result.Step.String(),
		Customer: toCustomerBody(result.Customer),
		Vehicle:  toVehicleBody(result.Vehicle),
	})
}

// ResolveLookup handles POST /api/v1/wizards/:id/resolve - checks the staged
// match for an open order conflict.
func (s *Server) ResolveLookup(ctx echo.Context) error {
	sessionID, err := parseSessionID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	}

	cmd, err := commands.NewResolveLookupCommand(sessionID)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	}

	result, err := s.resolveLookupHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resolveResponse{
		Step:                result.Step.Ordinal(),
		StepName:            result.Step.String(),
		DecisionRequired:    result.DecisionRequired,
		ExistingOrderNumber: result.ExistingOrderNumber,
	})
}

// DecideConflict handles POST /api/v1/wizards/:id/decision - applies the
// operator's conflict decision.
func (s *Server) DecideConflict(ctx echo.Context) error {
	sessionID, err := parseSessionID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	}

	var req decisionRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, errors.New("invalid request body"))
	}

	decision, err := wizard.ParseConflictDecision(req.Decision)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	}

	cmd, err := commands.NewDecideConflictCommand(sessionID, decision)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	}

	result, err := s.decideConflictHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, decisionResponse{
		Step:        result.Step.Ordinal(),
		StepName:    result.Step.String(),
		Closed:      result.Closed,
		OrderNumber: result.OrderNumber,
	})
}

// SubmitOrder handles POST /api/v1/wizards/:id/submit - creates the order.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	sessionID, err := parseSessionID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	}

	var req submitRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, errors.New("invalid request body"))
	}

	extracted, err := toExtractedDataInput(req.ExtractedData)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	}

	cmd, err := commands.NewSubmitOrderCommand(sessionID, extracted)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	}

	result, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	if !result.Validation.OK {
		return ctx.JSON(http.StatusUnprocessableEntity, submitResponse{
			Valid:  false,
			Errors: result.Validation.Errors,
		})
	}

	resp := submitResponse{
		Valid:       true,
		Submitted:   result.Submission.Succeeded(),
		OrderNumber: result.Submission.OrderNumber(),
		Message:     result.Submission.Message(),
	}
	switch result.Submission.Kind() {
	case wizard.SubmissionTransportFailed:
		return ctx.JSON(http.StatusBadGateway, resp)
	case wizard.SubmissionFailed:
		return ctx.JSON(http.StatusUnprocessableEntity, resp)
	default:
		return ctx.JSON(http.StatusOK, resp)
	}
}

func parseSessionID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func errorJSON(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

// mapDomainError translates domain and infrastructure errors into status
// codes: unknown sessions are 404, lifecycle conflicts are 409, invalid
// values are 422, and everything else is a failed tracker call, 502.
func mapDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err)
	case errors.Is(err, wizard.ErrSessionFinished),
		errors.Is(err, wizard.ErrLookupAlreadyInFlight),
		errors.Is(err, wizard.ErrSubmitAlreadyInFlight):
		return errorJSON(ctx, http.StatusConflict, err)
	case errors.Is(err, wizard.ErrNoPendingIdentity),
		errors.Is(err, wizard.ErrNoDecisionPending),
		errors.Is(err, wizard.ErrDecisionIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	default:
		return errorJSON(ctx, http.StatusBadGateway, err)
	}
}
