package commands_test

import (
	"context"
	"errors"
	"testing"

	"intake/internal/core/application/usecases/commands"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
	"intake/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPlateCommandHandler_Handle_NotFoundAdvances(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)
	cmd, _ := commands.NewLookupPlateCommand(session.ID(), " ab123cd ")

	store := new(MockSessionStore)
	store.On("Get", ctx, session.ID()).Return(session, nil).Once()
	store.On("Touch", ctx, session.ID()).Return(nil).Once()

	checker := new(MockPlateChecker)
	checker.On("CheckPlate", ctx, cmd.Plate()).Return(nil, nil).Once()

	h := commands.NewLookupPlateCommandHandler(store, checker)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Equal(t, wizard.StepCustomerType, result.Step)
	assert.Equal(t, "AB123CD", session.FormSnapshot().Extracted.Plate)
	store.AssertExpectations(t)
	checker.AssertExpectations(t)
}

func TestLookupPlateCommandHandler_Handle_MatchStaysAndStagesIdentity(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)
	customer, vehicle := stagedIdentity(t)
	cmd, _ := commands.NewLookupPlateCommand(session.ID(), "xy999zz")

	store := new(MockSessionStore)
	store.On("Get", ctx, session.ID()).Return(session, nil).Once()
	store.On("Touch", ctx, session.ID()).Return(nil).Once()

	checker := new(MockPlateChecker)
	checker.On("CheckPlate", ctx, cmd.Plate()).
		Return(&ports.PlateMatch{Customer: customer, Vehicle: vehicle}, nil).Once()

	h := commands.NewLookupPlateCommandHandler(store, checker)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, wizard.StepLookup, result.Step)
	require.NotNil(t, result.Customer)
	assert.Equal(t, customer, *result.Customer)
	require.NotNil(t, result.Vehicle)
	assert.Equal(t, vehicle, *result.Vehicle)

	staged, _ := session.PendingIdentity()
	require.NotNil(t, staged)
	assert.Equal(t, customer.ID, staged.ID)
	store.AssertExpectations(t)
	checker.AssertExpectations(t)
}

func TestLookupPlateCommandHandler_Handle_CheckerErrorLeavesSessionInPlace(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)
	before := session.FormSnapshot()
	cmd, _ := commands.NewLookupPlateCommand(session.ID(), "AB123CD")

	store := new(MockSessionStore)
	store.On("Get", ctx, session.ID()).Return(session, nil).Once()

	checker := new(MockPlateChecker)
	checker.On("CheckPlate", ctx, cmd.Plate()).
		Return(nil, errors.New("tracker unavailable")).Once()

	h := commands.NewLookupPlateCommandHandler(store, checker)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, wizard.StepLookup, session.Step())

	// a tracker failure is not "not found": the form keeps its prior values,
	// the entered plate included
	assert.Equal(t, before, session.FormSnapshot())
	assert.Empty(t, session.FormSnapshot().Extracted.Plate)

	// the in-flight guard must be released so a retry is possible
	require.NoError(t, session.BeginLookup())
	store.AssertExpectations(t)
	checker.AssertExpectations(t)
}

func TestNewLookupPlateCommand_EmptyPlate(t *testing.T) {
	session := newTestSession(t)
	_, err := commands.NewLookupPlateCommand(session.ID(), "   ")
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
