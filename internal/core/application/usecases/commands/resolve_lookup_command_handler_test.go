package commands_test

import (
	"context"
	"errors"
	"testing"

	"intake/internal/core/application/usecases/commands"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sessionWithStagedIdentity(t *testing.T) *wizard.Session {
	t.Helper()
	session := newTestSession(t)
	customer, vehicle := stagedIdentity(t)
	require.NoError(t, session.StagePendingIdentity(customer, vehicle))
	return session
}

func TestResolveLookupCommandHandler_Handle_NoConflictMergesAndAdvances(t *testing.T) {
	ctx := context.Background()
	session := sessionWithStagedIdentity(t)
	customer, vehicle := stagedIdentity(t)
	cmd, _ := commands.NewResolveLookupCommand(session.ID())

	store := new(MockSessionStore)
	store.On("Get", ctx, session.ID()).Return(session, nil).Once()
	store.On("Touch", ctx, session.ID()).Return(nil).Once()

	checker := new(MockConflictChecker)
	checker.On("CheckOpenOrder", ctx, ports.OpenOrderCheck{
		Plate:               vehicle.Plate,
		OrderType:           commands.ServiceOrderType,
		UseExistingCustomer: true,
		CustomerID:          customer.ID,
	}).Return("", nil).Once()

	h := commands.NewResolveLookupCommandHandler(store, checker)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, result.DecisionRequired)
	assert.Equal(t, wizard.StepCustomerType, result.Step)

	form := session.FormSnapshot()
	require.NotNil(t, form.Customer)
	assert.Equal(t, customer.ID, form.Customer.ID)
	assert.False(t, form.ForceNewOrder)
	assert.Equal(t, wizard.Personal, form.CustomerType)
	store.AssertExpectations(t)
	checker.AssertExpectations(t)
}

func TestResolveLookupCommandHandler_Handle_ConflictDemandsDecision(t *testing.T) {
	ctx := context.Background()
	session := sessionWithStagedIdentity(t)
	cmd, _ := commands.NewResolveLookupCommand(session.ID())

	store := new(MockSessionStore)
	store.On("Get", ctx, session.ID()).Return(session, nil).Once()
	store.On("Touch", ctx, session.ID()).Return(nil).Once()

	checker := new(MockConflictChecker)
	checker.On("CheckOpenOrder", ctx, mock.AnythingOfType("ports.OpenOrderCheck")).
		Return("SO-2077", nil).Once()

	h := commands.NewResolveLookupCommandHandler(store, checker)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, result.DecisionRequired)
	assert.Equal(t, "SO-2077", result.ExistingOrderNumber)
	assert.Equal(t, wizard.StepLookup, result.Step)
	assert.True(t, session.AwaitingDecision())
	store.AssertExpectations(t)
	checker.AssertExpectations(t)
}

func TestResolveLookupCommandHandler_Handle_NoStagedIdentity(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)
	cmd, _ := commands.NewResolveLookupCommand(session.ID())

	store := new(MockSessionStore)
	store.On("Get", ctx, session.ID()).Return(session, nil).Once()

	checker := new(MockConflictChecker)

	h := commands.NewResolveLookupCommandHandler(store, checker)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, wizard.ErrNoPendingIdentity)
	checker.AssertNotCalled(t, "CheckOpenOrder", mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}

func TestResolveLookupCommandHandler_Handle_CheckerError(t *testing.T) {
	ctx := context.Background()
	session := sessionWithStagedIdentity(t)
	cmd, _ := commands.NewResolveLookupCommand(session.ID())

	store := new(MockSessionStore)
	store.On("Get", ctx, session.ID()).Return(session, nil).Once()

	checker := new(MockConflictChecker)
	checker.On("CheckOpenOrder", ctx, mock.AnythingOfType("ports.OpenOrderCheck")).
		Return("", errors.New("tracker unavailable")).Once()

	h := commands.NewResolveLookupCommandHandler(store, checker)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, wizard.StepLookup, session.Step())
	assert.False(t, session.AwaitingDecision())
	store.AssertExpectations(t)
	checker.AssertExpectations(t)
}
