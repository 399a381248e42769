package commands_test

import (
	"context"
	"testing"
	"time"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionStore struct{ mock.Mock }

func (m *MockSessionStore) Add(ctx context.Context, session *wizard.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) Get(ctx context.Context, id kernel.UUID) (*wizard.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wizard.Session), args.Error(1)
}

func (m *MockSessionStore) Touch(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionStore) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionStore) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

type MockPlateChecker struct{ mock.Mock }

func (m *MockPlateChecker) CheckPlate(ctx context.Context, plate kernel.Plate) (*ports.PlateMatch, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.PlateMatch), args.Error(1)
}

type MockConflictChecker struct{ mock.Mock }

func (m *MockConflictChecker) CheckOpenOrder(ctx context.Context, check ports.OpenOrderCheck) (string, error) {
	args := m.Called(ctx, check)
	return args.String(0), args.Error(1)
}

type MockOrderCreator struct{ mock.Mock }

func (m *MockOrderCreator) CreateOrder(ctx context.Context, payload wizard.Payload) (ports.OrderCreateResult, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(ports.OrderCreateResult), args.Error(1)
}

// newTestSession creates a fresh session parked at the lookup step.
func newTestSession(t *testing.T) *wizard.Session {
	t.Helper()
	session, err := wizard.NewSession(kernel.NewUUID())
	require.NoError(t, err)
	return session
}

// sessionAtCustomerType advances a fresh session past the lookup step via a
// not-found resolution.
func sessionAtCustomerType(t *testing.T) *wizard.Session {
	t.Helper()
	session := newTestSession(t)
	require.NoError(t, session.ApplyLookup(wizard.NewNotFoundOutcome(), wizard.NoDecision))
	return session
}

// sessionAtExtractedData advances a fresh session to the final step with a
// personal owner already selected.
func sessionAtExtractedData(t *testing.T) *wizard.Session {
	t.Helper()
	session := sessionAtCustomerType(t)
	form := session.FormSnapshot()
	form.CustomerType = wizard.Personal
	form.PersonalSubtype = wizard.Owner
	require.NoError(t, session.CommitForm(form))
	require.NoError(t, session.Advance())
	return session
}

// stagedIdentity returns a customer and vehicle pair in the shape the plate
// checker resolves them.
func stagedIdentity(t *testing.T) (wizard.Customer, wizard.Vehicle) {
	t.Helper()
	plate, err := kernel.NewPlate("XY999ZZ")
	require.NoError(t, err)
	customer := wizard.Customer{
		ID:           42,
		FullName:     "Jamie Mercer",
		Phone:        "+15550100",
		CustomerType: wizard.Personal,
	}
	vehicle := wizard.Vehicle{Plate: plate, Make: "Toyota", Model: "Corolla"}
	return customer, vehicle
}
