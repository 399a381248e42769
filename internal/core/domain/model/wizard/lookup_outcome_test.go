package wizard_test

import (
	"testing"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolvedIdentity(t *testing.T) (wizard.Customer, wizard.Vehicle) {
	t.Helper()

	plate, err := kernel.NewPlate("XY999ZZ")
	require.NoError(t, err)

	customer := wizard.Customer{
		ID:           42,
		FullName:     "Jamie Mercer",
		Phone:        "+36 20 123 4567",
		CustomerType: wizard.Personal,
	}
	vehicle := wizard.Vehicle{
		Plate: plate,
		Make:  "Toyota",
		Model: "Corolla",
	}
	return customer, vehicle
}

func TestLookupOutcome(t *testing.T) {
	t.Run("not found carries no identity", func(t *testing.T) {
		outcome := wizard.NewNotFoundOutcome()

		require.NoError(t, outcome.Validate())
		assert.Equal(t, wizard.LookupNotFound, outcome.Kind())
		assert.False(t, outcome.HasIdentity())
		assert.Empty(t, outcome.ExistingOrderNumber())
	})

	t.Run("found without conflict", func(t *testing.T) {
		customer, vehicle := resolvedIdentity(t)

		outcome, err := wizard.NewFoundNoConflictOutcome(customer, vehicle)

		require.NoError(t, err)
		assert.Equal(t, wizard.LookupFoundNoConflict, outcome.Kind())
		assert.True(t, outcome.HasIdentity())
		assert.Equal(t, int64(42), outcome.Customer().ID)
		assert.Equal(t, "XY999ZZ", outcome.Vehicle().Plate.String())
	})

	t.Run("found with conflict requires an order number", func(t *testing.T) {
		customer, vehicle := resolvedIdentity(t)

		outcome, err := wizard.NewFoundWithConflictOutcome(customer, vehicle, "ORD-1001")
		require.NoError(t, err)
		assert.Equal(t, wizard.LookupFoundWithConflict, outcome.Kind())
		assert.Equal(t, "ORD-1001", outcome.ExistingOrderNumber())

		_, err = wizard.NewFoundWithConflictOutcome(customer, vehicle, "")
		require.Error(t, err)
	})

	t.Run("found outcomes require a constructed plate", func(t *testing.T) {
		customer, _ := resolvedIdentity(t)

		_, err := wizard.NewFoundNoConflictOutcome(customer, wizard.Vehicle{})
		require.Error(t, err)
	})

	t.Run("zero value outcome is invalid", func(t *testing.T) {
		var outcome wizard.LookupOutcome
		require.Error(t, outcome.Validate())
	})
}

func TestConflictDecision(t *testing.T) {
	t.Run("explicit choices are valid", func(t *testing.T) {
		require.NoError(t, wizard.ContinueExistingOrder.Validate())
		require.NoError(t, wizard.StartNewOrder.Validate())
	})

	t.Run("no decision is not a valid choice", func(t *testing.T) {
		require.Error(t, wizard.NoDecision.Validate())
	})

	t.Run("parse requires an explicit choice", func(t *testing.T) {
		decision, err := wizard.ParseConflictDecision("start-new")
		require.NoError(t, err)
		assert.Equal(t, wizard.StartNewOrder, decision)

		decision, err = wizard.ParseConflictDecision("continue-existing")
		require.NoError(t, err)
		assert.Equal(t, wizard.ContinueExistingOrder, decision)

		_, err = wizard.ParseConflictDecision("")
		require.Error(t, err)
	})
}
