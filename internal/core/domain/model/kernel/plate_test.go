package kernel_test

import (
	"strings"
	"testing"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlate(t *testing.T) {
	t.Run("should trim and upper-case input", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"ab123cd", "AB123CD"},
			{"  AB123CD  ", "AB123CD"},
			{"\tab 123 cd\n", "AB 123 CD"},
			{"XY999ZZ", "XY999ZZ"},
		}

		for _, tc := range testCases {
			plate, err := kernel.NewPlate(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, plate.String())
			assert.NoError(t, plate.Validate())
		}
	})

	t.Run("should reject empty input after trimming", func(t *testing.T) {
		for _, input := range []string{"", "   ", "\t\n"} {
			_, err := kernel.NewPlate(input)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})

	t.Run("should reject overlong input", func(t *testing.T) {
		_, err := kernel.NewPlate(strings.Repeat("A", 17))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestPlate_IsEqual(t *testing.T) {
	p1, err := kernel.NewPlate("ab123cd")
	require.NoError(t, err)
	p2, err := kernel.NewPlate(" AB123CD ")
	require.NoError(t, err)
	p3, err := kernel.NewPlate("XY999ZZ")
	require.NoError(t, err)

	assert.True(t, p1.IsEqual(p2))
	assert.False(t, p1.IsEqual(p3))
}

func TestPlate_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var plate kernel.Plate

		err := plate.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrPlateIsNotConstructed)
	})
}
