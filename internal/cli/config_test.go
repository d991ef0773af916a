package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJob(t *testing.T) {
	job, err := DecodeJob(strings.NewReader(`
function: rosenbrock
point: [1.5, 2.0]
precision: 4
validate_finite: true
`))
	require.NoError(t, err)
	assert.Equal(t, "rosenbrock", job.Function)
	assert.Equal(t, []float64{1.5, 2}, job.Point)
	require.NotNil(t, job.Precision)
	assert.Equal(t, 4, *job.Precision)
	assert.True(t, job.ValidateFinite)
}

func TestDecodeJobOptionalFields(t *testing.T) {
	job, err := DecodeJob(strings.NewReader("function: f\n"))
	require.NoError(t, err)
	assert.Nil(t, job.Point)
	assert.Nil(t, job.Precision)
	assert.False(t, job.ValidateFinite)
}

func TestDecodeJobErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"unknown key", "function: f\npoints: [1]\n", "points"},
		{"bad type", "function: f\npoint: nope\n", "invalid job"},
		{"precision range", "function: f\nprecision: 18\n", "precision 18"},
		{"empty", "", "empty document"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeJob(strings.NewReader(tc.input))
			require.ErrorIs(t, err, ErrInvalidJob)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}
