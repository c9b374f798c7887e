package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRound verifies fixed-digit rounding with halves going away from zero
func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		digits   int
		expected float64
	}{
		{name: "already exact", value: 2, digits: 5, expected: 2},
		{name: "truncates long fraction", value: 1.0 / 3.0, digits: 5, expected: 0.33333},
		{name: "rounds up past half", value: 2.0 / 3.0, digits: 4, expected: 0.6667},
		{name: "half rounds away from zero", value: 0.5, digits: 0, expected: 1},
		{name: "negative half rounds away from zero", value: -0.5, digits: 0, expected: -1},
		{name: "binary representation half", value: 1.005, digits: 2, expected: 1.01},
		{name: "negative value", value: -1.23456, digits: 3, expected: -1.235},
		{name: "negative digits treated as zero", value: 7.6, digits: -2, expected: 8},
		{name: "large rate", value: 49999.999996, digits: 5, expected: 50000},
		{name: "just below half rounds down", value: 2.0000049999996, digits: 5, expected: 2},
		{name: "just above half rounds up", value: 2.0000050000004, digits: 5, expected: 2.00001},
		{name: "negative binary representation half", value: -1.005, digits: 2, expected: -1.01},
		{name: "below half at zero digits", value: 2.4999999, digits: 0, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Round(tt.value, tt.digits))
		})
	}
}

func TestRound_NonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(Round(math.NaN(), 4)))
	assert.True(t, math.IsInf(Round(math.Inf(1), 4), 1))
	assert.True(t, math.IsInf(Round(math.Inf(-1), 4), -1))
}

func TestRound_Deterministic(t *testing.T) {
	v := 123.456789123
	first := Round(v, 5)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Round(v, 5))
	}
}

func TestApproxEqual(t *testing.T) {
	assert.True(t, ApproxEqual(1, 1, 0))
	assert.True(t, ApproxEqual(100, 100.00001, 1e-6))
	assert.False(t, ApproxEqual(100, 100.01, 1e-6))
	assert.True(t, ApproxEqual(0, 0, 0))
	assert.False(t, ApproxEqual(0, 1, 1e-6))
}
