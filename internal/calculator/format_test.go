package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{15, "15"},
		{-7, "-7"},
		{0, "0"},
		{math.Copysign(0, -1), "-0"},
		{0.5, "0.5"},
		{2.25, "2.25"},
		{1e21, "1000000000000000000000"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, FormatNumber(tt.in))
	}
}

func TestFormatResult(t *testing.T) {
	require.Equal(t, "Result: 15", FormatResult(15))
	require.Equal(t, "Result: inf", FormatResult(math.Inf(1)))
}
