package calculator

import (
	"math"
	"strconv"
)

const (
	// Prompt is shown before the first key press
	Prompt = "Please enter your calculation:"

	resultPrefix = "Result: "
)

// FormatNumber renders v in its shortest exact decimal form without exponent.
// Integral values carry no fraction and non-finite values print as inf, -inf and NaN.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatResult renders the display text after an evaluation
func FormatResult(v float64) string {
	return resultPrefix + FormatNumber(v)
}
