package keymap

import (
	"testing"

	"keypad-calc/internal/calculator"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/require"
)

func TestForRune(t *testing.T) {
	tests := []struct {
		r    rune
		want calculator.Event
		ok   bool
	}{
		{'0', calculator.DigitEvent(0), true},
		{'9', calculator.DigitEvent(9), true},
		{'+', calculator.OperatorEvent(calculator.Add), true},
		{'-', calculator.OperatorEvent(calculator.Subtract), true},
		{'*', calculator.OperatorEvent(calculator.Multiply), true},
		{'x', calculator.OperatorEvent(calculator.Multiply), true},
		{'/', calculator.OperatorEvent(calculator.Divide), true},
		{'=', calculator.EqualsEvent(), true},
		{'a', calculator.Event{}, false},
		{' ', calculator.Event{}, false},
		{'.', calculator.Event{}, false},
	}

	for _, tt := range tests {
		got, ok := ForRune(tt.r)
		require.Equal(t, tt.ok, ok, "rune %q", tt.r)
		require.Equal(t, tt.want, got, "rune %q", tt.r)
	}
}

func TestForKey(t *testing.T) {
	for _, name := range []fyne.KeyName{fyne.KeyReturn, fyne.KeyEnter} {
		ev, ok := ForKey(name)
		require.True(t, ok)
		require.Equal(t, calculator.EqualsEvent(), ev)
	}

	_, ok := ForKey(fyne.KeyEscape)
	require.False(t, ok)
}
