// Package keymap translates keyboard input into calculator events so the keypad can be
// driven without the mouse.
package keymap

import (
	"keypad-calc/internal/calculator"

	"fyne.io/fyne/v2"
)

// ForRune maps a typed character to its event. Digits, the four operator symbols,
// 'x' as multiply and '=' are recognised.
func ForRune(r rune) (calculator.Event, bool) {
	switch {
	case r >= '0' && r <= '9':
		return calculator.DigitEvent(int(r - '0')), true
	case r == 'x' || r == 'X':
		return calculator.OperatorEvent(calculator.Multiply), true
	case r == '=':
		return calculator.EqualsEvent(), true
	}

	op, err := calculator.ParseOperator(string(r))
	if err != nil {
		return calculator.Event{}, false
	}
	return calculator.OperatorEvent(op), true
}

// ForKey maps non-printable keys. Only Return and Enter are bound, both to equals.
func ForKey(name fyne.KeyName) (calculator.Event, bool) {
	switch name {
	case fyne.KeyReturn, fyne.KeyEnter:
		return calculator.EqualsEvent(), true
	}
	return calculator.Event{}, false
}
