// Package calculator is the keypad state machine: one left operand, at most one pending
// operator and one right operand, evaluated with float64 arithmetic on equals.
package calculator

import (
	"errors"
	"fmt"
	"strconv"
)

// State is the whole calculator. It is a value: Reduce returns a new State and never
// mutates its argument.
type State struct {
	LeftText   string
	RightText  string
	LeftValue  float64
	RightValue float64
	Pending    Operator
	Display    string
}

// New returns the start state, showing the prompt
func New() State {
	return State{Display: Prompt}
}

// HasPending reports whether an operator has been chosen
func (s State) HasPending() bool {
	return s.Pending.Valid()
}

// Expression renders the operands and pending operator the way the display shows them
func (s State) Expression() string {
	return s.LeftText + s.Pending.Symbol() + s.RightText
}

// Reduce applies ev to s. On error the returned state equals s.
//
// ErrNoOperator is the only error reachable from the keypad; the others indicate an event
// that was built by hand with an invalid payload.
func Reduce(s State, ev Event) (State, error) {
	switch ev.Kind {
	case DigitPressed:
		return pressDigit(s, ev.Digit)
	case OperatorPressed:
		return pressOperator(s, ev.Operator)
	case EqualsPressed:
		return pressEquals(s)
	default:
		return s, fmt.Errorf("event kind %d: %w", uint8(ev.Kind), ErrUnknownButton)
	}
}

func pressDigit(s State, d int) (State, error) {
	if d < 0 || d > 9 {
		return s, fmt.Errorf("digit %d: %w", d, ErrInvalidDigit)
	}

	digit := strconv.Itoa(d)
	next := s

	if !s.HasPending() {
		next.LeftText += digit
		v, err := parseOperand(next.LeftText)
		if err != nil {
			return s, err
		}
		next.LeftValue = v
		next.Display = next.LeftText
		return next, nil
	}

	next.RightText += digit
	v, err := parseOperand(next.RightText)
	if err != nil {
		return s, err
	}
	next.RightValue = v
	next.Display = next.Expression()
	return next, nil
}

func pressOperator(s State, op Operator) (State, error) {
	if !op.Valid() {
		return s, fmt.Errorf("operator %d: %w", uint8(op), ErrUnknownOperator)
	}

	next := s
	next.Pending = op
	next.Display = next.Expression()
	return next, nil
}

func pressEquals(s State) (State, error) {
	if !s.HasPending() {
		return s, ErrNoOperator
	}

	result, err := s.Pending.Apply(s.LeftValue, s.RightValue)
	if err != nil {
		return s, err
	}

	return State{Display: FormatResult(result)}, nil
}

// parseOperand parses a digit accumulator. Digit strings beyond the float64 range parse
// to +Inf rather than failing.
func parseOperand(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("parse operand %q: %w", text, err)
	}
	return v, nil
}
