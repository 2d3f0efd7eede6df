package calculator

import "errors"

var (
	// ErrNoOperator is returned when equals is pressed before any operator.
	// The state is left untouched and the caller may carry on.
	ErrNoOperator = errors.New("select an operator first")

	// ErrInvalidDigit is returned for a digit event outside 0-9.
	ErrInvalidDigit = errors.New("digit out of range")

	// ErrUnknownOperator is returned for an operator event or label that is not + - * /.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrUnknownButton is returned for a keypad label or event kind with no meaning.
	ErrUnknownButton = errors.New("unknown button label")
)
