package calculator

import (
	"fmt"
	"strconv"
)

// EventKind identifies the three kinds of keypad input
type EventKind uint8

const (
	DigitPressed EventKind = iota + 1
	OperatorPressed
	EqualsPressed
)

func (k EventKind) String() string {
	switch k {
	case DigitPressed:
		return "digit"
	case OperatorPressed:
		return "operator"
	case EqualsPressed:
		return "equals"
	default:
		return "unknown"
	}
}

// Event is one keypad input. Digit is set for DigitPressed, Operator for OperatorPressed.
type Event struct {
	Kind     EventKind
	Digit    int
	Operator Operator
}

func DigitEvent(d int) Event {
	return Event{Kind: DigitPressed, Digit: d}
}

func OperatorEvent(op Operator) Event {
	return Event{Kind: OperatorPressed, Operator: op}
}

func EqualsEvent() Event {
	return Event{Kind: EqualsPressed}
}

func (e Event) String() string {
	switch e.Kind {
	case DigitPressed:
		return strconv.Itoa(e.Digit)
	case OperatorPressed:
		return e.Operator.String()
	case EqualsPressed:
		return "="
	default:
		return e.Kind.String()
	}
}

// ParseButton turns a keypad button label into the event the button emits.
// Labels are "0"-"9", "+", "-", "*", "/" and "=".
func ParseButton(label string) (Event, error) {
	if label == "=" {
		return EqualsEvent(), nil
	}

	if len(label) == 1 && label[0] >= '0' && label[0] <= '9' {
		return DigitEvent(int(label[0] - '0')), nil
	}

	op, err := ParseOperator(label)
	if err != nil {
		return Event{}, fmt.Errorf("button %q: %w", label, ErrUnknownButton)
	}
	return OperatorEvent(op), nil
}
