package calculator

import "fmt"

// Operator is a pending binary operation. The zero value means no operator is pending.
type Operator uint8

const (
	Add Operator = iota + 1
	Subtract
	Multiply
	Divide
)

// Valid reports whether op is one of the four arithmetic operators
func (op Operator) Valid() bool {
	return op >= Add && op <= Divide
}

// Symbol returns the infix form shown in the display, padded with spaces
func (op Operator) Symbol() string {
	switch op {
	case Add:
		return " + "
	case Subtract:
		return " - "
	case Multiply:
		return " * "
	case Divide:
		return " / "
	default:
		return ""
	}
}

func (op Operator) String() string {
	switch op {
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	case Multiply:
		return "Multiply"
	case Divide:
		return "Divide"
	default:
		return "None"
	}
}

// Apply computes left op right with float64 semantics. Division by zero is not guarded.
func (op Operator) Apply(left, right float64) (float64, error) {
	switch op {
	case Add:
		return left + right, nil
	case Subtract:
		return left - right, nil
	case Multiply:
		return left * right, nil
	case Divide:
		return left / right, nil
	default:
		return 0, fmt.Errorf("apply %d: %w", uint8(op), ErrUnknownOperator)
	}
}

// ParseOperator maps a keypad label to its operator
func ParseOperator(label string) (Operator, error) {
	switch label {
	case "+":
		return Add, nil
	case "-":
		return Subtract, nil
	case "*":
		return Multiply, nil
	case "/":
		return Divide, nil
	}
	return 0, fmt.Errorf("operator label %q: %w", label, ErrUnknownOperator)
}
