package controllers

import (
	"errors"
	"fmt"
	"sync"

	"keypad-calc/internal/calculator"
	"keypad-calc/internal/logger"
)

const component = "CalculatorController"

// Event names emitted by the controller
const (
	EventEvaluated = "evaluated"
	EventRejected  = "rejected"
)

// EventHandler receives controller events. Handlers run synchronously on the caller's
// goroutine, which for the GUI is the fyne event loop.
type EventHandler func(data interface{}) error

// DisplayView is the part of the window the controller writes to
type DisplayView interface {
	SetDisplay(text string)
}

// Evaluation is the payload of EventEvaluated
type Evaluation struct {
	Expression string
	Operator   calculator.Operator
	Left       float64
	Right      float64
	Display    string
}

// SessionStats counts what happened since start-up
type SessionStats struct {
	Events      int
	Evaluations int
	Rejected    int
}

// CalculatorController owns the calculator state and routes keypad events through the reducer
type CalculatorController struct {
	logger logger.Logger

	mu    sync.RWMutex
	state calculator.State
	stats SessionStats
	view  DisplayView

	eventHandlers map[string][]EventHandler
	eventMu       sync.RWMutex
}

// NewCalculatorController creates a controller holding a fresh calculator
func NewCalculatorController(log logger.Logger) *CalculatorController {
	return &CalculatorController{
		logger:        log,
		state:         calculator.New(),
		eventHandlers: make(map[string][]EventHandler),
	}
}

// SetView attaches the display and brings it in line with the current state
func (cc *CalculatorController) SetView(view DisplayView) {
	cc.mu.Lock()
	cc.view = view
	display := cc.state.Display
	cc.mu.Unlock()

	if view != nil {
		view.SetDisplay(display)
	}
}

// Dispatch applies one keypad event. ErrNoOperator leaves the display untouched and is
// logged as a warning; any other error is a wiring bug and is logged as an error.
func (cc *CalculatorController) Dispatch(ev calculator.Event) error {
	cc.mu.Lock()
	before := cc.state
	cc.stats.Events++

	if ev.Kind == calculator.EqualsPressed && before.HasPending() {
		cc.logger.Debug(component, "evaluating", map[string]interface{}{
			"left":     before.LeftText,
			"right":    before.RightText,
			"operator": before.Pending.String(),
		})
	}

	next, err := calculator.Reduce(before, ev)
	if err != nil {
		cc.stats.Rejected++
		cc.mu.Unlock()
		return cc.reject(ev, before, err)
	}

	cc.state = next
	view := cc.view
	if ev.Kind == calculator.EqualsPressed {
		cc.stats.Evaluations++
	}
	cc.mu.Unlock()

	if view != nil {
		view.SetDisplay(next.Display)
	}

	if ev.Kind == calculator.EqualsPressed {
		cc.emitEvent(EventEvaluated, Evaluation{
			Expression: before.Expression(),
			Operator:   before.Pending,
			Left:       before.LeftValue,
			Right:      before.RightValue,
			Display:    next.Display,
		})
	}
	return nil
}

// Press parses a keypad label and dispatches it
func (cc *CalculatorController) Press(label string) error {
	ev, err := calculator.ParseButton(label)
	if err != nil {
		cc.logger.Error(component, err, map[string]interface{}{"label": label})
		return err
	}
	return cc.Dispatch(ev)
}

func (cc *CalculatorController) reject(ev calculator.Event, s calculator.State, err error) error {
	fields := map[string]interface{}{
		"event": ev.String(),
		"left":  s.LeftText,
	}

	if errors.Is(err, calculator.ErrNoOperator) {
		cc.logger.Warning(component, "select an operator first", fields)
	} else {
		cc.logger.Error(component, err, fields)
	}

	cc.emitEvent(EventRejected, err)
	return fmt.Errorf("dispatch %s: %w", ev, err)
}

// State returns a copy of the current calculator state
func (cc *CalculatorController) State() calculator.State {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.state
}

// Stats returns the session counters
func (cc *CalculatorController) Stats() SessionStats {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.stats
}

// AddEventListener registers handler for eventType
func (cc *CalculatorController) AddEventListener(eventType string, handler EventHandler) {
	cc.eventMu.Lock()
	defer cc.eventMu.Unlock()

	cc.eventHandlers[eventType] = append(cc.eventHandlers[eventType], handler)
}

func (cc *CalculatorController) emitEvent(eventType string, data interface{}) {
	cc.eventMu.RLock()
	handlers := cc.eventHandlers[eventType]
	cc.eventMu.RUnlock()

	for _, handler := range handlers {
		if err := handler(data); err != nil {
			cc.logger.Error(component, err, map[string]interface{}{"event_type": eventType})
		}
	}
}

// Shutdown logs the session summary
func (cc *CalculatorController) Shutdown() {
	stats := cc.Stats()
	cc.logger.Info(component, "session finished", map[string]interface{}{
		"events":      stats.Events,
		"evaluations": stats.Evaluations,
		"rejected":    stats.Rejected,
	})
}
