package app

import (
	"errors"
	"fmt"

	"keypad-calc/internal/calculator"
	"keypad-calc/internal/controllers"
	"keypad-calc/internal/logger"
	"keypad-calc/internal/views"
)

// Handlers connects view callbacks to the controller
type Handlers struct {
	controller *controllers.CalculatorController
	view       *views.MainView
	logger     logger.Logger

	// confirm asks the user a yes/no question; the view's dialog by default
	confirm func(title, message string, callback func(bool))
}

func NewHandlers(cc *controllers.CalculatorController, view *views.MainView, log logger.Logger) *Handlers {
	return &Handlers{
		controller: cc,
		view:       view,
		logger:     log,
		confirm:    view.ShowConfirm,
	}
}

// HandleEvent forwards keypad input. Rejections are already logged by the controller and
// leave the display as it was, so nothing more is done here.
func (h *Handlers) HandleEvent(ev calculator.Event) {
	if err := h.controller.Dispatch(ev); err != nil && !errors.Is(err, calculator.ErrNoOperator) {
		h.logger.Debug("Handlers", "event dropped", map[string]interface{}{"event": ev.String()})
	}
}

// HandleEvaluated records each completed calculation
func (h *Handlers) HandleEvaluated(data interface{}) error {
	eval, ok := data.(controllers.Evaluation)
	if !ok {
		return fmt.Errorf("invalid data type %T for %s event", data, controllers.EventEvaluated)
	}

	h.logger.Info("Handlers", "calculation", map[string]interface{}{
		"expression": eval.Expression,
		"result":     eval.Display,
	})
	return nil
}

// HandleCloseRequest returns a close intercept asking for confirmation before calling closeFn
func (h *Handlers) HandleCloseRequest(closeFn func()) func() {
	return func() {
		h.logger.Info("Handlers", "window close requested", nil)
		h.confirm("Exit", "Are you sure you want to exit?", func(confirmed bool) {
			if confirmed {
				closeFn()
			}
		})
	}
}
