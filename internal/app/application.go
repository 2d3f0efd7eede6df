package app

import (
	"sync/atomic"

	"keypad-calc/internal/config"
	"keypad-calc/internal/controllers"
	"keypad-calc/internal/logger"
	"keypad-calc/internal/shutdown"
	"keypad-calc/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppID      = "io.keypadcalc.calculator"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	view       *views.MainView
	controller *controllers.CalculatorController
	shutdown   *shutdown.Manager
	config     *config.Config
	logger     logger.Logger
	handlers   *Handlers

	// nil unless window.confirm_exit is set
	closeIntercept func()

	// set by whoever closes the master window first
	windowClosed atomic.Bool
}

// NewApplication creates the fyne app and wires the calculator into its window
func NewApplication(cfg *config.Config, log logger.Logger) (*Application, error) {
	return newApplication(app.NewWithID(AppID), cfg, log)
}

func newApplication(fyneApp fyne.App, cfg *config.Config, log logger.Logger) (*Application, error) {
	fyneApp.Settings().SetTheme(views.NewTheme(cfg.Display.TextSize))

	window := fyneApp.NewWindow(cfg.Window.Title)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.Window.Width,
		"window_height": cfg.Window.Height,
		"confirm_exit":  cfg.Window.ConfirmExit,
	})

	view, err := views.NewMainView(window)
	if err != nil {
		return nil, err
	}

	controller := controllers.NewCalculatorController(log)
	shutdownManager := shutdown.NewManager(log, shutdown.DefaultTimeout)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		view:       view,
		controller: controller,
		shutdown:   shutdownManager,
		config:     cfg,
		logger:     log,
	}

	application.setupHandlers()

	// Stopped in reverse: the controller logs its summary before the window closes
	shutdownManager.Register(shutdown.Func(application.closeWindow))
	shutdownManager.Register(controller)

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	handlers := NewHandlers(a.controller, a.view, a.logger)
	a.handlers = handlers

	a.controller.SetView(a.view)
	a.controller.AddEventListener(controllers.EventEvaluated, handlers.HandleEvaluated)
	a.view.SetEventHandler(handlers.HandleEvent)

	if a.config.Window.ConfirmExit {
		a.closeIntercept = handlers.HandleCloseRequest(a.window.Close)
		a.window.SetCloseIntercept(a.closeIntercept)
	}
	a.window.SetOnClosed(func() {
		a.windowClosed.Store(true)
		a.logger.Info("Application", "window closed", nil)
		go a.shutdown.Shutdown()
	})
}

// Run shows the window and blocks in the fyne event loop until the window is closed
// or a termination signal arrives
func (a *Application) Run() error {
	a.shutdown.Listen()

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()
	a.windowClosed.Store(true)

	a.shutdown.Shutdown()
	return nil
}

// closeWindow closes the master window, which ends the event loop. It does nothing when
// the window is already gone.
func (a *Application) closeWindow() {
	if a.windowClosed.CompareAndSwap(false, true) {
		a.view.Close()
	}
}

// Controller exposes the calculator controller
func (a *Application) Controller() *controllers.CalculatorController {
	return a.controller
}

// View exposes the main view
func (a *Application) View() *views.MainView {
	return a.view
}
