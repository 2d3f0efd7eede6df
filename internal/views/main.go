package views

import (
	"keypad-calc/internal/calculator"
	"keypad-calc/internal/keymap"
	"keypad-calc/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// MainView is the calculator window content: the display above the keypad
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	display       *components.Display
	keypad        *components.Keypad

	// Set by the application; receives button taps and typed keys alike
	eventHandler func(calculator.Event)
}

// NewMainView builds the view and installs it as the window content
func NewMainView(window fyne.Window) (*MainView, error) {
	keypad, err := components.NewKeypad()
	if err != nil {
		return nil, err
	}

	view := &MainView{
		window:  window,
		display: components.NewDisplay(),
		keypad:  keypad,
	}

	view.buildLayout()
	view.setupEventHandlers()

	return view, nil
}

func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		mv.display.GetContainer(), // top
		nil,
		nil,
		nil,
		mv.keypad.GetContainer(), // center
	)

	mv.window.SetContent(container.NewPadded(mv.mainContainer))
}

// setupEventHandlers routes keypad taps and keyboard input to the same handler
func (mv *MainView) setupEventHandlers() {
	mv.keypad.SetPressHandler(mv.emit)

	canvas := mv.window.Canvas()
	canvas.SetOnTypedRune(func(r rune) {
		if ev, ok := keymap.ForRune(r); ok {
			mv.emit(ev)
		}
	})
	canvas.SetOnTypedKey(func(key *fyne.KeyEvent) {
		if ev, ok := keymap.ForKey(key.Name); ok {
			mv.emit(ev)
		}
	})
}

func (mv *MainView) emit(ev calculator.Event) {
	if mv.eventHandler != nil {
		mv.eventHandler(ev)
	}
}

// SetEventHandler sets the handler for calculator input
func (mv *MainView) SetEventHandler(handler func(calculator.Event)) {
	mv.eventHandler = handler
}

// SetDisplay replaces the display text. It must be called from the fyne event loop,
// which is where keypad events are delivered.
func (mv *MainView) SetDisplay(text string) {
	mv.display.SetText(text)
}

// DisplayText returns what the display currently shows
func (mv *MainView) DisplayText() string {
	return mv.display.Text()
}

// Keypad returns the keypad component
func (mv *MainView) Keypad() *components.Keypad {
	return mv.keypad
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// Show displays the window
func (mv *MainView) Show() {
	mv.window.Show()
}

// Close closes the window from any goroutine
func (mv *MainView) Close() {
	fyne.Do(func() {
		mv.window.Close()
	})
}
