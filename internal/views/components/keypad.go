package components

import (
	"fmt"

	"keypad-calc/internal/calculator"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// keypadRows is the button arrangement, top to bottom. The last row has "=" spanning
// two cells, then "0" and "/".
var keypadRows = [][]string{
	{"1", "2", "3", "+"},
	{"4", "5", "6", "-"},
	{"7", "8", "9", "*"},
	{"=", "0", "/"},
}

// Keypad is the grid of digit, operator and equals buttons
type Keypad struct {
	container *fyne.Container
	buttons   map[string]*widget.Button
	handler   func(calculator.Event)
}

// NewKeypad builds the keypad. Every label is parsed into the event its button emits;
// a label that is not a calculator key is an error.
func NewKeypad() (*Keypad, error) {
	k := &Keypad{buttons: make(map[string]*widget.Button)}

	rows := make([]fyne.CanvasObject, 0, len(keypadRows))
	for _, labels := range keypadRows {
		cells := make([]fyne.CanvasObject, 0, len(labels))
		for _, label := range labels {
			btn, err := k.newButton(label)
			if err != nil {
				return nil, err
			}
			cells = append(cells, btn)
		}
		rows = append(rows, k.layoutRow(cells))
	}

	k.container = container.NewGridWithRows(len(rows), rows...)
	return k, nil
}

func (k *Keypad) newButton(label string) (*widget.Button, error) {
	ev, err := calculator.ParseButton(label)
	if err != nil {
		return nil, fmt.Errorf("keypad: %w", err)
	}
	if _, dup := k.buttons[label]; dup {
		return nil, fmt.Errorf("keypad: duplicate button %q", label)
	}

	btn := widget.NewButton(label, func() {
		if k.handler != nil {
			k.handler(ev)
		}
	})

	if ev.Kind == calculator.DigitPressed {
		btn.Importance = widget.MediumImportance
	} else {
		btn.Importance = widget.HighImportance
	}

	k.buttons[label] = btn
	return btn, nil
}

// layoutRow gives a short row's first button the width of two cells
func (k *Keypad) layoutRow(cells []fyne.CanvasObject) fyne.CanvasObject {
	if len(cells) == 4 {
		return container.NewGridWithColumns(4, cells...)
	}
	return container.NewGridWithColumns(2,
		cells[0],
		container.NewGridWithColumns(len(cells)-1, cells[1:]...),
	)
}

func (k *Keypad) GetContainer() *fyne.Container {
	return k.container
}

// SetPressHandler sets the callback run for every button tap
func (k *Keypad) SetPressHandler(handler func(calculator.Event)) {
	k.handler = handler
}

// Button returns the button with the given label, or nil
func (k *Keypad) Button(label string) *widget.Button {
	return k.buttons[label]
}
