package components

import (
	"keypad-calc/internal/calculator"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Display shows the calculation in progress or the last result
type Display struct {
	container *fyne.Container
	label     *widget.Label
}

// NewDisplay creates the display showing the start-up prompt
func NewDisplay() *Display {
	label := widget.NewLabelWithStyle(calculator.Prompt, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	label.Wrapping = fyne.TextWrapBreak

	return &Display{
		container: container.NewVBox(
			layout.NewSpacer(),
			label,
			layout.NewSpacer(),
			widget.NewSeparator(),
		),
		label: label,
	}
}

func (d *Display) GetContainer() *fyne.Container {
	return d.container
}

func (d *Display) SetText(text string) {
	d.label.SetText(text)
}

func (d *Display) Text() string {
	return d.label.Text
}
