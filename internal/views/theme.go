package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// calculatorTheme is the default theme with a larger text size for the keypad labels
type calculatorTheme struct {
	fyne.Theme
	textSize float32
}

// NewTheme returns the default theme with body text drawn at textSize
func NewTheme(textSize float32) fyne.Theme {
	return &calculatorTheme{Theme: theme.DefaultTheme(), textSize: textSize}
}

func (t *calculatorTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText {
		return t.textSize
	}
	return t.Theme.Size(name)
}
