package components

import (
	"testing"

	"keypad-calc/internal/calculator"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/require"
)

func TestKeypadHasFourteenButtons(t *testing.T) {
	test.NewTempApp(t)

	k, err := NewKeypad()
	require.NoError(t, err)

	var count int
	for _, row := range keypadRows {
		for _, label := range row {
			require.NotNil(t, k.Button(label), label)
			count++
		}
	}
	require.Equal(t, 14, count)
	require.Nil(t, k.Button("%"))
}

func TestKeypadButtonsEmitParsedEvents(t *testing.T) {
	test.NewTempApp(t)

	k, err := NewKeypad()
	require.NoError(t, err)

	var got []calculator.Event
	k.SetPressHandler(func(ev calculator.Event) {
		got = append(got, ev)
	})

	for _, label := range []string{"7", "*", "0", "="} {
		test.Tap(k.Button(label))
	}

	require.Equal(t, []calculator.Event{
		calculator.DigitEvent(7),
		calculator.OperatorEvent(calculator.Multiply),
		calculator.DigitEvent(0),
		calculator.EqualsEvent(),
	}, got)
}

func TestKeypadImportance(t *testing.T) {
	test.NewTempApp(t)

	k, err := NewKeypad()
	require.NoError(t, err)

	require.Equal(t, widget.MediumImportance, k.Button("5").Importance)
	for _, label := range []string{"+", "-", "*", "/", "="} {
		require.Equal(t, widget.HighImportance, k.Button(label).Importance, label)
	}
}

func TestKeypadTapWithoutHandler(t *testing.T) {
	test.NewTempApp(t)

	k, err := NewKeypad()
	require.NoError(t, err)
	require.NotPanics(t, func() { test.Tap(k.Button("1")) })
}

func TestDisplay(t *testing.T) {
	test.NewTempApp(t)

	d := NewDisplay()
	require.Equal(t, calculator.Prompt, d.Text())

	d.SetText("12 + 3")
	require.Equal(t, "12 + 3", d.Text())
}
