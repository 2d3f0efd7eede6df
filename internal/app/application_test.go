package app

import (
	"testing"

	"keypad-calc/internal/calculator"
	"keypad-calc/internal/config"
	"keypad-calc/internal/logger"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *config.Config {
	return &config.Config{
		Log:     config.LogConfig{Level: "info"},
		Window:  config.WindowConfig{Title: "Calculator Example", Width: 400, Height: 500},
		Display: config.DisplayConfig{TextSize: 20},
	}
}

func newTestApplication(t *testing.T, cfg *config.Config) *Application {
	t.Helper()

	a, err := newApplication(test.NewTempApp(t), cfg, logger.NewNop())
	require.NoError(t, err)
	return a
}

func tap(t *testing.T, a *Application, labels ...string) {
	t.Helper()
	for _, label := range labels {
		btn := a.View().Keypad().Button(label)
		require.NotNil(t, btn, label)
		test.Tap(btn)
	}
}

func TestKeypadScenarios(t *testing.T) {
	tests := []struct {
		name    string
		keys    []string
		display string
	}{
		{name: "addition", keys: []string{"1", "2", "+", "3", "="}, display: "Result: 15"},
		{name: "division by zero", keys: []string{"7", "/", "0", "="}, display: "Result: inf"},
		{name: "equals first", keys: []string{"="}, display: calculator.Prompt},
		{name: "equals without operator", keys: []string{"4", "2", "="}, display: "42"},
		{name: "operator overwrite", keys: []string{"5", "+", "-", "3", "="}, display: "Result: 2"},
		{name: "fresh start after result", keys: []string{"2", "*", "3", "=", "8"}, display: "8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApplication(t, defaultConfig())
			tap(t, a, tt.keys...)
			require.Equal(t, tt.display, a.View().DisplayText())
		})
	}
}

func TestKeyboardDrivesCalculator(t *testing.T) {
	a := newTestApplication(t, defaultConfig())

	test.TypeOnCanvas(a.window.Canvas(), "6x7=")
	require.Equal(t, "Result: 42", a.View().DisplayText())
}

func TestEvaluationsAreCounted(t *testing.T) {
	a := newTestApplication(t, defaultConfig())

	tap(t, a, "=", "1", "+", "1", "=")
	stats := a.Controller().Stats()
	require.Equal(t, 5, stats.Events)
	require.Equal(t, 1, stats.Evaluations)
	require.Equal(t, 1, stats.Rejected)
}

func TestHandleEvaluatedRejectsForeignPayload(t *testing.T) {
	a := newTestApplication(t, defaultConfig())

	h := NewHandlers(a.Controller(), a.View(), logger.NewNop())
	require.Error(t, h.HandleEvaluated("not an evaluation"))
}

func TestWindowUsesConfiguredTitle(t *testing.T) {
	cfg := defaultConfig()
	cfg.Window.Title = "Pocket"

	a := newTestApplication(t, cfg)
	require.Equal(t, "Pocket", a.window.Title())
}
