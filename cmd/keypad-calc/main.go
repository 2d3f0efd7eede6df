package main

import (
	"fmt"
	"os"
	"runtime"

	"keypad-calc/internal/app"
	"keypad-calc/internal/config"
	"keypad-calc/internal/logger"
)

func main() {
	// CALC_CONFIG names an explicit config file; otherwise the default locations are searched
	cfg, err := config.Load(os.Getenv("CALC_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "keypad-calc: %v\n", err)
		os.Exit(1)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "keypad-calc: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(level, cfg.Log.JSON)

	log.Info("main", "configuration loaded", map[string]interface{}{
		"go_version": runtime.Version(),
		"log_level":  level.String(),
		"json_logs":  cfg.Log.JSON,
	})

	application, err := app.NewApplication(cfg, log)
	if err != nil {
		log.Error("main", fmt.Errorf("application initialization failed: %w", err), nil)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		log.Error("main", fmt.Errorf("application execution failed: %w", err), nil)
		os.Exit(1)
	}

	log.Info("main", "application terminated", nil)
}
