package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"world-countries/internal/config"
	"world-countries/internal/controllers"
	"world-countries/internal/logger"
	"world-countries/internal/services"
	"world-countries/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "world-countries-tui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	logOut, closeLog, err := openLog()
	if err != nil {
		return err
	}
	defer closeLog()
	appLogger := logger.NewZerolog(logOut, cfg.LogLevel)

	countryService := services.NewCountryService(services.Options{
		Endpoint: cfg.Endpoint,
		Timeout:  cfg.Timeout,
	}, appLogger)

	model := tui.New(cfg.AppName)
	program := tea.NewProgram(model, tea.WithAltScreen())

	controller := controllers.NewMainController(countryService, tui.Dispatcher(program), appLogger)
	controller.SetMainView(model.Screen())
	controller.Start(context.Background())
	defer controller.Shutdown()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal UI: %w", err)
	}
	return nil
}

// openLog writes logs to a file in the temp dir when LOG_LEVEL or DEBUG is
// set; the terminal itself is owned by the UI.
func openLog() (io.Writer, func(), error) {
	if os.Getenv("LOG_LEVEL") == "" && os.Getenv("DEBUG") == "" {
		return io.Discard, func() {}, nil
	}

	path := filepath.Join(os.TempDir(), "world-countries-tui.log")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
