package main

import (
	"context"
	"log"
	"runtime"
	"sync/atomic"

	"world-countries/internal/config"
	"world-countries/internal/controllers"
	"world-countries/internal/logger"
	"world-countries/internal/services"
	"world-countries/internal/shutdown"
	"world-countries/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const AppVersion = "1.0.0"

// Application ties the Fyne app to the MVC components
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.MainController
	view       *views.MainView

	countryService *services.CountryService
	shutdown       *shutdown.Manager
	running        atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := NewApplication(ctx, config.Load())
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}

// NewApplication creates and wires the application
func NewApplication(ctx context.Context, cfg config.Config) (*Application, error) {
	app.SetMetadata(fyne.AppMetadata{
		ID:      cfg.AppID,
		Name:    cfg.AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(cfg.AppID)

	window := fyneApp.NewWindow(cfg.AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()

	appLogger := logger.NewConsoleLogger(cfg.LogLevel)
	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
		"log_level":  cfg.LogLevel.String(),
	})

	countryService := services.NewCountryService(services.Options{
		Endpoint: cfg.Endpoint,
		Timeout:  cfg.Timeout,
	}, appLogger)

	// fyne.Do is the only path from the loader goroutine into widget state
	mainController := controllers.NewMainController(countryService, fyne.Do, appLogger)
	mainView := views.NewMainView(window)
	mainController.SetMainView(mainView)

	appCtx, appCancel := context.WithCancel(ctx)

	application := &Application{
		fyneApp:        fyneApp,
		window:         window,
		logger:         appLogger,
		controller:     mainController,
		view:           mainView,
		countryService: countryService,
		shutdown:       shutdown.NewManager(appLogger),
		ctx:            appCtx,
		cancel:         appCancel,
	}

	application.setupWindowEvents()
	application.setupShutdown()

	return application, nil
}

// Run shows the window, starts the catalog load and blocks in the Fyne loop
func (app *Application) Run() error {
	app.logger.Info("Application", "starting UI", nil)

	app.view.Show()
	app.view.FocusSearch()
	app.controller.Start(app.ctx)

	app.running.Store(true)
	app.fyneApp.Run()
	app.running.Store(false)

	app.shutdown.Shutdown()
	app.logger.Info("Application", "terminated", nil)
	return nil
}

func (app *Application) setupWindowEvents() {
	app.window.SetOnClosed(func() {
		app.logger.Info("Application", "window closed", nil)
		app.controller.Shutdown()
	})
}

// setupShutdown registers components in start order; the manager stops them
// in reverse, quitting the Fyne loop last. On a signal the loop is still
// running and has to be asked to stop.
func (app *Application) setupShutdown() {
	app.shutdown.Register(shutdown.Func(func() {
		if app.running.Load() {
			fyne.Do(app.fyneApp.Quit)
		}
	}))
	app.shutdown.Register(shutdown.Func(app.cancel))
	app.shutdown.Register(app.controller)
	app.shutdown.Listen()
}
