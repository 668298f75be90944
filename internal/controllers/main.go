package controllers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"world-countries/internal/format"
	"world-countries/internal/logger"
	"world-countries/internal/models"
)

const component = "MainController"

// Status bar messages.
const (
	StatusReady          = "Ready."
	StatusLoading        = "Loading country data..."
	StatusLoaded         = "Data loaded successfully."
	StatusTimeout        = "Error: Timeout loading data."
	StatusTransportError = "Error loading data."
	StatusUnexpected     = "An unexpected error occurred."
)

const AlertTitle = "Error"

// View is the surface the controller drives. Implementations are only called
// on the UI thread.
type View interface {
	SetStatus(status string)
	SetRows(rows []string)
	SetPopulation(text string)
	ShowAlert(title, message string)

	SetFilterHandler(handler func(text string))
	SetSelectHandler(handler func(row int))
}

// Loader produces the country catalog. It is called once, off the UI thread.
type Loader interface {
	Load(ctx context.Context) (models.Catalog, error)
}

// Dispatcher runs fn on the UI thread, e.g. fyne.Do.
type Dispatcher func(fn func())

// MainController owns the catalog, the filter text and the load status.
// Every method except Start's background fetch and Shutdown must be called on
// the UI thread.
type MainController struct {
	loader   Loader
	dispatch Dispatcher
	logger   logger.Logger
	mainView View

	catalog models.Catalog
	filter  string
	status  models.LoadStatus
	visible models.VisibleList

	startOnce sync.Once
	loadDone  chan struct{}
	disposed  atomic.Bool
}

// NewMainController creates a new main controller
func NewMainController(loader Loader, dispatch Dispatcher, log logger.Logger) *MainController {
	return &MainController{
		loader:   loader,
		dispatch: dispatch,
		logger:   log,
		status:   models.StatusNotStarted,
		visible:  models.Visible(models.Catalog{}, ""),
		loadDone: make(chan struct{}),
	}
}

// SetMainView associates the view with this controller, connects its input
// events and paints the initial state onto it.
func (mc *MainController) SetMainView(view View) {
	mc.mainView = view
	view.SetFilterHandler(mc.OnFilterChanged)
	view.SetSelectHandler(mc.OnRowSelected)
	view.SetStatus(StatusReady)
	view.SetRows(mc.visible.Rows())
	view.SetPopulation(format.NoPopulation)
}

// Start shows the loading state and launches the single background fetch.
// Calls after the first are ignored.
func (mc *MainController) Start(ctx context.Context) {
	mc.startOnce.Do(func() {
		mc.OnLoadStarted()
		go mc.performLoad(ctx)
	})
}

// LoadDone is closed once the load result has been applied or discarded.
func (mc *MainController) LoadDone() <-chan struct{} {
	return mc.loadDone
}

func (mc *MainController) performLoad(ctx context.Context) {
	catalog, err := mc.loader.Load(ctx)

	if mc.disposed.Load() {
		mc.logger.Debug(component, "discarding load result after shutdown", nil)
		close(mc.loadDone)
		return
	}

	mc.dispatch(func() {
		defer close(mc.loadDone)
		if mc.disposed.Load() {
			mc.logger.Debug(component, "discarding load result after shutdown", nil)
			return
		}
		mc.OnLoadCompleted(catalog, err)
	})
}

// OnLoadStarted moves to Loading and shows the loading placeholder.
func (mc *MainController) OnLoadStarted() {
	if !mc.transition(models.StatusLoading) {
		return
	}

	mc.setStatus(StatusLoading)
	mc.refreshRows()
}

// OnLoadCompleted applies the loader result. On failure the catalog stays
// empty and the user is alerted once.
func (mc *MainController) OnLoadCompleted(catalog models.Catalog, err error) {
	if err != nil {
		if !mc.transition(models.StatusFailed) {
			return
		}
		mc.handleLoadError(err)
		mc.refreshRows()
		return
	}

	if !mc.transition(models.StatusLoaded) {
		return
	}
	mc.catalog = catalog
	mc.refreshRows()
	mc.setStatus(StatusLoaded)

	mc.logger.Info(component, "catalog applied", map[string]interface{}{
		"countries": catalog.Len(),
		"filter":    mc.filter,
		"visible":   len(mc.visible.Countries()),
	})
}

// OnFilterChanged stores the filter and replaces the visible rows.
func (mc *MainController) OnFilterChanged(text string) {
	mc.filter = text
	mc.refreshRows()

	if text == "" || mc.visible.IsPlaceholder() {
		mc.setPopulation(format.NoPopulation)
	}
}

// OnRowSelected shows the population of the country in the given display row.
// Placeholder rows and stale indexes clear the population instead.
func (mc *MainController) OnRowSelected(row int) {
	country, err := mc.visible.At(row)
	if err != nil {
		if !errors.Is(err, models.ErrSelectionNotFound) {
			mc.logger.Error(component, err, nil)
		}
		mc.setPopulation(format.NoPopulation)
		return
	}

	mc.setPopulation(format.Population(country.Population))
}

// Shutdown detaches the controller from the UI. A load still in flight will
// finish but its result is dropped. Safe to call from any goroutine.
func (mc *MainController) Shutdown() {
	if mc.disposed.Swap(true) {
		return
	}
	mc.logger.Info(component, "controller shut down", nil)
}

// Status returns the current load status.
func (mc *MainController) Status() models.LoadStatus {
	return mc.status
}

// Filter returns the current filter text.
func (mc *MainController) Filter() string {
	return mc.filter
}

// Catalog returns the loaded catalog, empty until a successful load.
func (mc *MainController) Catalog() models.Catalog {
	return mc.catalog
}

// Visible returns the rows currently on display.
func (mc *MainController) Visible() models.VisibleList {
	return mc.visible
}

func (mc *MainController) transition(next models.LoadStatus) bool {
	if !mc.status.CanTransition(next) {
		mc.logger.Warning(component, "ignoring invalid status transition", map[string]interface{}{
			"from": mc.status.String(),
			"to":   next.String(),
		})
		return false
	}
	mc.status = next
	return true
}

func (mc *MainController) handleLoadError(err error) {
	kind := models.ClassifyLoadError(err)

	var status, message string
	switch kind {
	case models.LoadErrorTimeout:
		status = StatusTimeout
		message = "The request timed out while loading data. Please try again later."
	case models.LoadErrorTransport:
		status = StatusTransportError
		message = fmt.Sprintf("Failed to load data: %v", err)
	default:
		status = StatusUnexpected
		message = fmt.Sprintf("An unexpected error occurred: %v", err)
	}

	mc.logger.Warning(component, "catalog load failed", map[string]interface{}{
		"kind":  kind.String(),
		"error": err.Error(),
	})

	if mc.mainView != nil {
		mc.mainView.ShowAlert(AlertTitle, message)
	}
	mc.setStatus(status)
}

func (mc *MainController) refreshRows() {
	visible := models.Visible(mc.catalog, mc.filter)
	if mc.status == models.StatusFailed && visible.Placeholder() == models.PlaceholderLoading {
		visible = models.WithPlaceholder(models.PlaceholderUnavailable)
	}
	mc.visible = visible

	if mc.mainView != nil {
		mc.mainView.SetRows(visible.Rows())
	}
}

func (mc *MainController) setStatus(status string) {
	if mc.mainView != nil {
		mc.mainView.SetStatus(status)
	}
}

func (mc *MainController) setPopulation(text string) {
	if mc.mainView != nil {
		mc.mainView.SetPopulation(text)
	}
}
