package views

import (
	"world-countries/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// MainView is the desktop window content. All methods must run on the Fyne
// main goroutine; background work reaches it through fyne.Do.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	searchBar     *components.SearchBar
	countryList   *components.CountryList
	population    *components.PopulationDisplay
	statusBar     *components.StatusBar
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.searchBar = components.NewSearchBar()
	mv.countryList = components.NewCountryList()
	mv.population = components.NewPopulationDisplay()
	mv.statusBar = components.NewStatusBar()
}

// buildLayout puts search on top, the list in the centre and the population
// line above the status bar.
func (mv *MainView) buildLayout() {
	bottomArea := container.NewVBox(
		mv.population.GetWidget(),
		mv.statusBar.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		mv.searchBar.GetContainer(), // top
		bottomArea,                  // bottom
		nil,                         // left
		nil,                         // right
		mv.countryList.GetWidget(),  // center
	)

	mv.window.SetContent(mv.mainContainer)
}

// SetFilterHandler sets the handler for search text edits
func (mv *MainView) SetFilterHandler(handler func(string)) {
	mv.searchBar.SetChangeHandler(handler)
}

// SetSelectHandler sets the handler for list row selection
func (mv *MainView) SetSelectHandler(handler func(int)) {
	mv.countryList.SetSelectHandler(handler)
}

// SetStatus updates the status bar message
func (mv *MainView) SetStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// SetRows replaces the list rows
func (mv *MainView) SetRows(rows []string) {
	mv.countryList.SetRows(rows)
}

// SetPopulation updates the population line
func (mv *MainView) SetPopulation(text string) {
	mv.population.SetText(text)
}

// ShowAlert displays a modal message
func (mv *MainView) ShowAlert(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// FocusSearch moves keyboard focus to the search entry
func (mv *MainView) FocusSearch() {
	mv.window.Canvas().Focus(mv.searchBar.GetEntry())
}

// Show displays the view
func (mv *MainView) Show() {
	mv.window.Show()
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetSearchBar returns the search bar component
func (mv *MainView) GetSearchBar() *components.SearchBar {
	return mv.searchBar
}

// GetCountryList returns the country list component
func (mv *MainView) GetCountryList() *components.CountryList {
	return mv.countryList
}

// ViewState is a snapshot of what the window currently shows
type ViewState struct {
	FilterText    string
	Rows          []string
	Population    string
	StatusMessage string
}

// GetViewState returns the current view state
func (mv *MainView) GetViewState() ViewState {
	return ViewState{
		FilterText:    mv.searchBar.GetText(),
		Rows:          mv.countryList.GetRows(),
		Population:    mv.population.GetText(),
		StatusMessage: mv.statusBar.GetStatus(),
	}
}
