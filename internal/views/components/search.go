package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SearchBar holds the country name filter entry
type SearchBar struct {
	container *fyne.Container
	label     *widget.Label
	entry     *widget.Entry

	changeHandler func(string)
}

// NewSearchBar creates a new search bar component
func NewSearchBar() *SearchBar {
	sb := &SearchBar{}
	sb.createComponents()
	sb.buildLayout()
	sb.setupEventHandlers()
	return sb
}

func (sb *SearchBar) createComponents() {
	sb.label = widget.NewLabel("Search Country:")
	sb.entry = widget.NewEntry()
	sb.entry.SetPlaceHolder("Type part of a country name")
}

// buildLayout lets the entry take all width left of the label
func (sb *SearchBar) buildLayout() {
	sb.container = container.NewBorder(nil, nil, sb.label, nil, sb.entry)
}

func (sb *SearchBar) setupEventHandlers() {
	sb.entry.OnChanged = func(text string) {
		if sb.changeHandler != nil {
			sb.changeHandler(text)
		}
	}
}

// SetChangeHandler sets the handler invoked on every edit of the filter text
func (sb *SearchBar) SetChangeHandler(handler func(string)) {
	sb.changeHandler = handler
}

// GetText returns the current filter text
func (sb *SearchBar) GetText() string {
	return sb.entry.Text
}

// GetEntry returns the entry widget, used for focus
func (sb *SearchBar) GetEntry() *widget.Entry {
	return sb.entry
}

// GetContainer returns the search bar container
func (sb *SearchBar) GetContainer() *fyne.Container {
	return sb.container
}
