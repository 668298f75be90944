package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the load status line at the bottom of the window
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready.")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewVBox(
		widget.NewSeparator(),
		sb.statusLabel,
	)
}

// SetStatus updates the status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// PopulationDisplay shows the population of the selected country
type PopulationDisplay struct {
	label *widget.Label
}

// NewPopulationDisplay creates a new population display
func NewPopulationDisplay() *PopulationDisplay {
	return &PopulationDisplay{
		label: widget.NewLabelWithStyle("Population: -", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
	}
}

// SetText updates the population line
func (pd *PopulationDisplay) SetText(text string) {
	pd.label.SetText(text)
}

// GetText returns the population line
func (pd *PopulationDisplay) GetText() string {
	return pd.label.Text
}

// GetWidget returns the label widget
func (pd *PopulationDisplay) GetWidget() fyne.CanvasObject {
	return pd.label
}
