package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// CountryList shows the visible rows and reports row selection
type CountryList struct {
	list *widget.List
	rows []string

	selectHandler func(int)
}

// NewCountryList creates a new country list component
func NewCountryList() *CountryList {
	cl := &CountryList{}
	cl.createComponents()
	cl.setupEventHandlers()
	return cl
}

func (cl *CountryList) createComponents() {
	cl.list = widget.NewList(
		func() int {
			return len(cl.rows)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < 0 || id >= len(cl.rows) {
				return
			}
			item.(*widget.Label).SetText(cl.rows[id])
		},
	)
}

func (cl *CountryList) setupEventHandlers() {
	cl.list.OnSelected = func(id widget.ListItemID) {
		if cl.selectHandler != nil {
			cl.selectHandler(id)
		}
	}
}

// SetSelectHandler sets the handler invoked with the selected row index
func (cl *CountryList) SetSelectHandler(handler func(int)) {
	cl.selectHandler = handler
}

// SetRows replaces every row and clears the selection
func (cl *CountryList) SetRows(rows []string) {
	cl.rows = append([]string(nil), rows...)
	cl.list.UnselectAll()
	cl.list.ScrollToTop()
	cl.list.Refresh()
}

// GetRows returns the rows currently displayed
func (cl *CountryList) GetRows() []string {
	return append([]string(nil), cl.rows...)
}

// Select selects a row as if the user clicked it
func (cl *CountryList) Select(row int) {
	cl.list.Select(row)
}

// GetWidget returns the list widget
func (cl *CountryList) GetWidget() fyne.CanvasObject {
	return cl.list
}
