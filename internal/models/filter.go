package models

import (
	"fmt"
	"strings"
)

// Placeholder rows shown instead of country names.
const (
	PlaceholderLoading     = "Loading data, please wait..."
	PlaceholderNoResults   = "No countries found for the given filter."
	PlaceholderUnavailable = "Country data could not be loaded."
)

// VisibleList is the filtered, display-ordered view of a catalog. It holds
// either matching countries or a single placeholder row, never both.
type VisibleList struct {
	countries   []Country
	placeholder string
}

// Visible computes the rows shown for filter over catalog. Matching is a
// case-insensitive substring test and preserves catalog order. The result
// depends only on its inputs.
func Visible(catalog Catalog, filter string) VisibleList {
	if catalog.IsEmpty() && filter == "" {
		return VisibleList{placeholder: PlaceholderLoading}
	}

	needle := strings.ToLower(filter)
	matches := make([]Country, 0, len(catalog.countries))
	for _, country := range catalog.countries {
		if strings.Contains(strings.ToLower(country.Name), needle) {
			matches = append(matches, country)
		}
	}

	if len(matches) == 0 {
		return VisibleList{placeholder: PlaceholderNoResults}
	}
	return VisibleList{countries: matches}
}

// WithPlaceholder returns a list holding only the given placeholder row.
func WithPlaceholder(text string) VisibleList {
	return VisibleList{placeholder: text}
}

// IsPlaceholder reports whether the list shows a placeholder instead of countries.
func (v VisibleList) IsPlaceholder() bool {
	return v.placeholder != ""
}

// Placeholder returns the placeholder text, or "" when countries are shown.
func (v VisibleList) Placeholder() string {
	return v.placeholder
}

// Countries returns the matching countries in display order.
func (v VisibleList) Countries() []Country {
	out := make([]Country, len(v.countries))
	copy(out, v.countries)
	return out
}

// Rows returns the display strings, one per row.
func (v VisibleList) Rows() []string {
	if v.IsPlaceholder() {
		return []string{v.placeholder}
	}

	rows := make([]string, len(v.countries))
	for i, country := range v.countries {
		rows[i] = country.Name
	}
	return rows
}

// At resolves a display row back to its country.
func (v VisibleList) At(row int) (Country, error) {
	if v.IsPlaceholder() {
		return Country{}, fmt.Errorf("%w: row %d is a placeholder", ErrSelectionNotFound, row)
	}
	if row < 0 || row >= len(v.countries) {
		return Country{}, fmt.Errorf("%w: row %d out of range [0,%d)", ErrSelectionNotFound, row, len(v.countries))
	}
	return v.countries[row], nil
}
