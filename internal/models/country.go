package models

import (
	"fmt"
	"slices"
	"strings"
)

// Country is a single immutable country record.
type Country struct {
	Name       string
	Population int64
	Code       string
}

// NewCountry validates and builds a Country.
func NewCountry(name string, population int64, code string) (Country, error) {
	if strings.TrimSpace(name) == "" {
		return Country{}, fmt.Errorf("%w: empty name", ErrInvalidCountry)
	}
	if population < 0 {
		return Country{}, fmt.Errorf("%w: negative population %d for %q", ErrInvalidCountry, population, name)
	}
	if len(code) != 2 {
		return Country{}, fmt.Errorf("%w: code %q for %q is not two letters", ErrInvalidCountry, code, name)
	}

	return Country{Name: name, Population: population, Code: code}, nil
}

// Catalog is the full, name-ordered set of countries held by the process.
// The zero value is an empty catalog.
type Catalog struct {
	countries []Country
}

// NewCatalog copies countries and sorts them by name using a case-sensitive
// ordinal comparison. Equal names keep their input order.
func NewCatalog(countries []Country) Catalog {
	sorted := slices.Clone(countries)
	slices.SortStableFunc(sorted, func(a, b Country) int {
		return strings.Compare(a.Name, b.Name)
	})
	return Catalog{countries: sorted}
}

// Len returns the number of countries in the catalog.
func (c Catalog) Len() int {
	return len(c.countries)
}

// IsEmpty reports whether the catalog holds no countries.
func (c Catalog) IsEmpty() bool {
	return len(c.countries) == 0
}

// Countries returns a copy of the catalog contents in catalog order.
func (c Catalog) Countries() []Country {
	return slices.Clone(c.countries)
}

