package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog(t *testing.T) Catalog {
	t.Helper()

	var countries []Country
	for _, c := range []struct {
		name string
		pop  int64
		code string
	}{
		{"Belgium", 11500000, "BE"},
		{"Austria", 8900000, "AT"},
		{"Belarus", 9200000, "BY"},
		{"Australia", 26000000, "AU"},
		{"Isle of Man", 84000, "IM"},
	} {
		country, err := NewCountry(c.name, c.pop, c.code)
		require.NoError(t, err)
		countries = append(countries, country)
	}
	return NewCatalog(countries)
}

func TestVisible(t *testing.T) {
	catalog := sampleCatalog(t)

	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{"empty filter returns whole catalog", "", []string{"Australia", "Austria", "Belarus", "Belgium", "Isle of Man"}},
		{"lower case match", "bel", []string{"Belarus", "Belgium"}},
		{"upper case match", "AUST", []string{"Australia", "Austria"}},
		{"match inside name", "of m", []string{"Isle of Man"}},
		{"no match", "xyz", []string{PlaceholderNoResults}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Visible(catalog, tt.filter)
			assert.Equal(t, tt.want, got.Rows())
		})
	}
}

func TestVisible_EmptyCatalog(t *testing.T) {
	t.Run("empty filter shows loading placeholder", func(t *testing.T) {
		got := Visible(Catalog{}, "")
		assert.True(t, got.IsPlaceholder())
		assert.Equal(t, []string{PlaceholderLoading}, got.Rows())
	})

	t.Run("non-empty filter shows no results", func(t *testing.T) {
		got := Visible(Catalog{}, "xyz")
		assert.Equal(t, PlaceholderNoResults, got.Placeholder())
	})
}

func TestVisible_IsSubsequenceOfCatalog(t *testing.T) {
	catalog := sampleCatalog(t)

	for _, filter := range []string{"", "a", "A", "us", "ia", "e", "man"} {
		got := Visible(catalog, filter)
		if got.IsPlaceholder() {
			continue
		}

		// every visible country appears in catalog order
		all := catalog.Countries()
		pos := 0
		for _, c := range got.Countries() {
			for pos < len(all) && all[pos] != c {
				pos++
			}
			require.Less(t, pos, len(all), "filter %q produced %q out of order", filter, c.Name)
			pos++
		}
	}
}

func TestVisible_Idempotent(t *testing.T) {
	catalog := sampleCatalog(t)

	first := Visible(catalog, "bel")
	second := Visible(catalog, "bel")
	assert.Equal(t, first, second)
}

func TestVisibleList_At(t *testing.T) {
	catalog := sampleCatalog(t)
	visible := Visible(catalog, "bel")

	country, err := visible.At(1)
	require.NoError(t, err)
	assert.Equal(t, "Belgium", country.Name)
	assert.Equal(t, int64(11500000), country.Population)

	_, err = visible.At(2)
	assert.ErrorIs(t, err, ErrSelectionNotFound)

	_, err = visible.At(-1)
	assert.ErrorIs(t, err, ErrSelectionNotFound)

	_, err = Visible(catalog, "xyz").At(0)
	assert.ErrorIs(t, err, ErrSelectionNotFound)
}
