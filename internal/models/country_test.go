package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCountry(t *testing.T) {
	country, err := NewCountry("Austria", 8900000, "AT")
	require.NoError(t, err)
	assert.Equal(t, Country{Name: "Austria", Population: 8900000, Code: "AT"}, country)

	_, err = NewCountry("Nowhere", 0, "NW")
	require.NoError(t, err, "zero population is valid")

	for _, tc := range []struct {
		name string
		pop  int64
		code string
	}{
		{"", 1, "XX"},
		{"   ", 1, "XX"},
		{"Negative", -1, "NG"},
		{"Short", 1, "S"},
		{"Long", 1, "LNG"},
	} {
		_, err := NewCountry(tc.name, tc.pop, tc.code)
		assert.ErrorIs(t, err, ErrInvalidCountry, "input %+v", tc)
	}
}

func TestNewCatalog_SortsCaseSensitive(t *testing.T) {
	catalog := NewCatalog([]Country{
		{Name: "albania", Code: "AL"},
		{Name: "Zambia", Code: "ZM"},
		{Name: "Austria", Code: "AT"},
		{Name: "Åland Islands", Code: "AX"},
	})

	var names []string
	for _, c := range catalog.Countries() {
		names = append(names, c.Name)
	}
	// ordinal comparison puts upper case before lower case and non-ASCII last
	assert.Equal(t, []string{"Austria", "Zambia", "albania", "Åland Islands"}, names)
}

func TestNewCatalog_DoesNotAliasInput(t *testing.T) {
	input := []Country{{Name: "B", Code: "BB"}, {Name: "A", Code: "AA"}}
	catalog := NewCatalog(input)

	assert.Equal(t, "B", input[0].Name)
	assert.Equal(t, 2, catalog.Len())

	out := catalog.Countries()
	out[0].Name = "changed"
	assert.Equal(t, "A", catalog.Countries()[0].Name)
}

func TestLoadStatus_Transitions(t *testing.T) {
	assert.True(t, StatusNotStarted.CanTransition(StatusLoading))
	assert.False(t, StatusNotStarted.CanTransition(StatusLoaded))
	assert.True(t, StatusLoading.CanTransition(StatusLoaded))
	assert.True(t, StatusLoading.CanTransition(StatusFailed))
	assert.False(t, StatusLoaded.CanTransition(StatusLoading))
	assert.False(t, StatusFailed.CanTransition(StatusLoading))
	assert.True(t, StatusLoaded.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
	assert.Equal(t, "loading", StatusLoading.String())
}
