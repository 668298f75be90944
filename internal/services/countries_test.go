package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"world-countries/internal/logger"
	"world-countries/internal/models"
)

const sampleBody = `[
	{"name": {"common": "Belgium", "official": "Kingdom of Belgium"}, "population": 11500000, "cca2": "BE"},
	{"name": {"common": "Austria"}, "population": 8900000, "cca2": "AT"},
	{"name": {"common": "Antarctica"}, "population": 0, "cca2": "AQ"}
]`

func newTestService(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *CountryService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewCountryService(Options{
		Endpoint: server.URL + "/v3.1/all?fields=name,population,cca2",
		Timeout:  timeout,
	}, logger.NewNop())
}

func TestLoad_Success(t *testing.T) {
	var gotQuery, gotAccept string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("fields")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBody))
	}, time.Second)

	catalog, err := svc.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "name,population,cca2", gotQuery)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, []models.Country{
		{Name: "Antarctica", Population: 0, Code: "AQ"},
		{Name: "Austria", Population: 8900000, Code: "AT"},
		{Name: "Belgium", Population: 11500000, Code: "BE"},
	}, catalog.Countries())
}

func TestLoad_EmptyArray(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}, time.Second)

	catalog, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, catalog.IsEmpty())
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"server error", http.StatusServiceUnavailable, "down", models.ErrTransport},
		{"not found", http.StatusNotFound, "", models.ErrTransport},
		{"malformed json", http.StatusOK, `[{"name":`, models.ErrUnexpected},
		{"object instead of array", http.StatusOK, `{"status":404}`, models.ErrUnexpected},
		{"missing name", http.StatusOK, `[{"population":1,"cca2":"XX"}]`, models.ErrUnexpected},
		{"missing population", http.StatusOK, `[{"name":{"common":"X"},"cca2":"XX"}]`, models.ErrUnexpected},
		{"missing code", http.StatusOK, `[{"name":{"common":"X"},"population":1}]`, models.ErrUnexpected},
		{"negative population", http.StatusOK, `[{"name":{"common":"X"},"population":-5,"cca2":"XX"}]`, models.ErrUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, time.Second)

			catalog, err := svc.Load(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, catalog.IsEmpty())
		})
	}
}

func TestLoad_Timeout(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, 50*time.Millisecond)

	_, err := svc.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrTimeout)
	assert.Equal(t, models.LoadErrorTimeout, models.ClassifyLoadError(err))
}

func TestLoad_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	svc := NewCountryService(Options{Endpoint: endpoint, Timeout: time.Second}, logger.NewNop())

	_, err := svc.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrTransport)
}

func TestNewCountryService_Defaults(t *testing.T) {
	svc := NewCountryService(Options{}, logger.NewNop())

	assert.Equal(t, "https://restcountries.com/v3.1/all?fields=name,population,cca2", svc.endpoint)
	assert.Equal(t, 15*time.Second, svc.timeout)
	assert.Equal(t, 15*time.Second, svc.client.Timeout)
}
