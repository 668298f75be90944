package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"world-countries/internal/config"
	"world-countries/internal/logger"
	"world-countries/internal/models"
)

const component = "CountryService"

// maxErrorBody bounds how much of a failed response is kept for the error message.
const maxErrorBody = 512

// Options configures a CountryService. Zero values fall back to the defaults
// in the config package.
type Options struct {
	Endpoint   string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// CountryService fetches the country catalog from the REST Countries API.
type CountryService struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
	logger   logger.Logger
}

// NewCountryService creates a country service
func NewCountryService(opts Options, log logger.Logger) *CountryService {
	if opts.Endpoint == "" {
		opts.Endpoint = config.DefaultEndpoint
	}
	if opts.Timeout <= 0 {
		opts.Timeout = config.DefaultTimeout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}

	return &CountryService{
		endpoint: opts.Endpoint,
		timeout:  opts.Timeout,
		client:   opts.HTTPClient,
		logger:   log,
	}
}

// apiCountry mirrors one element of the API response. Pointers distinguish a
// missing field from a zero value.
type apiCountry struct {
	Name *struct {
		Common *string `json:"common"`
	} `json:"name"`
	Population *int64  `json:"population"`
	CCA2       *string `json:"cca2"`
}

// Load performs a single GET against the endpoint and returns the sorted
// catalog. Errors wrap models.ErrTimeout, models.ErrTransport or
// models.ErrUnexpected.
func (cs *CountryService) Load(ctx context.Context) (models.Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, cs.timeout)
	defer cancel()

	start := time.Now()
	cs.logger.Info(component, "fetching country catalog", map[string]interface{}{
		"endpoint": cs.endpoint,
		"timeout":  cs.timeout.String(),
	})

	catalog, err := cs.fetch(ctx)
	if err != nil {
		cs.logger.Error(component, err, map[string]interface{}{
			"kind":       models.ClassifyLoadError(err).String(),
			"elapsed_ms": time.Since(start).Milliseconds(),
		})
		return models.Catalog{}, err
	}

	cs.logger.Info(component, "country catalog loaded", map[string]interface{}{
		"count":      catalog.Len(),
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return catalog, nil
}

func (cs *CountryService) fetch(ctx context.Context) (models.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cs.endpoint, nil)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("%w: build request: %w", models.ErrUnexpected, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := cs.client.Do(req)
	if err != nil {
		return models.Catalog{}, classifyRequestError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return models.Catalog{}, fmt.Errorf("%w: %s: %s", models.ErrTransport, resp.Status, body)
	}

	var payload []apiCountry
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		if isTimeout(err) {
			return models.Catalog{}, fmt.Errorf("%w: reading response: %w", models.ErrTimeout, err)
		}
		return models.Catalog{}, fmt.Errorf("%w: decode response: %w", models.ErrUnexpected, err)
	}

	countries := make([]models.Country, 0, len(payload))
	for i, item := range payload {
		country, err := item.toCountry()
		if err != nil {
			return models.Catalog{}, fmt.Errorf("%w: element %d: %w", models.ErrUnexpected, i, err)
		}
		countries = append(countries, country)
	}

	return models.NewCatalog(countries), nil
}

func (a apiCountry) toCountry() (models.Country, error) {
	switch {
	case a.Name == nil || a.Name.Common == nil:
		return models.Country{}, errors.New("missing name.common")
	case a.Population == nil:
		return models.Country{}, fmt.Errorf("missing population for %q", *a.Name.Common)
	case a.CCA2 == nil:
		return models.Country{}, fmt.Errorf("missing cca2 for %q", *a.Name.Common)
	}
	return models.NewCountry(*a.Name.Common, *a.Population, *a.CCA2)
}

func classifyRequestError(err error) error {
	if isTimeout(err) {
		return fmt.Errorf("%w: %w", models.ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", models.ErrUnexpected, err)
	}
	return fmt.Errorf("%w: %w", models.ErrTransport, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
