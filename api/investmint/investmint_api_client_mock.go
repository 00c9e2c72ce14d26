package investmint

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"investmint-dashboard/api"
	"investmint-dashboard/config"
	"investmint-dashboard/models"
	"investmint-dashboard/util"
)

// InvestmintApiClientMock serves the API responses from JSON fixtures on disk
type InvestmintApiClientMock struct {
	baseURL      string
	resourcesDir string
}

// NewInvestmintApiClientMock creates a new instance of InvestmintApiClientMock
func NewInvestmintApiClientMock(baseURL, resourcesDir string) *InvestmintApiClientMock {
	return &InvestmintApiClientMock{baseURL: baseURL, resourcesDir: resourcesDir}
}

// NewMockClientFactory returns a factory of fixture-backed clients.
func NewMockClientFactory(resourcesDir string) ClientFactory {
	return func(baseURL string) InvestmintAPI {
		return NewInvestmintApiClientMock(baseURL, resourcesDir)
	}
}

func (c *InvestmintApiClientMock) GetHelloWorld(ctx context.Context) (*models.HelloWorldResponse, error) {
	response, err := util.ReadHelloWorldResponseFromJSON(c.resourcePath(config.HELLO_WORLD_RESOURCE))
	if err != nil {
		log.Error().Msgf("[InvestmintApiClientMock] could not read hello world response from json: %v", err)
		return nil, err
	}
	return response, nil
}

func (c *InvestmintApiClientMock) GetWeatherForecast(ctx context.Context) ([]models.Forecast, error) {
	response, err := util.ReadForecastsFromJSON(c.resourcePath(config.WEATHER_FORECAST_RESOURCE))
	if err != nil {
		log.Error().Msgf("[InvestmintApiClientMock] could not read weather forecast from json: %v", err)
		return nil, err
	}
	return response, nil
}

// CheckEndpoint answers 200 for the two known endpoints and 404 otherwise.
func (c *InvestmintApiClientMock) CheckEndpoint(ctx context.Context, endpoint string) (string, error) {
	switch strings.Trim(endpoint, "/") {
	case config.HELLO_WORLD_ENDPOINT, config.WEATHER_FORECAST_ENDPOINT:
		return "200 OK", nil
	default:
		return "404 Not Found", nil
	}
}

func (c *InvestmintApiClientMock) EndpointURL(endpoint string) string {
	return api.JoinEndpoint(c.baseURL, endpoint)
}

// Probe reports the fixtures as reachable when the forecast fixture can be read.
func (c *InvestmintApiClientMock) Probe(ctx context.Context, baseURL string, timeout time.Duration) bool {
	if _, err := c.GetWeatherForecast(ctx); err != nil {
		return false
	}
	return true
}

func (c *InvestmintApiClientMock) resourcePath(name string) string {
	return filepath.Join(c.resourcesDir, name)
}
