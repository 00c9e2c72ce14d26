package investmint

import (
	"context"

	"investmint-dashboard/models"
)

// InvestmintAPI defines the interface for interacting with the Investmint API
type InvestmintAPI interface {
	GetHelloWorld(ctx context.Context) (*models.HelloWorldResponse, error)
	GetWeatherForecast(ctx context.Context) ([]models.Forecast, error)
	// CheckEndpoint issues a HEAD request and returns the status line.
	CheckEndpoint(ctx context.Context, endpoint string) (string, error)
	EndpointURL(endpoint string) string
}

// ClientFactory builds a client for a resolved base URL.
type ClientFactory func(baseURL string) InvestmintAPI
