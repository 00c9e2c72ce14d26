package investmint

import (
	"context"

	"investmint-dashboard/api"
	"investmint-dashboard/config"
	"investmint-dashboard/models"
)

// InvestmintApiClient embeds the common HTTPClient
type InvestmintApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewInvestmintApiClient creates a new instance of InvestmintApiClient
func NewInvestmintApiClient(httpClient *api.HTTPClient) *InvestmintApiClient {
	return &InvestmintApiClient{
		HTTPClient: httpClient,
	}
}

// NewClientFactory returns a factory of HTTP clients that share one transport.
func NewClientFactory(template *api.HTTPClient) ClientFactory {
	return func(baseURL string) InvestmintAPI {
		return NewInvestmintApiClient(&api.HTTPClient{
			BaseURL:    baseURL,
			HTTPClient: template.HTTPClient,
		})
	}
}

// GetHelloWorld retrieves the greeting message
func (c *InvestmintApiClient) GetHelloWorld(ctx context.Context) (*models.HelloWorldResponse, error) {
	var response models.HelloWorldResponse
	if err := c.Get(ctx, config.HELLO_WORLD_ENDPOINT, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetWeatherForecast retrieves the forecast list
func (c *InvestmintApiClient) GetWeatherForecast(ctx context.Context) ([]models.Forecast, error) {
	var response []models.Forecast
	if err := c.Get(ctx, config.WEATHER_FORECAST_ENDPOINT, &response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *InvestmintApiClient) CheckEndpoint(ctx context.Context, endpoint string) (string, error) {
	return c.Head(ctx, endpoint)
}

func (c *InvestmintApiClient) EndpointURL(endpoint string) string {
	return c.URL(endpoint)
}
