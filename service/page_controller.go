package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"investmint-dashboard/api"
	"investmint-dashboard/api/investmint"
	"investmint-dashboard/config"
	"investmint-dashboard/models"
)

const NOT_CONFIGURED = "Not configured"
const NOT_TESTED = "Not tested"

// DashboardData is the payload of a rendered dashboard page.
type DashboardData struct {
	Message     string
	Forecasts   []models.Forecast
	EndpointURL string
}

// WeatherData is the payload of a rendered weather page.
type WeatherData struct {
	Forecasts   []models.Forecast
	EndpointURL string
}

// DebugReport describes the raw and resolved configuration and the endpoint status.
type DebugReport struct {
	Environment   string
	RawURL        string
	ResolvedURL   string
	WeatherURL    string
	WeatherStatus string
	HelloURL      string
	HelloStatus   string
}

// PageController runs one fetch sequence per page render: resolve the base URL,
// probe it, fetch, parse. Every failure is terminal for the render.
type PageController struct {
	endpoint     config.EndpointConfig
	clients      investmint.ClientFactory
	prober       Prober
	probeTimeout time.Duration
}

// NewPageController constructs a PageController.
func NewPageController(
	endpoint config.EndpointConfig,
	clients investmint.ClientFactory,
	prober Prober) *PageController {

	return &PageController{
		endpoint:     endpoint,
		clients:      clients,
		prober:       prober,
		probeTimeout: config.PROBE_TIMEOUT_MILLIS * time.Millisecond,
	}
}

// LoadDashboard fetches the greeting and the forecast concurrently. If either
// fails the other result is discarded.
func (pc *PageController) LoadDashboard(ctx context.Context) (*DashboardData, *models.PageError) {
	client, pageErr := pc.connect(ctx)
	if pageErr != nil {
		return nil, pageErr
	}

	var hello *models.HelloWorldResponse
	var forecasts []models.Forecast

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := client.GetHelloWorld(gctx)
		if err != nil {
			return classifyFetchError("HelloWorld", err)
		}
		hello = resp
		return nil
	})
	g.Go(func() error {
		resp, err := client.GetWeatherForecast(gctx)
		if err != nil {
			return classifyFetchError("Weather", err)
		}
		forecasts = resp
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, asPageError(err)
	}

	log.Debug().Msgf("[PageController] dashboard rendered with %d forecasts", len(forecasts))
	return &DashboardData{
		Message:     hello.Message,
		Forecasts:   forecasts,
		EndpointURL: client.EndpointURL(config.WEATHER_FORECAST_ENDPOINT),
	}, nil
}

// LoadWeather fetches the forecast list.
func (pc *PageController) LoadWeather(ctx context.Context) (*WeatherData, *models.PageError) {
	client, pageErr := pc.connect(ctx)
	if pageErr != nil {
		return nil, pageErr
	}

	forecasts, err := client.GetWeatherForecast(ctx)
	if err != nil {
		return nil, classifyFetchError("Weather", err)
	}

	log.Debug().Msgf("[PageController] weather page rendered with %d forecasts", len(forecasts))
	return &WeatherData{
		Forecasts:   forecasts,
		EndpointURL: client.EndpointURL(config.WEATHER_FORECAST_ENDPOINT),
	}, nil
}

// Debug reports the configuration and HEAD-checks both known endpoints. It never fails.
func (pc *PageController) Debug(ctx context.Context) *DebugReport {
	report := &DebugReport{
		Environment:   pc.endpoint.Environment,
		RawURL:        pc.endpoint.RawURL,
		ResolvedURL:   config.ResolveBaseURL(pc.endpoint),
		WeatherStatus: NOT_TESTED,
		HelloStatus:   NOT_TESTED,
	}
	if report.RawURL == "" {
		report.RawURL = NOT_CONFIGURED
	}
	if report.ResolvedURL == "" {
		return report
	}

	client := pc.clients(report.ResolvedURL)
	report.WeatherURL = client.EndpointURL(config.WEATHER_FORECAST_ENDPOINT)
	report.WeatherStatus = checkEndpoint(ctx, client, config.WEATHER_FORECAST_ENDPOINT)
	report.HelloURL = client.EndpointURL(config.HELLO_WORLD_ENDPOINT)
	report.HelloStatus = checkEndpoint(ctx, client, config.HELLO_WORLD_ENDPOINT)

	return report
}

// connect covers the Resolving and Probing states.
func (pc *PageController) connect(ctx context.Context) (investmint.InvestmintAPI, *models.PageError) {
	baseURL := config.ResolveBaseURL(pc.endpoint)
	if baseURL == "" {
		return nil, models.NewConfigurationError(
			fmt.Sprintf("API URL is not configured. Please set %s environment variable.", config.API_URL_ENV))
	}

	if !pc.prober.Probe(ctx, baseURL, pc.probeTimeout) {
		return nil, models.NewConnectionError(fmt.Sprintf(
			"Cannot connect to API server at %s (environment: %s). Server may be down or URL may be incorrect.",
			baseURL, pc.endpoint.Environment))
	}

	return pc.clients(baseURL), nil
}

func checkEndpoint(ctx context.Context, client investmint.InvestmintAPI, endpoint string) string {
	status, err := client.CheckEndpoint(ctx, endpoint)
	if err != nil {
		log.Warn().Msgf("[PageController] HEAD %s failed: %v", endpoint, err)
		return "Error: " + err.Error()
	}
	return status
}

// classifyFetchError maps a fetch failure to ApiError for non-2xx statuses and
// UnknownError for everything else, including JSON decoding.
func classifyFetchError(label string, err error) *models.PageError {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return models.NewApiError(label, statusErr.StatusCode, statusErr.Body, err)
	}
	return models.NewUnknownError(err)
}

func asPageError(err error) *models.PageError {
	var pageErr *models.PageError
	if errors.As(err, &pageErr) {
		return pageErr
	}
	return models.NewUnknownError(err)
}
