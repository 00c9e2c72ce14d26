package services

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"investmint-dashboard/api"
	"investmint-dashboard/config"
)

// Prober reports whether the upstream API at baseURL is reachable.
type Prober interface {
	Probe(ctx context.Context, baseURL string, timeout time.Duration) bool
}

// ConnectivityProbe is a best-effort liveness check against the forecast endpoint.
type ConnectivityProbe struct {
	httpClient *http.Client
	endpoint   string
}

// NewConnectivityProbe constructs a probe sharing the given transport.
func NewConnectivityProbe(httpClient *http.Client) *ConnectivityProbe {
	return &ConnectivityProbe{
		httpClient: httpClient,
		endpoint:   config.WEATHER_FORECAST_ENDPOINT,
	}
}

// Probe issues a GET bounded by timeout. Any failure collapses to false.
func (p *ConnectivityProbe) Probe(ctx context.Context, baseURL string, timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := api.JoinEndpoint(baseURL, p.endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error().Msgf("[ConnectivityProbe] API connection test failed: %v", err)
		return false
	}
	req.Header.Set("Cache-Control", "no-cache, no-store")

	res, err := p.httpClient.Do(req)
	if err != nil {
		log.Error().Msgf("[ConnectivityProbe] API connection test failed: %v", err)
		return false
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		log.Warn().Msgf("[ConnectivityProbe] %s answered %s", url, res.Status)
		return false
	}

	log.Debug().Msgf("[ConnectivityProbe] %s is reachable", url)
	return true
}
