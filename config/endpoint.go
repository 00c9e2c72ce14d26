package config

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// EndpointConfig holds the inputs of the base URL resolution.
type EndpointConfig struct {
	// RawURL may contain the ${PORT} placeholder.
	RawURL       string
	Environment  string
	PortOverride string
}

// IsDevelopment reports whether the placeholder substitution applies.
func (c EndpointConfig) IsDevelopment() bool {
	return c.Environment == DEVELOPMENT_ENV
}

// ResolveBaseURL returns the upstream base URL, or "" when none is configured.
func ResolveBaseURL(c EndpointConfig) string {
	if c.RawURL == "" {
		log.Error().Msgf("[Config] %s is not defined", API_URL_ENV)
		return ""
	}

	apiURL := c.RawURL
	if c.IsDevelopment() && strings.Contains(apiURL, PORT_PLACEHOLDER) {
		port := c.PortOverride
		if port == "" {
			port = DEFAULT_API_PORT
		}
		apiURL = strings.ReplaceAll(apiURL, PORT_PLACEHOLDER, port)
	}

	return apiURL
}
