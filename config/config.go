package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Server config
const DEFAULT_LISTEN_ADDR = ":8080"

// Upstream API config
const API_URL_ENV = "API_URL"
const APP_ENV_ENV = "APP_ENV"
const PORT_ENV = "PORT"
const DEFAULT_APP_ENV = "production"
const DEVELOPMENT_ENV = "development"
const DEFAULT_API_PORT = "5000"
const PORT_PLACEHOLDER = "${PORT}"
const PROBE_TIMEOUT_MILLIS = 5000

// Upstream modes
const UPSTREAM_MODE_HTTP = "http"
const UPSTREAM_MODE_MOCK = "mock"

// Upstream endpoints
const HELLO_WORLD_ENDPOINT = "api/HelloWorld"
const WEATHER_FORECAST_ENDPOINT = "weatherforecast"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const HELLO_WORLD_RESOURCE = "hello_world.json"
const WEATHER_FORECAST_RESOURCE = "weather_forecast.json"

// Dotenv files, loaded in order. Earlier files win.
var DOTENV_FILES = []string{".env.local", ".env"}

// Settings is the read-only snapshot of the process configuration.
type Settings struct {
	ListenAddr   string
	UpstreamMode string
	LogLevel     string
	Endpoint     EndpointConfig
}

// Load reads the settings from the environment.
func Load() *Settings {
	s := &Settings{}
	s.ListenAddr = getEnv("LISTEN_ADDR", DEFAULT_LISTEN_ADDR)
	s.UpstreamMode = strings.ToLower(getEnv("UPSTREAM_MODE", UPSTREAM_MODE_HTTP))
	s.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", "info"))

	s.Endpoint = EndpointConfig{
		RawURL:       os.Getenv(API_URL_ENV),
		Environment:  getEnv(APP_ENV_ENV, DEFAULT_APP_ENV),
		PortOverride: os.Getenv(PORT_ENV),
	}

	if s.UpstreamMode != UPSTREAM_MODE_HTTP && s.UpstreamMode != UPSTREAM_MODE_MOCK {
		log.Warn().Msgf("[Config] unknown UPSTREAM_MODE %q, using %q", s.UpstreamMode, UPSTREAM_MODE_HTTP)
		s.UpstreamMode = UPSTREAM_MODE_HTTP
	}

	return s
}

// LoadDotEnv populates the process environment from the dotenv files found
// under dir. Variables already set in the environment are never overridden.
func LoadDotEnv(dir string) error {
	for _, name := range DOTENV_FILES {
		path := filepath.Join(dir, name)
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debug().Msgf("[Config] no %s file found", path)
				continue
			}
			return err
		}
		log.Info().Msgf("[Config] loaded environment from %s", path)
	}
	return nil
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
