package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"investmint-dashboard/models"
	services "investmint-dashboard/service"
	"investmint-dashboard/view"
)

// MockPageController returns canned results.
type MockPageController struct {
	dashboard *services.DashboardData
	weather   *services.WeatherData
	report    *services.DebugReport
	pageErr   *models.PageError
}

func (m *MockPageController) LoadDashboard(ctx context.Context) (*services.DashboardData, *models.PageError) {
	if m.pageErr != nil {
		return nil, m.pageErr
	}
	return m.dashboard, nil
}

func (m *MockPageController) LoadWeather(ctx context.Context) (*services.WeatherData, *models.PageError) {
	if m.pageErr != nil {
		return nil, m.pageErr
	}
	return m.weather, nil
}

func (m *MockPageController) Debug(ctx context.Context) *services.DebugReport {
	return m.report
}

var forecasts = []models.Forecast{
	{Date: "2024-01-02", TemperatureC: 5, TemperatureF: 41, Summary: "Chilly"},
	{Date: "2024-01-01", TemperatureC: 20, TemperatureF: 68, Summary: "Mild"},
}

func newHandler(t *testing.T, controller PageController) *PageHandler {
	t.Helper()
	renderer, err := view.NewRenderer()
	require.NoError(t, err)
	return NewPageHandler(controller, renderer)
}

func TestWeather_SortedByQuery(t *testing.T) {
	h := newHandler(t, &MockPageController{weather: &services.WeatherData{Forecasts: forecasts, EndpointURL: "http://api/weatherforecast"}})

	req := httptest.NewRequest(http.MethodGet, "/weatherforecast?sort=temperatureC&dir=desc", nil)
	rr := httptest.NewRecorder()
	h.Weather(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Less(t, strings.Index(body, "<td>Mild</td>"), strings.Index(body, "<td>Chilly</td>"))
	assert.Contains(t, body, "Temp (C) ↓")
}

func TestWeather_DefaultSortByDate(t *testing.T) {
	h := newHandler(t, &MockPageController{weather: &services.WeatherData{Forecasts: forecasts}})

	rr := httptest.NewRecorder()
	h.Weather(rr, httptest.NewRequest(http.MethodGet, "/weatherforecast", nil))

	body := rr.Body.String()
	assert.Less(t, strings.Index(body, "<td>2024-01-01</td>"), strings.Index(body, "<td>2024-01-02</td>"))
	assert.Contains(t, body, "Date ↑")
}

func TestDashboard(t *testing.T) {
	h := newHandler(t, &MockPageController{dashboard: &services.DashboardData{Message: "Hello World", Forecasts: forecasts}})

	rr := httptest.NewRecorder()
	h.Dashboard(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "Hello World")
	assert.Contains(t, rr.Body.String(), "<td>41°F</td>")
}

func TestPages_ErrorPanel(t *testing.T) {
	tests := []struct {
		name    string
		pageErr *models.PageError
		serve   func(h *PageHandler) http.HandlerFunc
		status  int
	}{
		{"Dashboard configuration error", models.NewConfigurationError("API URL is not configured."), func(h *PageHandler) http.HandlerFunc { return h.Dashboard }, http.StatusInternalServerError},
		{"Dashboard api error", models.NewApiError("Weather", 500, "boom", nil), func(h *PageHandler) http.HandlerFunc { return h.Dashboard }, http.StatusBadGateway},
		{"Weather connection error", models.NewConnectionError("Cannot connect"), func(h *PageHandler) http.HandlerFunc { return h.Weather }, http.StatusBadGateway},
		{"Chart api error", models.NewApiError("Weather", 404, "not found", nil), func(h *PageHandler) http.HandlerFunc { return h.WeatherChart }, http.StatusBadGateway},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h := newHandler(t, &MockPageController{pageErr: test.pageErr})

			rr := httptest.NewRecorder()
			test.serve(h)(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, test.status, rr.Code)
			assert.Contains(t, rr.Body.String(), "Error Occurred")
			assert.Contains(t, rr.Body.String(), test.pageErr.Message)
			assert.Contains(t, rr.Body.String(), `href="/debug"`)
		})
	}
}

func TestWeatherChart(t *testing.T) {
	h := newHandler(t, &MockPageController{weather: &services.WeatherData{Forecasts: forecasts}})

	rr := httptest.NewRecorder()
	h.WeatherChart(rr, httptest.NewRequest(http.MethodGet, "/weatherforecast/chart", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Temp (C)")
	assert.Less(t, strings.Index(body, "2024-01-01"), strings.Index(body, "2024-01-02"))
}

func TestDebug(t *testing.T) {
	h := newHandler(t, &MockPageController{report: &services.DebugReport{
		Environment:   "production",
		RawURL:        services.NOT_CONFIGURED,
		WeatherStatus: services.NOT_TESTED,
		HelloStatus:   services.NOT_TESTED,
	}})

	rr := httptest.NewRecorder()
	h.Debug(rr, httptest.NewRequest(http.MethodGet, "/debug", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Not configured")
	assert.Contains(t, rr.Body.String(), "Status: Not tested")
}

func TestHealth(t *testing.T) {
	h := newHandler(t, &MockPageController{})

	rr := httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}
