package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"investmint-dashboard/models"
	services "investmint-dashboard/service"
	"investmint-dashboard/util"
	"investmint-dashboard/view"
)

const (
	DASHBOARD_PATH = "/"
	WEATHER_PATH   = "/weatherforecast"
	CHART_PATH     = "/weatherforecast/chart"
	DEBUG_PATH     = "/debug"
	HEALTH_PATH    = "/healthz"
)

// PageController is the subset of services.PageController the handlers use.
type PageController interface {
	LoadDashboard(ctx context.Context) (*services.DashboardData, *models.PageError)
	LoadWeather(ctx context.Context) (*services.WeatherData, *models.PageError)
	Debug(ctx context.Context) *services.DebugReport
}

type PageHandler struct {
	controller PageController
	renderer   *view.Renderer
}

func NewPageHandler(controller PageController, renderer *view.Renderer) *PageHandler {
	return &PageHandler{controller: controller, renderer: renderer}
}

// Dashboard handles GET /
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	data, pageErr := h.controller.LoadDashboard(r.Context())
	if pageErr != nil {
		h.renderer.RenderError(w, pageErr)
		return
	}

	table := view.NewForecastTable(data.Forecasts, models.ParseSortState(r.URL.Query()), DASHBOARD_PATH, data.EndpointURL)

	var buf bytes.Buffer
	if err := h.renderer.RenderDashboard(&buf, data, table); err != nil {
		h.renderer.RenderError(w, models.NewUnknownError(err))
		return
	}
	writeHTML(w, &buf)
}

// Weather handles GET /weatherforecast
func (h *PageHandler) Weather(w http.ResponseWriter, r *http.Request) {
	data, pageErr := h.controller.LoadWeather(r.Context())
	if pageErr != nil {
		h.renderer.RenderError(w, pageErr)
		return
	}

	table := view.NewForecastTable(data.Forecasts, models.ParseSortState(r.URL.Query()), WEATHER_PATH, data.EndpointURL)

	var buf bytes.Buffer
	if err := h.renderer.RenderWeather(&buf, table, CHART_PATH); err != nil {
		h.renderer.RenderError(w, models.NewUnknownError(err))
		return
	}
	writeHTML(w, &buf)
}

// WeatherChart handles GET /weatherforecast/chart
func (h *PageHandler) WeatherChart(w http.ResponseWriter, r *http.Request) {
	data, pageErr := h.controller.LoadWeather(r.Context())
	if pageErr != nil {
		h.renderer.RenderError(w, pageErr)
		return
	}

	var buf bytes.Buffer
	if err := util.PlotForecast(&buf, view.SortForecasts(data.Forecasts, models.DefaultSortState())); err != nil {
		h.renderer.RenderError(w, models.NewUnknownError(err))
		return
	}
	writeHTML(w, &buf)
}

// Debug handles GET /debug
func (h *PageHandler) Debug(w http.ResponseWriter, r *http.Request) {
	report := h.controller.Debug(r.Context())

	var buf bytes.Buffer
	if err := h.renderer.RenderDebug(&buf, report); err != nil {
		h.renderer.RenderError(w, models.NewUnknownError(err))
		return
	}
	writeHTML(w, &buf)
}

// Health handles GET /healthz
func (h *PageHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func writeHTML(w http.ResponseWriter, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn().Msgf("[PageHandler] Error writing response: %v", err)
	}
}
