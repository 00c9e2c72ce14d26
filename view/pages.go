package view

import (
	"bytes"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"investmint-dashboard/models"
	services "investmint-dashboard/service"
)

// ErrorChecklist is the fixed troubleshooting list of the error panel.
var ErrorChecklist = []string{
	"Check that your API server is running",
	"Verify the API URL is correctly set in environment variables",
	"Ensure the endpoint paths are correct",
	"Check network connectivity to the API server",
}

// DebugChecklist is the troubleshooting list of the debug page.
var DebugChecklist = []string{
	"Verify the API server is running on the expected port",
	"Check that the correct URL is set in API_URL",
	"Make sure your API project has the correct routes configured",
	"Check for CORS issues if testing locally",
	"Verify network connectivity to the API server",
}

type DashboardPage struct {
	Title   string
	Message string
	Table   ForecastTable
}

type WeatherPage struct {
	Title    string
	Table    ForecastTable
	ChartURL string
}

type ErrorPage struct {
	Title     string
	Kind      string
	Message   string
	Checklist []string
}

type DebugPage struct {
	Title     string
	Report    *services.DebugReport
	Checklist []string
}

func (r *Renderer) RenderDashboard(w io.Writer, data *services.DashboardData, table ForecastTable) error {
	return r.render(w, DASHBOARD_PAGE, DashboardPage{
		Title:   "Investmint Dashboard",
		Message: data.Message,
		Table:   table,
	})
}

func (r *Renderer) RenderWeather(w io.Writer, table ForecastTable, chartURL string) error {
	return r.render(w, WEATHER_PAGE, WeatherPage{
		Title:    "Weather Forecast",
		Table:    table,
		ChartURL: chartURL,
	})
}

func (r *Renderer) RenderDebug(w io.Writer, report *services.DebugReport) error {
	return r.render(w, DEBUG_PAGE, DebugPage{
		Title:     "API Debug Information",
		Report:    report,
		Checklist: DebugChecklist,
	})
}

// StatusCodeFor maps an error category to the HTTP status of the error page.
func StatusCodeFor(kind models.ErrorKind) int {
	switch kind {
	case models.ConnectionError, models.ApiError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// RenderError logs pageErr and writes the error panel. It never fails: if the
// template cannot be executed a plain-text panel is written instead.
func (r *Renderer) RenderError(w http.ResponseWriter, pageErr *models.PageError) {
	if pageErr == nil {
		pageErr = models.NewUnknownError(nil)
	}
	log.Error().Err(pageErr.Err).Str("kind", pageErr.Kind.String()).Msgf("[ErrorPresenter] Error occurred: %s", pageErr.Message)

	message := pageErr.Message
	if message == "" {
		message = "Unknown error"
	}

	var buf bytes.Buffer
	err := r.render(&buf, ERROR_PAGE, ErrorPage{
		Title:     "Error Occurred",
		Kind:      pageErr.Kind.String(),
		Message:   message,
		Checklist: ErrorChecklist,
	})

	if err != nil {
		log.Error().Msgf("[ErrorPresenter] failed to render error page: %v", err)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(StatusCodeFor(pageErr.Kind))
		io.WriteString(w, "Error Occurred\n\n"+message+"\n\nView API Debug Information: /debug\n")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(StatusCodeFor(pageErr.Kind))
	buf.WriteTo(w)
}
