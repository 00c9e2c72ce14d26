package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"investmint-dashboard/models"
)

// PlotForecast renders an HTML page with a line chart of the forecast temperatures,
// one point per record in the given order.
func PlotForecast(w io.Writer, forecasts []models.Forecast) error {
	dates := make([]string, 0, len(forecasts))
	celsius := make([]opts.LineData, 0, len(forecasts))
	fahrenheit := make([]opts.LineData, 0, len(forecasts))
	for _, f := range forecasts {
		dates = append(dates, f.Date)
		celsius = append(celsius, opts.LineData{Name: f.Summary, Value: f.TemperatureC})
		fahrenheit = append(fahrenheit, opts.LineData{Name: f.Summary, Value: f.TemperatureF})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Weather Forecast",
			Width:     "100%",
			Height:    "360px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Temperature by date",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "bottom",
		}),
	)

	line.SetXAxis(dates).
		AddSeries("Temp (C)", celsius).
		AddSeries("Temp (F)", fahrenheit).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(true),
			}),
		)

	return line.Render(w)
}
