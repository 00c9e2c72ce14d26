package view

import (
	"sort"

	"investmint-dashboard/models"
)

var columnLabels = map[models.SortField]string{
	models.SortByDate:         "Date",
	models.SortByTemperatureC: "Temp (C)",
	models.SortByTemperatureF: "Temp (F)",
	models.SortBySummary:      "Summary",
}

// TableHeader is one clickable column header. Href carries the sort state the
// click leads to.
type TableHeader struct {
	Label string
	Href  string
	Arrow string
}

// ForecastTable is the view model of the sortable forecast table.
type ForecastTable struct {
	Headers     []TableHeader
	Rows        []models.Forecast
	EndpointURL string
}

// NewForecastTable sorts a copy of records and builds the header links relative to pagePath.
func NewForecastTable(records []models.Forecast, state models.SortState, pagePath, endpointURL string) ForecastTable {
	headers := make([]TableHeader, 0, len(models.SortFields))
	for _, field := range models.SortFields {
		h := TableHeader{
			Label: columnLabels[field],
			Href:  pagePath + "?" + state.Toggle(field).Values().Encode(),
		}
		if field == state.Field {
			h.Arrow = "↑"
			if state.Direction == models.Descending {
				h.Arrow = "↓"
			}
		}
		headers = append(headers, h)
	}

	return ForecastTable{
		Headers:     headers,
		Rows:        SortForecasts(records, state),
		EndpointURL: endpointURL,
	}
}

// SortForecasts returns a sorted copy of records; records itself is left untouched.
// Ascending is stable with respect to input order and descending is its exact reverse.
func SortForecasts(records []models.Forecast, state models.SortState) []models.Forecast {
	sorted := make([]models.Forecast, len(records))
	copy(sorted, records)

	less := lessBy(state.Field)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	if state.Direction == models.Descending {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}

	return sorted
}

func lessBy(field models.SortField) func(a, b models.Forecast) bool {
	switch field {
	case models.SortByTemperatureC:
		return func(a, b models.Forecast) bool { return a.TemperatureC < b.TemperatureC }
	case models.SortByTemperatureF:
		return func(a, b models.Forecast) bool { return a.TemperatureF < b.TemperatureF }
	case models.SortBySummary:
		return func(a, b models.Forecast) bool { return a.Summary < b.Summary }
	default:
		// ISO dates order lexicographically
		return func(a, b models.Forecast) bool { return a.Date < b.Date }
	}
}
