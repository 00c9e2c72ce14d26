package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"investmint-dashboard/models"
)

func sampleForecasts() []models.Forecast {
	return []models.Forecast{
		{Date: "2024-01-03", TemperatureC: 12, TemperatureF: 53, Summary: "Cool"},
		{Date: "2024-01-01", TemperatureC: 31, TemperatureF: 87, Summary: "Hot"},
		{Date: "2024-01-05", TemperatureC: -4, TemperatureF: 25, Summary: "Freezing"},
		{Date: "2024-01-02", TemperatureC: 20, TemperatureF: 68, Summary: "Mild"},
	}
}

func dates(records []models.Forecast) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Date)
	}
	return out
}

func TestSortForecasts(t *testing.T) {
	tests := []struct {
		name  string
		state models.SortState
		want  []string
	}{
		{"Date ascending", models.SortState{Field: models.SortByDate, Direction: models.Ascending}, []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05"}},
		{"Date descending", models.SortState{Field: models.SortByDate, Direction: models.Descending}, []string{"2024-01-05", "2024-01-03", "2024-01-02", "2024-01-01"}},
		{"TemperatureC ascending is numeric", models.SortState{Field: models.SortByTemperatureC, Direction: models.Ascending}, []string{"2024-01-05", "2024-01-03", "2024-01-02", "2024-01-01"}},
		{"TemperatureF descending", models.SortState{Field: models.SortByTemperatureF, Direction: models.Descending}, []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05"}},
		{"Summary ascending", models.SortState{Field: models.SortBySummary, Direction: models.Ascending}, []string{"2024-01-03", "2024-01-05", "2024-01-01", "2024-01-02"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, dates(SortForecasts(sampleForecasts(), test.state)))
		})
	}
}

func TestSortForecasts_SameHeaderTwiceReverses(t *testing.T) {
	original := sampleForecasts()
	state := models.SortState{Field: models.SortByTemperatureC, Direction: models.Ascending}

	ascending := SortForecasts(original, state)
	descending := SortForecasts(original, state.Toggle(models.SortByTemperatureC))

	require.Len(t, descending, len(ascending))
	for i := range ascending {
		assert.Equal(t, ascending[i], descending[len(descending)-1-i])
	}
	assert.Equal(t, sampleForecasts(), original, "original list must not be mutated")
}

func TestSortForecasts_StableTies(t *testing.T) {
	records := []models.Forecast{
		{Date: "2024-01-02", Summary: "Mild"},
		{Date: "2024-01-01", Summary: "Mild"},
		{Date: "2024-01-03", Summary: "Hot"},
	}

	sorted := SortForecasts(records, models.SortState{Field: models.SortBySummary, Direction: models.Ascending})

	assert.Equal(t, []string{"2024-01-03", "2024-01-02", "2024-01-01"}, dates(sorted))
}

func TestSortForecasts_Empty(t *testing.T) {
	assert.Empty(t, SortForecasts(nil, models.DefaultSortState()))
}

func TestNewForecastTable(t *testing.T) {
	state := models.SortState{Field: models.SortByDate, Direction: models.Descending}

	table := NewForecastTable(sampleForecasts(), state, "/weatherforecast", "http://api/weatherforecast")

	require.Len(t, table.Headers, 4)
	assert.Equal(t, TableHeader{Label: "Date", Href: "/weatherforecast?dir=asc&sort=date", Arrow: "↓"}, table.Headers[0])
	assert.Equal(t, TableHeader{Label: "Temp (C)", Href: "/weatherforecast?dir=asc&sort=temperatureC"}, table.Headers[1])
	assert.Equal(t, "Summary", table.Headers[3].Label)
	assert.Equal(t, "2024-01-05", table.Rows[0].Date)
	assert.Equal(t, "http://api/weatherforecast", table.EndpointURL)
}
