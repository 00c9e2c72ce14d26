package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	tempFile, err := os.CreateTemp(t.TempDir(), "test*.json")
	require.NoError(t, err)
	_, err = tempFile.Write([]byte(content))
	require.NoError(t, err)
	tempFile.Close()
	return tempFile.Name()
}

func TestReadForecastsFromJSON(t *testing.T) {
	content := `[
		{"date": "2024-01-01", "temperatureC": 20, "temperatureF": 68, "summary": "Mild"},
		{"date": "2024-01-02", "temperatureC": -5, "temperatureF": 23, "summary": "Bracing"}
	]`
	tempFile := createTempFile(t, content)

	forecasts, err := ReadForecastsFromJSON(tempFile)

	require.NoError(t, err)
	require.Len(t, forecasts, 2)
	assert.Equal(t, "2024-01-01", forecasts[0].Date)
	assert.Equal(t, 20, forecasts[0].TemperatureC)
	assert.Equal(t, 68, forecasts[0].TemperatureF)
	assert.Equal(t, "Bracing", forecasts[1].Summary)
}

func TestReadForecastsFromJSON_Malformed(t *testing.T) {
	tempFile := createTempFile(t, `{"invalid_json`)

	forecasts, err := ReadForecastsFromJSON(tempFile)

	assert.Error(t, err)
	assert.Nil(t, forecasts)
}

func TestReadHelloWorldResponseFromJSON(t *testing.T) {
	tempFile := createTempFile(t, `{"message": "hi"}`)

	resp, err := ReadHelloWorldResponseFromJSON(tempFile)

	require.NoError(t, err)
	assert.Equal(t, "hi", resp.Message)
}

func TestReadHelloWorldResponseFromJSON_MissingFile(t *testing.T) {
	_, err := ReadHelloWorldResponseFromJSON("does-not-exist.json")

	assert.ErrorContains(t, err, "failed to read file")
}
