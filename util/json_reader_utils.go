package util

import (
	"encoding/json"
	"fmt"
	"os"

	"investmint-dashboard/models"
)

// ReadForecastsFromJSON loads a forecast list from JSON on disk.
func ReadForecastsFromJSON(filePath string) ([]models.Forecast, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var forecasts []models.Forecast
	if err := json.Unmarshal(data, &forecasts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal forecasts: %w", err)
	}
	return forecasts, nil
}

// ReadHelloWorldResponseFromJSON loads a HelloWorldResponse from JSON on disk.
func ReadHelloWorldResponseFromJSON(filePath string) (*models.HelloWorldResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.HelloWorldResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal HelloWorldResponse: %w", err)
	}
	return &resp, nil
}
