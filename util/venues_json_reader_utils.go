package util

import (
	"encoding/json"
	"fmt"
	"os"

	"trip-planner/models/venue"
)

// ReadPlaceRecordsFromJSON loads an upstream catalog listing from JSON on disk.
func ReadPlaceRecordsFromJSON(filePath string) ([]venue.PlaceRecord, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var records []venue.PlaceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal place records from %q: %w", filePath, err)
	}
	return records, nil
}
