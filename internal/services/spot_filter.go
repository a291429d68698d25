package services

import (
	"strings"

	"kankou/internal/models/dataset_models"
)

// FilterSpots keeps the spots whose name or tags contain query, ignoring case, in dataset
// order. An empty query returns spots unchanged. The query is matched as given; callers trim
// user input.
func FilterSpots(spots []dataset_models.SpotRecord, query string) []dataset_models.SpotRecord {
	if query == "" {
		return spots
	}

	needle := strings.ToLower(query)
	matched := make([]dataset_models.SpotRecord, 0)
	for _, s := range spots {
		if strings.Contains(strings.ToLower(s.Name), needle) ||
			(s.Tags != nil && strings.Contains(strings.ToLower(*s.Tags), needle)) {
			matched = append(matched, s)
		}
	}
	return matched
}
