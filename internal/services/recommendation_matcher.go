package services

import "kankou/internal/models/dataset_models"

type MatchResult struct {
	Matched    bool
	Spots      []dataset_models.SpotRecord
	Unresolved []string
}

// MatchRecommendation uses the first row whose four answers equal key and resolves its
// suggestions against spots by exact name. Names with no spot are returned in Unresolved.
func MatchRecommendation(rows []dataset_models.RecommendationRow, spots []dataset_models.SpotRecord, key dataset_models.AnswerKey) MatchResult {
	var result MatchResult
	for _, row := range rows {
		if row.Key != key {
			continue
		}

		result.Matched = true
		for _, name := range row.SuggestedSpotNames {
			if name == "" {
				continue
			}
			if spot, ok := findSpot(spots, name); ok {
				result.Spots = append(result.Spots, spot)
			} else {
				result.Unresolved = append(result.Unresolved, name)
			}
		}
		break
	}
	return result
}

func findSpot(spots []dataset_models.SpotRecord, name string) (dataset_models.SpotRecord, bool) {
	for _, s := range spots {
		if s.Name == name {
			return s, true
		}
	}
	return dataset_models.SpotRecord{}, false
}
