package response_models

import "kankou/internal/models/dataset_models"

type RecommendationResult struct {
	Answers    dataset_models.AnswerKey `json:"answers"`
	Matched    bool                     `json:"matched"`
	Spots      []SpotDetail             `json:"spots"`
	Unresolved []string                 `json:"unresolved,omitempty"`
}
