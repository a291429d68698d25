package dataset_models

// AnswerKey is the four quiz answers, as display labels, that key the recommendation table.
type AnswerKey struct {
	Intent    string `json:"intent"`
	Style     string `json:"style"`
	Age       string `json:"age"`
	Transport string `json:"transport"`
}

// MaxSuggestions is the number of suggestion columns in the recommendation dataset.
const MaxSuggestions = 3

// RecommendationRow is one precomputed answer combination. SuggestedSpotNames keeps column
// order and omits empty cells.
type RecommendationRow struct {
	Key                AnswerKey
	SuggestedSpotNames []string
}
