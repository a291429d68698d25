package services

import (
	"fmt"
	"strings"

	"kankou/internal/models/dataset_models"
	"kankou/internal/models/request_models"
	"kankou/internal/repositories"
	"kankou/pkg/utils"
)

// QuizQuestions are the four questions in display order. Options mirror the answer columns
// of the recommendation dataset.
var QuizQuestions = []request_models.QuizQuestion{
	{
		ID:       "q1",
		Question: repositories.ColAnswerIntent,
		Type:     "single_choice",
		Required: true,
		Category: "intent",
		Column:   repositories.ColAnswerIntent,
		Options: []request_models.QuizOption{
			{Code: "food", Label: "美味しい物を食べたい！"},
			{Code: "nature", Label: "自然を感じたい！"},
			{Code: "culture", Label: "文化に触れたい！"},
			{Code: "refresh", Label: "リフレッシュしたい！"},
		},
	},
	{
		ID:       "q2",
		Question: repositories.ColAnswerStyle,
		Type:     "single_choice",
		Required: true,
		Category: "style",
		Column:   repositories.ColAnswerStyle,
		Options: []request_models.QuizOption{
			{Code: "solo", Label: "一人で静かに"},
			{Code: "with-friends", Label: "友人と楽しく"},
			{Code: "with-family", Label: "家族水入らずで"},
		},
	},
	{
		ID:       "q3",
		Question: repositories.ColAnswerAge,
		Type:     "single_choice",
		Required: true,
		Category: "age",
		Column:   repositories.ColAnswerAge,
		Options: []request_models.QuizOption{
			{Code: "teens-or-under", Label: "10代以下"},
			{Code: "20s", Label: "20代"},
			{Code: "30s", Label: "30代"},
			{Code: "40s", Label: "40代"},
			{Code: "50s", Label: "50代"},
		},
	},
	{
		ID:       "q4",
		Question: repositories.ColAnswerTransport,
		Type:     "single_choice",
		Required: true,
		Category: "transport",
		Column:   repositories.ColAnswerTransport,
		Options: []request_models.QuizOption{
			{Code: "car", Label: "自動車・バイク・原付"},
			{Code: "bike-walk", Label: "自転車・徒歩"},
			{Code: "train-bus", Label: "電車・バス"},
		},
	},
}

// CanonicalAnswer maps an option code or label of question q to the label, or "" when the
// answer is not one of its options.
func CanonicalAnswer(q request_models.QuizQuestion, answer string) string {
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return ""
	}
	for _, o := range q.Options {
		if trimmed == o.Label || strings.EqualFold(trimmed, o.Code) {
			return o.Label
		}
	}
	return ""
}

// AnswerKeyFrom validates answers keyed by question id and returns them as a lookup key.
func AnswerKeyFrom(answers map[string]string) (dataset_models.AnswerKey, error) {
	labels := make([]string, len(QuizQuestions))
	for i, q := range QuizQuestions {
		label := CanonicalAnswer(q, answers[q.ID])
		if label == "" {
			return dataset_models.AnswerKey{}, fmt.Errorf("%w: %s=%q", utils.ErrInvalidAnswer, q.ID, answers[q.ID])
		}
		labels[i] = label
	}
	return dataset_models.AnswerKey{
		Intent:    labels[0],
		Style:     labels[1],
		Age:       labels[2],
		Transport: labels[3],
	}, nil
}
