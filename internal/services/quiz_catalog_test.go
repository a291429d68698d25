package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"kankou/pkg/utils"
)

func TestAnswerKeyFromCodesAndLabels(t *testing.T) {
	key, err := AnswerKeyFrom(map[string]string{
		"q1": "food",
		"q2": "一人で静かに",
		"q3": "20S",
		"q4": " car ",
	})
	require.NoError(t, err)
	assert.Equal(t, foodSolo20sCar, key)
}

func TestAnswerKeyFromRejectsUnknownOrMissing(t *testing.T) {
	_, err := AnswerKeyFrom(map[string]string{"q1": "food", "q2": "solo", "q3": "60s", "q4": "car"})
	assert.ErrorIs(t, err, utils.ErrInvalidAnswer)

	_, err = AnswerKeyFrom(map[string]string{"q1": "food", "q2": "solo", "q3": "20s"})
	assert.ErrorIs(t, err, utils.ErrInvalidAnswer)

	_, err = AnswerKeyFrom(nil)
	assert.ErrorIs(t, err, utils.ErrInvalidAnswer)
}

func TestQuizQuestionsShape(t *testing.T) {
	require.Len(t, QuizQuestions, 4)
	counts := []int{4, 3, 5, 3}
	for i, q := range QuizQuestions {
		assert.Len(t, q.Options, counts[i], q.ID)
		assert.NotEmpty(t, q.Column, q.ID)
	}
}
