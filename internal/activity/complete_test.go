package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteFillsEveryShapeField(t *testing.T) {
	for _, activityType := range Types() {
		t.Run(activityType, func(t *testing.T) {
			result := Complete(Parsed{}, activityType, "es")
			for _, field := range Shape(activityType) {
				assert.Contains(t, result, field)
			}
		})
	}
}

func TestCompletePreservesSuppliedFields(t *testing.T) {
	supplied := Parsed{
		"title":          "Ordering Coffee",
		"key_vocabulary": []interface{}{"café", "leche", "azúcar", "taza"},
	}
	result := Complete(supplied, TypeConversation, "es")

	assert.Equal(t, "Ordering Coffee", result["title"])
	assert.Equal(t, []interface{}{"café", "leche", "azúcar", "taza"}, result["key_vocabulary"])
}

func TestCompletePadsShortLists(t *testing.T) {
	result := Complete(Parsed{
		"hints": []interface{}{"Listen carefully"},
	}, TypeConversation, "es")

	hints := result["hints"].([]interface{})
	require.Len(t, hints, MinListLength)
	assert.Equal(t, "Listen carefully", hints[0])
	assert.Equal(t, "Example hints 2", hints[1])
	assert.Equal(t, "Example hints 3", hints[2])
}

func TestCompleteListsAtLeastMinLength(t *testing.T) {
	for _, activityType := range Types() {
		result := Complete(Parsed{}, activityType, "fr")
		for field, value := range result {
			if entries, ok := value.([]interface{}); ok {
				assert.GreaterOrEqual(t, len(entries), MinListLength, "field %s of %s", field, activityType)
			}
		}
	}
}

func TestCompleteReadingVocabularyRecords(t *testing.T) {
	result := Complete(Parsed{}, TypeReading, "es")

	vocabulary := result["vocabulary"].([]interface{})
	require.GreaterOrEqual(t, len(vocabulary), 1)
	record := vocabulary[0].(map[string]interface{})
	assert.Contains(t, record, "word")
	assert.Contains(t, record, "definition")
	assert.Contains(t, record, "example")
}

func TestCompleteIdempotent(t *testing.T) {
	for _, activityType := range Types() {
		t.Run(activityType, func(t *testing.T) {
			once := Complete(Parsed{}, activityType, "ja")
			twice := Complete(once, activityType, "ja")
			assert.Equal(t, once, twice)
		})
	}
}

func TestCompleteInjectsRomanization(t *testing.T) {
	result := Complete(Parsed{
		"key_vocabulary": []interface{}{"こんにちは", "ありがとう", "さようなら"},
		"key_phrases":    []interface{}{"お元気ですか？", "私の名前は...", "手伝ってもらえますか？"},
		"questions":      []interface{}{"お名前は何ですか？", "どこから来ましたか？", "何をするのが好きですか？"},
	}, TypeConversation, "ja")

	romanization, ok := result["romanization"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, romanization)
	assert.Contains(t, romanization, "key_vocabulary")
	assert.Contains(t, romanization, "key_phrases")
	assert.Contains(t, romanization, "questions")

	vocab := romanization["key_vocabulary"].([]interface{})
	require.Len(t, vocab, 3)
	assert.Equal(t, "こんにちは...", vocab[0])
}

func TestCompleteRomanizationTruncation(t *testing.T) {
	result := Complete(Parsed{
		"questions": []interface{}{"これはとても長い質問でとにかく十文字を超えます", "短い？", "三つ目の質問はこちらです"},
	}, TypeConversation, "ja")

	romanization := result["romanization"].(map[string]interface{})
	questions := romanization["questions"].([]interface{})
	assert.Equal(t, "これはとても長い質問...", questions[0])
	assert.Equal(t, "短い？...", questions[1])
}

func TestCompleteKeepsSuppliedRomanization(t *testing.T) {
	supplied := map[string]interface{}{
		"key_vocabulary": []interface{}{"konnichiwa"},
	}
	result := Complete(Parsed{"romanization": supplied}, TypeConversation, "ja")
	assert.Equal(t, supplied, result["romanization"])
}

func TestCompleteNoRomanizationForLatinScripts(t *testing.T) {
	result := Complete(Parsed{}, TypeConversation, "es")
	assert.NotContains(t, result, "romanization")
}

func TestCompleteDoesNotMutateInput(t *testing.T) {
	input := Parsed{"title": "Hi"}
	Complete(input, TypeConversation, "ja")
	assert.Equal(t, Parsed{"title": "Hi"}, input)
}
