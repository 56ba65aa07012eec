package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackDeterministic(t *testing.T) {
	for _, activityType := range Types() {
		t.Run(activityType, func(t *testing.T) {
			first := Fallback(activityType, "ja", "en", "Beginner", "Food")
			second := Fallback(activityType, "ja", "en", "Beginner", "Food")
			assert.Equal(t, first, second)
		})
	}
}

func TestFallbackShapeComplete(t *testing.T) {
	for _, activityType := range Types() {
		t.Run(activityType, func(t *testing.T) {
			result := Fallback(activityType, "es", "en", "Intermediate", "")
			for _, field := range Shape(activityType) {
				assert.Contains(t, result, field)
			}
			for field, value := range result {
				if entries, ok := value.([]interface{}); ok {
					assert.GreaterOrEqual(t, len(entries), MinListLength, "field %s", field)
				}
			}
		})
	}
}

func TestFallbackConversationVocabulary(t *testing.T) {
	result := Fallback(TypeConversation, "es", "en", "Beginner", "")
	assert.Equal(t, []interface{}{"hello", "goodbye", "thank you", "please", "help"}, result["key_vocabulary"])
}

func TestFallbackLanguageSubstitution(t *testing.T) {
	result := Fallback(TypeConversation, "es", "en", "Beginner", "Travel")
	assert.Equal(t, "Conversation Exercise in Spanish", result["title"])
	assert.Equal(t, "A Beginner level activity about Travel.", result["description"])
}

func TestFallbackUnknownLanguageGeneric(t *testing.T) {
	result := Fallback(TypeConversation, "xx", "en", "Beginner", "")
	assert.Equal(t, "Conversation Exercise in this language", result["title"])
}

func TestFallbackRomanization(t *testing.T) {
	result := Fallback(TypeConversation, "ja", "en", "Beginner", "")

	romanization, ok := result["romanization"].(map[string]interface{})
	require.True(t, ok)

	vocab := romanization["key_vocabulary"].([]interface{})
	require.NotEmpty(t, vocab)
	assert.Equal(t, "hello (romanized)", vocab[0])
}

func TestFallbackNoRomanizationForLatinScripts(t *testing.T) {
	result := Fallback(TypeConversation, "es", "en", "Beginner", "")
	assert.NotContains(t, result, "romanization")
}

func TestFallbackCompleteIsNoOp(t *testing.T) {
	// Callers must not be able to distinguish a fallback from a repaired
	// generation; running one through the completer must change nothing.
	for _, activityType := range Types() {
		t.Run(activityType, func(t *testing.T) {
			fallback := Fallback(activityType, "ja", "en", "Advanced", "Travel")
			assert.Equal(t, fallback, Complete(fallback, activityType, "ja"))
		})
	}
}
