package activity

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptEmbedsShapeFields(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, activityType := range Types() {
		t.Run(activityType, func(t *testing.T) {
			_, userPrompt := BuildPrompt(Request{
				TargetLanguage: "es",
				NativeLanguage: "en",
				Level:          "Beginner",
				Type:           activityType,
				Topic:          "Food",
			}, rng)

			for _, field := range Shape(activityType) {
				assert.Contains(t, userPrompt, `"`+field+`"`)
			}
		})
	}
}

func TestBuildPromptUsesSuppliedTopic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, userPrompt := BuildPrompt(Request{
		TargetLanguage: "es",
		Level:          "Beginner",
		Type:           TypeConversation,
		Topic:          "Ordering food",
	}, rng)
	assert.Contains(t, userPrompt, "Topic: Ordering food")
}

func TestBuildPromptPicksTopicDeterministicallyWithSeededSource(t *testing.T) {
	first, second := rand.New(rand.NewSource(7)), rand.New(rand.NewSource(7))
	_, promptA := BuildPrompt(Request{TargetLanguage: "es", Level: "Beginner", Type: TypeConversation}, first)
	_, promptB := BuildPrompt(Request{TargetLanguage: "es", Level: "Beginner", Type: TypeConversation}, second)
	assert.Equal(t, promptA, promptB)
}

func TestBuildPromptUnknownLevelFallsBackToGenericTopic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, userPrompt := BuildPrompt(Request{TargetLanguage: "es", Level: "Wizard", Type: TypeConversation}, rng)
	assert.Contains(t, userPrompt, "Topic: General conversation practice")
}

func TestBuildPromptUnknownLanguageDefaultsToEnglish(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, userPrompt := BuildPrompt(Request{TargetLanguage: "zz", Level: "Beginner", Type: TypeConversation, Topic: "Food"}, rng)
	assert.Contains(t, userPrompt, "learning English")
}

func TestBuildPromptRomanizationInstruction(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, japanese := BuildPrompt(Request{TargetLanguage: "ja", Level: "Beginner", Type: TypeConversation, Topic: "Food"}, rng)
	assert.Contains(t, japanese, "romanization")

	_, spanish := BuildPrompt(Request{TargetLanguage: "es", Level: "Beginner", Type: TypeConversation, Topic: "Food"}, rng)
	assert.False(t, strings.Contains(spanish, "romanization"))
}

func TestBuildPromptSystemPrompt(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	systemPrompt, _ := BuildPrompt(Request{TargetLanguage: "es", Level: "Beginner", Type: TypeConversation, Topic: "Food"}, rng)
	assert.Equal(t, generatorSystemPrompt, systemPrompt)
}
