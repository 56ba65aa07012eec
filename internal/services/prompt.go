package services

import (
	"fmt"
	"strings"

	"github.com/yungbote/linguadex-backend/internal/languages"
	"github.com/yungbote/linguadex-backend/internal/types"
)

// MaxConversationHistory bounds how many prior messages ride along with a
// conversation completion.
const MaxConversationHistory = 10

// buildConversationSystemPrompt composes the tutoring persona for a user,
// with sentence complexity and grammar focus keyed to their level.
func buildConversationSystemPrompt(user *types.User, topic string) string {
	languageName := languages.Name(user.TargetLanguage)
	nativeLanguageName := languages.Name(user.NativeLanguage)
	level := user.CurrentLevel

	sentenceComplexity := "short and simple"
	grammarFocus := "Focus on present tense and basic questions"
	switch level {
	case "Intermediate":
		sentenceComplexity = "moderately complex"
		grammarFocus = "Introduce past tenses and conditionals"
	case "Advanced":
		sentenceComplexity = "varied and natural"
		grammarFocus = "Use a full range of tenses and grammatical structures"
	case "Fluent":
		sentenceComplexity = "sophisticated and nuanced"
		grammarFocus = "Include idiomatic expressions and cultural nuances"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a helpful, encouraging language learning assistant specializing in teaching %s.\n", languageName)
	fmt.Fprintf(&b, "You MUST communicate with the user primarily in %s, regardless of what language they write to you in.\n", languageName)
	fmt.Fprintf(&b, "The user is a %s level student whose native language is %s.\n\n", level, nativeLanguageName)
	b.WriteString("Your goals:\n")
	fmt.Fprintf(&b, "1. Converse naturally in %s, keeping vocabulary and grammar appropriate for their %s level\n", languageName, level)
	b.WriteString("2. Gently correct errors without interrupting the flow of conversation\n")
	b.WriteString("3. Introduce new vocabulary and grammar concepts gradually\n")
	fmt.Fprintf(&b, "4. Provide explanations in %s when necessary, but ALWAYS RETURN TO SPEAKING %s\n", nativeLanguageName, languageName)
	b.WriteString("5. Be patient, encouraging, and adapt to the user's learning pace\n\n")
	fmt.Fprintf(&b, "For %s level:\n", level)
	b.WriteString("- Use mostly common, everyday vocabulary\n")
	fmt.Fprintf(&b, "- Keep sentences %s\n", sentenceComplexity)
	fmt.Fprintf(&b, "- %s\n\n", grammarFocus)
	b.WriteString("When correcting errors:\n")
	b.WriteString("- For minor errors, model the correct usage in your response without explicitly pointing it out\n")
	b.WriteString("- For significant errors, provide the correction in [brackets] after the user's message\n")
	fmt.Fprintf(&b, "- Offer brief explanations for corrections in %s when appropriate\n", nativeLanguageName)
	b.WriteString("- Keep error correction proportional (correct 1-2 errors at most)\n")

	if topic != "" {
		fmt.Fprintf(&b, "\nCurrent session focus:\n- Topic: %s\n", topic)
	}

	return b.String()
}

func buildAnalysisPrompt(userMessage, language, level string) string {
	languageName := languages.Name(language)
	return fmt.Sprintf(`Analyze the following message from a %s level %s language learner.
Message: "%s"

Provide the following in a structured JSON format:
1. Errors: List of grammar or vocabulary errors with corrections
2. Vocabulary: List of words/phrases used and their difficulty level
3. Grammar: Assessment of grammatical structures used
4. Fluency: Rating from 0.0 to 1.0
5. Suggestions: Recommended vocabulary or grammar to introduce next

JSON Format:
{
  "errors": [
    {"original": "error text", "correction": "corrected text", "explanation": "brief explanation"}
  ],
  "vocabulary": [
    {"word": "word used", "level": "Beginner/Intermediate/Advanced", "mastery": 0.5}
  ],
  "grammar": {"structures": ["structures used"], "complexity": 0.5, "appropriate_for_level": true},
  "fluency": 0.5,
  "suggestions": [
    {"type": "vocabulary", "item": "suggested item", "example": "example usage"}
  ]
}

Output ONLY valid JSON without additional text.`, level, languageName, userMessage)
}

func buildSuggestionPrompt(user *types.User, topic string, count int) string {
	languageName := languages.Name(user.TargetLanguage)
	nativeLanguageName := languages.Name(user.NativeLanguage)

	topicLine := "General vocabulary appropriate for their level"
	if topic != "" {
		topicLine = "Topic: " + topic
	}

	return fmt.Sprintf(`Generate %d vocabulary suggestions for a %s level %s language learner.
Native language: %s
%s

Provide the following in a structured JSON format:
{
  "vocabulary": [
    {
      "word": "word in %s",
      "translation": "translation in %s",
      "part_of_speech": "noun/verb/adjective/etc.",
      "example_sentence": "example sentence in %s",
      "example_translation": "translation of example sentence",
      "difficulty": "easy/medium/hard for %s level"
    }
  ]
}

Output ONLY valid JSON without additional text.`, count, user.CurrentLevel, languageName, nativeLanguageName, topicLine, languageName, nativeLanguageName, languageName, user.CurrentLevel)
}

func buildTranslationPrompt(text, sourceLang, targetLang string) string {
	sourceName := languages.Name(sourceLang)
	targetName := languages.Name(targetLang)
	return fmt.Sprintf("Translate the following text from %s to %s:\n\n\"%s\"\n\nProvide ONLY the translation without any additional text.", sourceName, targetName, text)
}
