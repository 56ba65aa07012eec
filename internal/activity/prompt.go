package activity

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/yungbote/linguadex-backend/internal/languages"
)

// Request carries everything needed to generate one activity. It is built
// per call and discarded with the result.
type Request struct {
	TargetLanguage string
	NativeLanguage string
	Level          string
	Type           string
	Topic          string
}

const generatorSystemPrompt = "You are a language learning activity generator that creates structured activities in JSON format."

// BuildPrompt composes the system and user prompts for an activity request.
// It is a pure function: unknown language codes degrade to defaults, an
// empty topic is drawn from the level's topic list via rng, and it never
// fails. Pass a seeded rng in tests for a deterministic topic.
func BuildPrompt(req Request, rng *rand.Rand) (systemPrompt, userPrompt string) {
	languageName := languages.Name(req.TargetLanguage)

	topic := req.Topic
	if topic == "" {
		topic = languages.RandomTopic(req.Level, rng)
	}
	if topic == "" {
		topic = "General conversation practice"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a %s language learning activity for a %s level student learning %s.\n", req.Type, req.Level, languageName)
	fmt.Fprintf(&b, "Topic: %s\n\n", topic)
	b.WriteString("IMPORTANT: Format your response STRICTLY according to the structure below.\n\n")
	b.WriteString(shapeExample(req.Type, languageName, req.Level))

	if languages.RequiresRomanization(req.TargetLanguage) {
		fmt.Fprintf(&b, "\nBecause %s uses a non-Latin script, also include a \"romanization\" field: an object mirroring the fields that contain %s text, with each entry transliterated into the Latin alphabet.\n", languageName, languageName)
	}

	b.WriteString("\nReturn ONLY the JSON object with no additional text. Do not include ```json at the beginning or ``` at the end.\n")

	return generatorSystemPrompt, b.String()
}

// shapeExample renders the literal JSON example for one activity type. The
// field set must match Shape(activityType) exactly.
func shapeExample(activityType, languageName, level string) string {
	switch activityType {
	case TypeFillInBlanks:
		return `{
  "title": "A descriptive title",
  "description": "Brief explanation of the exercise",
  "text": "This is an example ____ with blank spaces for ____ to fill in.",
  "answers": ["text", "students"],
  "hints": ["Hint 1 for first blank", "Hint 2 for second blank"]
}
`
	case TypeReading:
		return fmt.Sprintf(`{
  "title": "Reading passage title",
  "description": "Brief description of the passage and goals",
  "text": "Full reading passage text appropriate for %s level",
  "questions": ["Comprehension question 1?", "Comprehension question 2?"],
  "vocabulary": [
    {"word": "%s word", "definition": "Definition in simple terms", "example": "Example usage"}
  ]
}
`, level, languageName)
	default:
		return `{
  "title": "A descriptive title for the activity",
  "description": "Brief explanation of what the user will practice",
  "scenario": "Detailed scenario setting up the conversation context",
  "key_vocabulary": ["word1", "word2", "word3", "word4", "word5"],
  "key_phrases": ["Useful phrase 1", "Useful phrase 2", "Useful phrase 3"],
  "questions": ["Question 1 to start conversation?", "Question 2 to continue?", "Question 3 to expand?"],
  "hints": ["Helpful hint 1", "Helpful hint 2"]
}
`
	}
}
