// Package activity implements the generation pipeline for learning
// activities: prompt building, response normalization, schema completion
// and static fallbacks. Every caller receives a complete activity object
// whether or not the model cooperated.
package activity

import "sort"

// Parsed is a generated activity keyed by field name. Values are strings,
// lists of strings, or lists of {word, definition, example} records.
type Parsed map[string]interface{}

const (
	TypeConversation = "conversation"
	TypeFillInBlanks = "fill-in-blanks"
	TypeReading      = "reading"
)

// MinListLength is the floor every list field is padded to during schema
// completion.
const MinListLength = 3

// shapes maps each activity type to its ordered required field list. The
// same list is embedded verbatim in the generation prompt, so prompt and
// repair can never drift apart.
var shapes = map[string][]string{
	TypeConversation: {"title", "description", "scenario", "key_vocabulary", "key_phrases", "questions", "hints"},
	TypeFillInBlanks: {"title", "description", "text", "answers", "hints"},
	TypeReading:      {"title", "description", "text", "questions", "vocabulary"},
}

// listFields are the shape fields whose values are lists of strings.
// "vocabulary" is a list too, but of word records, and is handled apart.
var listFields = map[string]bool{
	"key_vocabulary": true,
	"key_phrases":    true,
	"questions":      true,
	"hints":          true,
	"answers":        true,
}

// romanizedFields names, per type, the list fields that carry
// target-language text and therefore need a parallel romanization entry.
var romanizedFields = map[string][]string{
	TypeConversation: {"key_vocabulary", "key_phrases", "questions"},
	TypeFillInBlanks: {"answers"},
	TypeReading:      {"questions", "vocabulary"},
}

// Shape returns the required field list for an activity type, or nil for an
// unknown type.
func Shape(activityType string) []string {
	return shapes[activityType]
}

// IsValidType reports whether activityType is one of the supported kinds.
func IsValidType(activityType string) bool {
	_, ok := shapes[activityType]
	return ok
}

// Types returns the supported activity types in sorted order.
func Types() []string {
	result := make([]string, 0, len(shapes))
	for activityType := range shapes {
		result = append(result, activityType)
	}
	sort.Strings(result)
	return result
}
