package activity

import (
	"fmt"

	"github.com/yungbote/linguadex-backend/internal/languages"
)

// Complete repairs a parsed activity so it satisfies the shape for its
// type: absent fields get placeholders, list fields are padded to
// MinListLength, and a romanization mapping is synthesized when the target
// language needs one. Fields the model actually supplied are never removed
// or overwritten, and completing an already-complete object is a no-op.
func Complete(parsed Parsed, activityType, targetLanguage string) Parsed {
	result := make(Parsed, len(parsed)+len(shapes[activityType]))
	for key, value := range parsed {
		result[key] = value
	}

	for _, field := range shapes[activityType] {
		if _, ok := result[field]; !ok {
			result[field] = placeholderFor(field, targetLanguage)
		}
		result[field] = padList(field, result[field], targetLanguage)
	}

	if languages.RequiresRomanization(targetLanguage) {
		if _, isMap := result["romanization"].(map[string]interface{}); !isMap {
			result["romanization"] = synthesizeRomanization(result, activityType)
		}
	}

	return result
}

// placeholderFor picks the placeholder kind by field name: string lists get
// MinListLength generic entries, the reading "vocabulary" field one word
// record, everything else a generic string.
func placeholderFor(field, targetLanguage string) interface{} {
	switch {
	case listFields[field]:
		entries := make([]interface{}, 0, MinListLength)
		for i := 1; i <= MinListLength; i++ {
			entries = append(entries, fmt.Sprintf("Example %s %d", field, i))
		}
		return entries
	case field == "vocabulary":
		return []interface{}{vocabularyPlaceholder(targetLanguage, 1)}
	default:
		return fmt.Sprintf("Example %s", field)
	}
}

func vocabularyPlaceholder(targetLanguage string, n int) map[string]interface{} {
	languageName := languages.Name(targetLanguage)
	return map[string]interface{}{
		"word":       fmt.Sprintf("Example %s word %d", languageName, n),
		"definition": "Definition in simple terms",
		"example":    "Example usage",
	}
}

// padList extends a list value to MinListLength, preserving existing
// entries. Non-list values pass through untouched.
func padList(field string, value interface{}, targetLanguage string) interface{} {
	entries, ok := value.([]interface{})
	if !ok {
		return value
	}
	for i := len(entries); i < MinListLength; i++ {
		if field == "vocabulary" {
			entries = append(entries, vocabularyPlaceholder(targetLanguage, i+1))
		} else {
			entries = append(entries, fmt.Sprintf("Example %s %d", field, i+1))
		}
	}
	return entries
}

// synthesizeRomanization builds a placeholder romanization mapping keyed by
// the type's target-language list fields, deriving each entry from the real
// content so the object remains plausible to render.
func synthesizeRomanization(parsed Parsed, activityType string) map[string]interface{} {
	romanization := make(map[string]interface{})
	for _, field := range romanizedFields[activityType] {
		entries, ok := parsed[field].([]interface{})
		if !ok {
			continue
		}
		romanized := make([]interface{}, 0, len(entries))
		for _, entry := range entries {
			romanized = append(romanized, romanPlaceholder(entry))
		}
		romanization[field] = romanized
	}
	return romanization
}

// romanPlaceholder truncates real content to its first 10 characters plus
// an ellipsis. Word records contribute their "word" value.
func romanPlaceholder(entry interface{}) string {
	text := ""
	switch v := entry.(type) {
	case string:
		text = v
	case map[string]interface{}:
		if word, ok := v["word"].(string); ok {
			text = word
		}
	default:
		text = fmt.Sprint(v)
	}

	runes := []rune(text)
	if len(runes) > 10 {
		runes = runes[:10]
	}
	return string(runes) + "..."
}
