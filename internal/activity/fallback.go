package activity

import (
	"fmt"
	"strings"

	"github.com/yungbote/linguadex-backend/internal/languages"
)

// Fallback builds a fully static activity for when generation or parsing
// fails. It performs no I/O and no random selection, so identical arguments
// always yield identical output. The result carries every shape field with
// renderable content; callers cannot tell it apart from a generated
// activity structurally.
func Fallback(activityType, targetLanguage, nativeLanguage, level, topic string) Parsed {
	languageName := languages.NameOrGeneric(targetLanguage)
	if topic == "" {
		topic = "general language practice"
	}

	var result Parsed
	switch activityType {
	case TypeFillInBlanks:
		result = Parsed{
			"title":       fmt.Sprintf("%s Exercise in %s", capitalize(activityType), languageName),
			"description": fmt.Sprintf("A %s level activity about %s.", level, topic),
			"text":        "Every morning I ____ breakfast before I ____ to work. In the evening I like to ____ books.",
			"answers":     []interface{}{"eat", "go", "read"},
			"hints":       []interface{}{"All blanks are common verbs", "Think about daily routines", "The last blank is a hobby"},
		}
	case TypeReading:
		result = Parsed{
			"title":       fmt.Sprintf("%s Exercise in %s", capitalize(activityType), languageName),
			"description": fmt.Sprintf("A %s level activity about %s.", level, topic),
			"text":        "Maria lives in a small town. Every day she walks to the market to buy fresh bread. She enjoys talking with the shopkeepers and learning new words.",
			"questions":   []interface{}{"Where does Maria live?", "What does she buy at the market?", "What does she enjoy doing?"},
			"vocabulary": []interface{}{
				map[string]interface{}{"word": "market", "definition": "A place where goods are bought and sold", "example": "She walks to the market."},
				map[string]interface{}{"word": "fresh", "definition": "Recently made or obtained", "example": "The bread is fresh."},
				map[string]interface{}{"word": "shopkeeper", "definition": "A person who owns or runs a shop", "example": "She talks with the shopkeepers."},
			},
		}
	default:
		result = Parsed{
			"title":          fmt.Sprintf("%s Exercise in %s", capitalize(activityType), languageName),
			"description":    fmt.Sprintf("A %s level activity about %s.", level, topic),
			"scenario":       "Practice your language skills with this activity.",
			"key_vocabulary": []interface{}{"hello", "goodbye", "thank you", "please", "help"},
			"key_phrases":    []interface{}{"How are you?", "My name is...", "I would like...", "Can you help me?"},
			"questions":      []interface{}{"What is your name?", "Where are you from?", "What do you like to do?"},
			"hints":          []interface{}{"Try to use new vocabulary", "Practice your pronunciation", "Don't worry about small mistakes"},
		}
	}

	if languages.RequiresRomanization(targetLanguage) {
		romanization := make(map[string]interface{})
		for _, field := range romanizedFields[activityType] {
			entries, ok := result[field].([]interface{})
			if !ok {
				continue
			}
			romanized := make([]interface{}, 0, len(entries))
			for _, entry := range entries {
				switch v := entry.(type) {
				case string:
					romanized = append(romanized, v+" (romanized)")
				case map[string]interface{}:
					if word, ok := v["word"].(string); ok {
						romanized = append(romanized, word+" (romanized)")
					}
				}
			}
			romanization[field] = romanized
		}
		result["romanization"] = romanization
	}

	return result
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
