// Package languages holds the static language tables the whole service keys
// off: code to display-name mapping, the non-Latin-script allow-list, the
// proficiency level ladder, and the level-keyed conversation topics. The
// tables ship as an embedded YAML document so the allow-lists stay explicit
// configuration rather than inferred behavior.
package languages

import (
	_ "embed"
	"fmt"
	"math/rand"

	"gopkg.in/yaml.v3"
)

//go:embed languages.yaml
var rawConfig []byte

type config struct {
	Names           map[string]string   `yaml:"names"`
	NonLatinScripts []string            `yaml:"non_latin_scripts"`
	Levels          []string            `yaml:"levels"`
	WordsPerLevel   map[string]int      `yaml:"words_per_level"`
	Topics          map[string][]string `yaml:"topics"`
}

var cfg config
var nonLatin map[string]bool

func init() {
	if err := yaml.Unmarshal(rawConfig, &cfg); err != nil {
		panic(fmt.Sprintf("languages: bad embedded config: %v", err))
	}
	nonLatin = make(map[string]bool, len(cfg.NonLatinScripts))
	for _, code := range cfg.NonLatinScripts {
		nonLatin[code] = true
	}
}

// Name resolves a language code to its display name. Unknown codes resolve
// to "English"; callers must never fail on an unrecognized code.
func Name(code string) string {
	if name, ok := cfg.Names[code]; ok {
		return name
	}
	return "English"
}

// NameOrGeneric resolves a language code to its display name, falling back
// to the generic "this language" label for unknown codes. Used where the
// text reads better with a generic phrase than with a wrong language name.
func NameOrGeneric(code string) string {
	if name, ok := cfg.Names[code]; ok {
		return name
	}
	return "this language"
}

// IsSupported reports whether the code appears in the display-name table.
func IsSupported(code string) bool {
	_, ok := cfg.Names[code]
	return ok
}

// RequiresRomanization reports whether the language is on the non-Latin
// script allow-list.
func RequiresRomanization(code string) bool {
	return nonLatin[code]
}

// Levels returns the proficiency ladder in ascending order.
func Levels() []string {
	out := make([]string, len(cfg.Levels))
	copy(out, cfg.Levels)
	return out
}

// IsValidLevel reports whether level is one of the configured levels.
func IsValidLevel(level string) bool {
	for _, l := range cfg.Levels {
		if l == level {
			return true
		}
	}
	return false
}

// WordsForLevel returns the vocabulary-count threshold for a level, or 0 for
// unknown levels.
func WordsForLevel(level string) int {
	return cfg.WordsPerLevel[level]
}

// NextLevel returns the level after the given one, or "" at the top of the
// ladder (and for unknown levels).
func NextLevel(level string) string {
	for i, l := range cfg.Levels {
		if l == level && i+1 < len(cfg.Levels) {
			return cfg.Levels[i+1]
		}
	}
	return ""
}

// TopicsForLevel returns the conversation topics configured for a level. The
// returned slice is a copy.
func TopicsForLevel(level string) []string {
	topics := cfg.Topics[level]
	out := make([]string, len(topics))
	copy(out, topics)
	return out
}

// RandomTopic picks a uniform random topic for the level, or returns "" when
// the level has none configured. A nil rng falls back to the global source.
func RandomTopic(level string, rng *rand.Rand) string {
	topics := cfg.Topics[level]
	if len(topics) == 0 {
		return ""
	}
	if rng != nil {
		return topics[rng.Intn(len(topics))]
	}
	return topics[rand.Intn(len(topics))]
}
