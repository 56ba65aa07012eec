package languages

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameFallsBackToEnglish(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{code: "es", want: "Spanish"},
		{code: "ja", want: "Japanese"},
		{code: "no", want: "Norwegian"},
		{code: "zz", want: "English"},
		{code: "", want: "English"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Name(tt.code), "code %q", tt.code)
	}
}

func TestNameOrGeneric(t *testing.T) {
	assert.Equal(t, "Spanish", NameOrGeneric("es"))
	assert.Equal(t, "this language", NameOrGeneric("zz"))
}

func TestRequiresRomanization(t *testing.T) {
	for _, code := range []string{"ja", "zh", "ko", "ru", "ar", "th", "he", "el", "uk", "bn", "hi"} {
		assert.True(t, RequiresRomanization(code), "code %q", code)
	}
	for _, code := range []string{"en", "es", "fr", "de", "zz"} {
		assert.False(t, RequiresRomanization(code), "code %q", code)
	}
}

func TestLevelProgression(t *testing.T) {
	assert.Equal(t, "Intermediate", NextLevel("Beginner"))
	assert.Equal(t, "Advanced", NextLevel("Intermediate"))
	assert.Equal(t, "Fluent", NextLevel("Advanced"))
	assert.Equal(t, "", NextLevel("Fluent"))
	assert.Equal(t, "", NextLevel("Wizard"))
}

func TestWordsForLevel(t *testing.T) {
	assert.Equal(t, 500, WordsForLevel("Beginner"))
	assert.Equal(t, 2000, WordsForLevel("Intermediate"))
	assert.Equal(t, 5000, WordsForLevel("Advanced"))
	assert.Equal(t, 10000, WordsForLevel("Fluent"))
	assert.Equal(t, 0, WordsForLevel("Wizard"))
}

func TestRandomTopicDrawsFromLevelList(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	topics := TopicsForLevel("Beginner")
	assert.NotEmpty(t, topics)

	for i := 0; i < 20; i++ {
		assert.Contains(t, topics, RandomTopic("Beginner", rng))
	}
}

func TestRandomTopicUnknownLevel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	assert.Equal(t, "", RandomTopic("Wizard", rng))
}

func TestIsValidLevel(t *testing.T) {
	for _, level := range Levels() {
		assert.True(t, IsValidLevel(level))
	}
	assert.False(t, IsValidLevel("wizard"))
}
