package activity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeValidJSONUnchanged(t *testing.T) {
	parsed, err := Normalize(`{"title": "Hi", "questions": ["One?", "Two?"]}`)
	require.NoError(t, err)
	assert.Equal(t, Parsed{
		"title":     "Hi",
		"questions": []interface{}{"One?", "Two?"},
	}, parsed)
}

func TestNormalizeFenceStrip(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "json tagged fence", raw: "```json\n{\"title\":\"Hi\"}\n```"},
		{name: "untagged fence", raw: "```\n{\"title\":\"Hi\"}\n```"},
		{name: "fence with surrounding whitespace", raw: "  ```json\n{\"title\":\"Hi\"}\n```  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, Parsed{"title": "Hi"}, parsed)
		})
	}
}

func TestNormalizeQuoteRepair(t *testing.T) {
	parsed, err := Normalize(`{'title': 'Hi'}`)
	require.NoError(t, err)
	assert.Equal(t, Parsed{"title": "Hi"}, parsed)
}

func TestNormalizeNoRepairWhenDoubleQuotesPresent(t *testing.T) {
	// Mixed quoting is ambiguous; swapping would corrupt valid content.
	_, err := Normalize(`{"title": 'Hi'}`)
	require.Error(t, err)

	var normErr *NormalizationError
	require.True(t, errors.As(err, &normErr))
	assert.NotEmpty(t, normErr.Attempted)
}

func TestNormalizeUnparseable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "prose", raw: "Here is your activity!"},
		{name: "empty", raw: ""},
		{name: "truncated object", raw: `{"title": "Hi", "descr`},
		{name: "repair still invalid", raw: `{'title': 'Hi',}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.raw)
			require.Error(t, err)
			var normErr *NormalizationError
			assert.True(t, errors.As(err, &normErr))
		})
	}
}
