package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLLMCallLogModelColumn(t *testing.T) {
	entry := LLMCallLog{
		CallType: "activity",
		Model:    "openai/gpt-4o-mini",
		Success:  false,
		Error:    "completion request failed",
	}
	assert.Equal(t, "llm_call_log", entry.TableName())
	assert.Equal(t, "openai/gpt-4o-mini", entry.Model)
	assert.False(t, entry.Success)
}
