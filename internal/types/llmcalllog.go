package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LLMCallLog records every completion-endpoint round trip for diagnostics.
// Generation failures never surface to users, so this table is the only
// place they remain visible. No gorm.Model embed here: its embedded field
// name collides with the Model column.
type LLMCallLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    *uuid.UUID     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CallType  string         `gorm:"not null;column:call_type" json:"call_type"`
	Model     string         `gorm:"not null;column:model" json:"model"`
	Prompt    string         `gorm:"type:text;column:prompt" json:"prompt"`
	Response  string         `gorm:"type:text;column:response" json:"response"`
	Success   bool           `gorm:"not null;column:success" json:"success"`
	Error     string         `gorm:"column:error" json:"error"`
	Usage     datatypes.JSON `gorm:"column:usage" json:"usage"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (LLMCallLog) TableName() string {
	return "llm_call_log"
}
