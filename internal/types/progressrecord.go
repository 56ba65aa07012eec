package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressRecord is a per-day learning aggregate. One row per increment; the
// report layer groups rows by calendar date.
type ProgressRecord struct {
	gorm.Model
	ID                   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User                 *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Date                 time.Time `gorm:"not null;index;column:date" json:"date"`
	VocabularyCount      int       `gorm:"not null;default:0;column:vocabulary_count" json:"vocabulary_count"`
	ConversationDuration int       `gorm:"not null;default:0;column:conversation_duration" json:"conversation_duration"`
	MistakesMade         int       `gorm:"not null;default:0;column:mistakes_made" json:"mistakes_made"`
	MistakesCorrected    int       `gorm:"not null;default:0;column:mistakes_corrected" json:"mistakes_corrected"`
	FluencyScore         float64   `gorm:"not null;default:0;column:fluency_score" json:"fluency_score"`
	CreatedAt            time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt            time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (ProgressRecord) TableName() string {
	return "progress_record"
}
