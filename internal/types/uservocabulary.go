package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserVocabulary carries the per-user mastery state for a vocabulary word.
// Proficiency is clamped to [0.0, 1.0] by the service layer.
type UserVocabulary struct {
	gorm.Model
	ID           uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID   `gorm:"type:uuid;not null;index:idx_user_vocabulary_pair,unique" json:"user_id"`
	User         *User       `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	VocabularyID uuid.UUID   `gorm:"type:uuid;not null;index:idx_user_vocabulary_pair,unique" json:"vocabulary_id"`
	Vocabulary   *Vocabulary `gorm:"constraint:OnDelete:CASCADE;foreignKey:VocabularyID;references:ID" json:"vocabulary,omitempty"`
	Proficiency  float64     `gorm:"not null;default:0;column:proficiency" json:"proficiency"`
	LastReviewed time.Time   `gorm:"column:last_reviewed" json:"last_reviewed"`
	CreatedAt    time.Time   `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"not null;default:now()" json:"updated_at"`
}

func (UserVocabulary) TableName() string {
	return "user_vocabulary"
}
