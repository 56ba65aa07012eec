package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vocabulary struct {
	gorm.Model
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Word            string    `gorm:"not null;index:idx_vocabulary_word_language,unique;column:word" json:"word"`
	Language        string    `gorm:"not null;index:idx_vocabulary_word_language,unique;column:language" json:"language"`
	Translation     string    `gorm:"column:translation" json:"translation"`
	DifficultyLevel string    `gorm:"column:difficulty_level" json:"difficulty_level"`
	PartOfSpeech    string    `gorm:"column:part_of_speech" json:"part_of_speech"`
	ExampleSentence string    `gorm:"type:text;column:example_sentence" json:"example_sentence"`
	CreatedAt       time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Vocabulary) TableName() string {
	return "vocabulary"
}
