package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex;not null;column:username" json:"username"`
	Email          string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password       string    `gorm:"not null;column:password" json:"-"`
	NativeLanguage string    `gorm:"not null;column:native_language" json:"native_language"`
	TargetLanguage string    `gorm:"not null;column:target_language" json:"target_language"`
	CurrentLevel   string    `gorm:"not null;default:'Beginner';column:current_level" json:"current_level"`
	LastActive     time.Time `gorm:"column:last_active" json:"last_active"`
	CreatedAt      time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (User) TableName() string {
	return "user"
}
