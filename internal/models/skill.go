package models

import "time"

// DefaultSkillLevel is applied when a skill is saved without a level.
const DefaultSkillLevel = 1

// Skill is a named technology badge. Names are unique.
type Skill struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"uniqueIndex;type:varchar(100);not null"`
	Color     string    `json:"color" gorm:"type:varchar(64);not null"`
	Category  *string   `json:"category" gorm:"type:varchar(64)"`
	Level     int       `json:"level" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
