package models

import "time"

// RoleAdmin is the only role allowed through the admin gate.
const RoleAdmin = "admin"

// User is an account in the credential store.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username     string    `json:"username" gorm:"uniqueIndex;type:varchar(100);not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;type:varchar(255);not null"` // never serialized
	Role         string    `json:"role" gorm:"type:varchar(32);not null;default:admin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
