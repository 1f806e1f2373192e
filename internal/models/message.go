package models

import "time"

// DefaultMessageSubject is stored when the contact form omits a subject.
const DefaultMessageSubject = "No Subject"

// Message is a contact-form submission.
type Message struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"type:varchar(255);not null"`
	Subject   string    `json:"subject" gorm:"type:varchar(255);not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Read      bool      `json:"read" gorm:"not null;default:false;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

// MessageSummary is the slice of a message used in the dashboard activity feed.
type MessageSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `json:"read"`
}
