package models

import "time"

// Certificate is a professional certification held by the site owner.
type Certificate struct {
	ID            string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title         string     `json:"title" gorm:"type:varchar(255);not null"`
	Issuer        string     `json:"issuer" gorm:"type:varchar(255);not null"`
	Description   *string    `json:"description" gorm:"type:text"`
	ImageURL      *string    `json:"imageUrl" gorm:"column:image_url;type:text"`
	CredentialURL *string    `json:"credentialUrl" gorm:"column:credential_url;type:text"`
	IssueDate     time.Time  `json:"issueDate" gorm:"not null;index"`
	ExpiryDate    *time.Time `json:"expiryDate"`
	Skills        StringList `json:"skills" gorm:"type:text;not null"`
	Featured      bool       `json:"featured" gorm:"not null;default:false"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
