package models

import "time"

// Project is a portfolio entry shown on the public site.
type Project struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string     `json:"title" gorm:"type:varchar(255);not null"`
	Description string     `json:"description" gorm:"type:text;not null"`
	Tech        StringList `json:"tech" gorm:"type:text;not null"`
	ImageURL    *string    `json:"imageUrl" gorm:"column:image_url;type:text"`
	GithubURL   *string    `json:"githubUrl" gorm:"column:github_url;type:text"`
	LiveURL     *string    `json:"liveUrl" gorm:"column:live_url;type:text"`
	Featured    bool       `json:"featured" gorm:"not null;default:false"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ProjectSummary is the slice of a project used in the dashboard activity feed.
type ProjectSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}
