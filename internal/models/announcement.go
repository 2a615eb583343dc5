package models

import "time"

// Announcement is a site-wide notice published by an admin.
type Announcement struct {
	ID          string    `gorm:"primaryKey;size:24" json:"_id"`
	AuthorName  string    `json:"authorName,omitempty"`
	AuthorImage string    `json:"authorImage,omitempty"`
	Title       string    `json:"title,omitempty"`
	Content     string    `gorm:"not null" json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
}
