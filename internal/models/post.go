package models

import "time"

// Post is a user submission that can be voted on.
type Post struct {
	ID          string    `gorm:"primaryKey;size:24" json:"_id"`
	AuthorName  string    `json:"authorName"`
	AuthorEmail string    `gorm:"index;not null" json:"authorEmail"`
	AuthorImage string    `json:"authorImage,omitempty"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`
	UpVote      int64     `gorm:"not null;default:0" json:"upVote"`
	DownVote    int64     `gorm:"not null;default:0" json:"downVote"`
	CreatedAt   time.Time `json:"createdAt"`
}
