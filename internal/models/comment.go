package models

import "time"

// Comment belongs to a post by PostID. Title duplicates the post title so
// comments can be looked up by it; neither link is enforced.
type Comment struct {
	ID          string    `gorm:"primaryKey;size:24" json:"_id"`
	PostID      string    `gorm:"index;size:24" json:"postId"`
	Title       string    `gorm:"index" json:"title"`
	Body        string    `json:"body"`
	AuthorEmail string    `json:"authorEmail"`
	CreatedAt   time.Time `json:"createdAt"`
}
