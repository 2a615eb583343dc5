package models

// Tag is an admin-curated label posts can reference.
type Tag struct {
	ID   string `gorm:"primaryKey;size:24" json:"_id"`
	Name string `gorm:"not null" json:"name"`
}
