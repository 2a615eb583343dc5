package models

import "time"

// Roles and badges a user can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	BadgeNone = "none"
	BadgeGold = "Gold"
)

// User is created the first time a client signs in.
type User struct {
	ID        string    `gorm:"primaryKey;size:24" json:"_id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `json:"name"`
	Photo     string    `json:"photo,omitempty"`
	Role      string    `gorm:"not null;default:user" json:"role"`
	Badge     string    `gorm:"not null;default:none" json:"badge"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// BadgeView is the projection returned by the badge lookup.
type BadgeView struct {
	Badge string `json:"badge"`
}

// Stats holds approximate collection sizes for the admin dashboard.
type Stats struct {
	Users    int64 `json:"users"`
	Posts    int64 `json:"posts"`
	Comments int64 `json:"comments"`
}
