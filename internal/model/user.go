package model

import "time"

// User roles.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User represents a registered forum member.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:64;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Points       int       `json:"points" gorm:"default:0;not null"`
	Role         string    `json:"role" gorm:"size:50;default:'member';not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile is the reduced user view returned to clients. Level is derived
// from Points at read time and never stored.
type Profile struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Points   int    `json:"points"`
	Level    int    `json:"level"`
	Role     string `json:"role"`
}

// Profile builds the client-facing view of the user.
func (u *User) Profile() Profile {
	return Profile{
		ID:       u.ID,
		Username: u.Username,
		Points:   u.Points,
		Level:    LevelFor(u.Points),
		Role:     u.Role,
	}
}
