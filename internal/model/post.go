package model

import "time"

// Post review states. New posts always start in StatusPendingReview;
// moderation to StatusApproved happens outside this service.
const (
	StatusPendingReview = "pending_review"
	StatusApproved      = "approved"
)

// Post represents a forum post submitted by a user.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AuthorID  uint      `json:"author_id" gorm:"index;not null"`
	Category  string    `json:"category" gorm:"size:64"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Status    string    `json:"status" gorm:"size:32;default:'pending_review';not null;index"`
	Views     int       `json:"views" gorm:"default:0;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
