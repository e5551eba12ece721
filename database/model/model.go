// Package model defines the database models for the lost-and-found panel.
package model

// Role values stored on User and carried in the session.
const (
	RoleUser  = "user"
	RoleStaff = "staff"
)

// User is an account that can sign in. Accounts are created only by
// database seeding; there is no signup path. The password is stored and
// compared in plaintext, which is existing behavior of this system, not
// a recommended pattern.
type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Role     string `json:"role" gorm:"not null"`
}

// LostItem is a report filed by a regular user. Title and description
// are HTML-escaped before storage. Image holds the sanitized filename of
// an uploaded picture, or "" when none was attached.
type LostItem struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Owner       string `json:"owner" gorm:"not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Resolved    bool   `json:"resolved" gorm:"default:false"`
}

// FoundItem is a listing posted by staff. Title and description are
// stored as submitted, without escaping.
type FoundItem struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	PostedBy    string `json:"postedBy" gorm:"column:posted_by;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Returned    bool   `json:"returned" gorm:"default:false"`
}
