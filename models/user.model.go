package models

import "time"

// User roles. Flat and mutually exclusive; the three role gates in the
// middleware are the only permission model.
const (
	RoleStudent = "STUDENT"
	RoleTeacher = "TEACHER"
	RoleAdmin   = "ADMIN"
)

// ValidRole reports whether role is one of the three platform roles.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleTeacher || role == RoleAdmin
}

type User struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	OpenID              string     `json:"openId" gorm:"column:open_id;size:64;uniqueIndex;not null"`
	ExternalID          string     `json:"externalId" gorm:"size:64;uniqueIndex;not null"`
	Role                string     `json:"role" gorm:"size:16;default:'STUDENT';index"`
	Email               *string    `json:"email" gorm:"size:320;index"`
	PasswordHash        string     `json:"-" gorm:"not null"`
	FirstName           string     `json:"firstName" gorm:"size:100;not null"`
	LastName            string     `json:"lastName" gorm:"size:100;not null"`
	SchoolID            *uint      `json:"schoolId" gorm:"index"`
	PreferredLanguage   string     `json:"preferredLanguage" gorm:"size:4;default:'en'"`
	FailedLoginAttempts int        `json:"-" gorm:"default:0"`
	LockedUntil         *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
	LastLoginAt         *time.Time `json:"lastLoginAt"`
	LastSignedIn        time.Time  `json:"lastSignedIn"`
}

// RefreshToken is an opaque rotating credential backing the session cookie.
// Expired rows are purged by the daily cleanup job.
type RefreshToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Token     string    `json:"token" gorm:"size:255;uniqueIndex;not null"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}
