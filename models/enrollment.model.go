package models

import "time"

// Enrollment status values. No state machine guards transitions; any status
// may be set by an update.
const (
	EnrollmentActive    = "ACTIVE"
	EnrollmentCompleted = "COMPLETED"
	EnrollmentDropped   = "DROPPED"
)

// ValidEnrollmentStatus reports whether s is a known enrollment status.
func ValidEnrollmentStatus(s string) bool {
	return s == EnrollmentActive || s == EnrollmentCompleted || s == EnrollmentDropped
}

// Enrollment records a student's registration in a course. The (user, course)
// pair is unique; enrolling twice fails on the constraint, not a pre-check.
type Enrollment struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	UserID         uint       `json:"userId" gorm:"uniqueIndex:idx_user_course;index;not null"`
	CourseID       uint       `json:"courseId" gorm:"uniqueIndex:idx_user_course;index;not null"`
	Status         string     `json:"status" gorm:"size:16;default:'ACTIVE';index"`
	CompletedAt    *time.Time `json:"completedAt"`
	LastAccessedAt *time.Time `json:"lastAccessedAt"`
	CreatedAt      time.Time  `json:"createdAt"`
}
