package models

import "time"

// Progress holds the last known playback state for a (user, lecture) pair.
// One row per pair; periodic client reports upsert position, completed and
// watched language only, so ID and CreatedAt survive every overwrite.
// Completion is computed client-side and stored as reported.
type Progress struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"userId" gorm:"uniqueIndex:idx_user_lecture;index;not null"`
	LectureID       uint      `json:"lectureId" gorm:"uniqueIndex:idx_user_lecture;index;not null"`
	PositionSec     int       `json:"positionSec" gorm:"default:0"`
	Completed       bool      `json:"completed" gorm:"default:false;index"`
	WatchedLanguage string    `json:"watchedLanguage" gorm:"size:4;default:'en'"`
	LastSeenAt      time.Time `json:"lastSeenAt"`
	CreatedAt       time.Time `json:"createdAt"`
}
