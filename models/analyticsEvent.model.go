package models

import (
	"time"

	"gorm.io/datatypes"
)

// Event types emitted by the platform.
const (
	EventCourseEnrolled   = "course_enrolled"
	EventLectureCompleted = "lecture_completed"
	EventGameStarted      = "game_started"
	EventGameCompleted    = "game_completed"
)

// AnalyticsEvent is an append-only event log. Aggregation over these rows is
// deliberately not implemented; the overview endpoint returns zeroed counters.
type AnalyticsEvent struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    *uint          `json:"userId" gorm:"index"`
	SessionID *string        `json:"sessionId" gorm:"size:100;index"`
	EventType string         `json:"eventType" gorm:"size:100;index;not null"`
	Props     datatypes.JSON `json:"props"`
	Timestamp time.Time      `json:"timestamp" gorm:"index"`
}

// TranslationCache memoizes machine translations used by the authoring UI to
// prefill Arabic/Hebrew override fields.
type TranslationCache struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	SourceText  string    `json:"sourceText" gorm:"type:text;not null"`
	SourceLang  string    `json:"sourceLang" gorm:"size:10;index:idx_translation_langs;not null"`
	TargetLang  string    `json:"targetLang" gorm:"size:10;index:idx_translation_langs;not null"`
	Translation string    `json:"translation" gorm:"type:text;not null"`
	Context     *string   `json:"context" gorm:"size:100"`
	CreatedAt   time.Time `json:"createdAt"`
}
