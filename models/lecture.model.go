package models

import (
	"time"

	"gorm.io/datatypes"
)

// Lecture belongs to exactly one unit. The video URL is required; per-language
// video/caption overrides fall back to the base URL like any trilingual field.
type Lecture struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	UnitID            uint           `json:"unitId" gorm:"index:idx_lectures_unit_order;not null"`
	Title             string         `json:"title" gorm:"size:255;not null"`
	TitleAr           *string        `json:"titleAr" gorm:"size:255"`
	TitleHe           *string        `json:"titleHe" gorm:"size:255"`
	Description       *string        `json:"description" gorm:"type:text"`
	DescriptionAr     *string        `json:"descriptionAr" gorm:"type:text"`
	DescriptionHe     *string        `json:"descriptionHe" gorm:"type:text"`
	Order             int            `json:"order" gorm:"column:display_order;index:idx_lectures_unit_order;not null"`
	VideoURL          string         `json:"videoUrl" gorm:"size:500;not null"`
	VideoURLAr        *string        `json:"videoUrlAr" gorm:"size:500"`
	VideoURLHe        *string        `json:"videoUrlHe" gorm:"size:500"`
	DurationSec       int            `json:"durationSec" gorm:"not null"`
	CaptionsURL       *string        `json:"captionsUrl" gorm:"size:500"`
	CaptionsURLAr     *string        `json:"captionsUrlAr" gorm:"size:500"`
	CaptionsURLHe     *string        `json:"captionsUrlHe" gorm:"size:500"`
	SummaryMarkdown   *string        `json:"summaryMarkdown" gorm:"type:text"`
	SummaryMarkdownAr *string        `json:"summaryMarkdownAr" gorm:"type:text"`
	SummaryMarkdownHe *string        `json:"summaryMarkdownHe" gorm:"type:text"`
	References        datatypes.JSON `json:"references"`
	AvailableFrom     *time.Time     `json:"availableFrom"`
	AvailableUntil    *time.Time     `json:"availableUntil"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// LocalizedTitle resolves the lecture title for the given display language.
func (l *Lecture) LocalizedTitle(lang string) string {
	return pickLocalized(lang, l.Title, l.TitleAr, l.TitleHe)
}

// LocalizedVideoURL resolves the video URL for the given watch language.
func (l *Lecture) LocalizedVideoURL(lang string) string {
	return pickLocalized(lang, l.VideoURL, l.VideoURLAr, l.VideoURLHe)
}

// LocalizedCaptionsURL resolves the captions URL; empty when no captions exist.
func (l *Lecture) LocalizedCaptionsURL(lang string) string {
	base := ""
	if l.CaptionsURL != nil {
		base = *l.CaptionsURL
	}
	return pickLocalized(lang, base, l.CaptionsURLAr, l.CaptionsURLHe)
}

// LocalizedSummary resolves the markdown summary; empty when unset.
func (l *Lecture) LocalizedSummary(lang string) string {
	base := ""
	if l.SummaryMarkdown != nil {
		base = *l.SummaryMarkdown
	}
	return pickLocalized(lang, base, l.SummaryMarkdownAr, l.SummaryMarkdownHe)
}
