package models

import (
	"time"

	"gorm.io/datatypes"
)

// Course visibility values.
const (
	VisibilityPublic  = "PUBLIC"
	VisibilityPrivate = "PRIVATE"
)

// ValidVisibility reports whether v is a known course visibility.
func ValidVisibility(v string) bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// Course is a unit of curriculum owned by exactly one creating user.
// CreatedBy is immutable after creation.
type Course struct {
	ID                  uint           `json:"id" gorm:"primaryKey"`
	Title               string         `json:"title" gorm:"size:255;not null"`
	TitleAr             *string        `json:"titleAr" gorm:"size:255"`
	TitleHe             *string        `json:"titleHe" gorm:"size:255"`
	Description         string         `json:"description" gorm:"type:text;not null"`
	DescriptionAr       *string        `json:"descriptionAr" gorm:"type:text"`
	DescriptionHe       *string        `json:"descriptionHe" gorm:"type:text"`
	ThumbnailURL        *string        `json:"thumbnailUrl" gorm:"size:500"`
	Tags                datatypes.JSON `json:"tags"`
	TagsAr              datatypes.JSON `json:"tagsAr"`
	TagsHe              datatypes.JSON `json:"tagsHe"`
	Visibility          string         `json:"visibility" gorm:"size:16;default:'PUBLIC';index"`
	Prerequisites       *string        `json:"prerequisites" gorm:"type:text"`
	PrerequisitesAr     *string        `json:"prerequisitesAr" gorm:"type:text"`
	PrerequisitesHe     *string        `json:"prerequisitesHe" gorm:"type:text"`
	LearningOutcomes    *string        `json:"learningOutcomes" gorm:"type:text"`
	LearningOutcomesAr  *string        `json:"learningOutcomesAr" gorm:"type:text"`
	LearningOutcomesHe  *string        `json:"learningOutcomesHe" gorm:"type:text"`
	EstimatedDuration   *int           `json:"estimatedDuration"`
	CreatedBy           uint           `json:"createdBy" gorm:"index;not null"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
	PublishedAt         *time.Time     `json:"publishedAt"`
}

// LocalizedTitle resolves the course title for the given display language.
func (c *Course) LocalizedTitle(lang string) string {
	return pickLocalized(lang, c.Title, c.TitleAr, c.TitleHe)
}

// LocalizedDescription resolves the course description for the given display language.
func (c *Course) LocalizedDescription(lang string) string {
	return pickLocalized(lang, c.Description, c.DescriptionAr, c.DescriptionHe)
}

// LocalizedPrerequisites resolves the prerequisites text; empty when unset.
func (c *Course) LocalizedPrerequisites(lang string) string {
	base := ""
	if c.Prerequisites != nil {
		base = *c.Prerequisites
	}
	return pickLocalized(lang, base, c.PrerequisitesAr, c.PrerequisitesHe)
}

// LocalizedLearningOutcomes resolves the learning outcomes text; empty when unset.
func (c *Course) LocalizedLearningOutcomes(lang string) string {
	base := ""
	if c.LearningOutcomes != nil {
		base = *c.LearningOutcomes
	}
	return pickLocalized(lang, base, c.LearningOutcomesAr, c.LearningOutcomesHe)
}
