package models

import "time"

// Unit belongs to exactly one course. Order is interpreted for sorting only;
// the sequence may be dense or sparse and duplicates are not rejected.
// Deleting a course does not cascade here (orphaned units stay queryable).
type Unit struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	CourseID      uint      `json:"courseId" gorm:"index:idx_units_course_order;not null"`
	Title         string    `json:"title" gorm:"size:255;not null"`
	TitleAr       *string   `json:"titleAr" gorm:"size:255"`
	TitleHe       *string   `json:"titleHe" gorm:"size:255"`
	Description   *string   `json:"description" gorm:"type:text"`
	DescriptionAr *string   `json:"descriptionAr" gorm:"type:text"`
	DescriptionHe *string   `json:"descriptionHe" gorm:"type:text"`
	Order         int       `json:"order" gorm:"column:display_order;index:idx_units_course_order;not null"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// LocalizedTitle resolves the unit title for the given display language.
func (u *Unit) LocalizedTitle(lang string) string {
	return pickLocalized(lang, u.Title, u.TitleAr, u.TitleHe)
}

// LocalizedDescription resolves the unit description; empty when unset.
func (u *Unit) LocalizedDescription(lang string) string {
	base := ""
	if u.Description != nil {
		base = *u.Description
	}
	return pickLocalized(lang, base, u.DescriptionAr, u.DescriptionHe)
}
