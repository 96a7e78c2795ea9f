package models

import (
	"time"

	"gorm.io/datatypes"
)

type School struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"size:255;not null;index"`
	NameAr       *string        `json:"nameAr" gorm:"size:255"`
	NameHe       *string        `json:"nameHe" gorm:"size:255"`
	Region       *string        `json:"region" gorm:"size:100"`
	ContactEmail *string        `json:"contactEmail" gorm:"size:320"`
	Meta         datatypes.JSON `json:"meta"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// LocalizedName resolves the school name for the given display language.
func (s *School) LocalizedName(lang string) string {
	return pickLocalized(lang, s.Name, s.NameAr, s.NameHe)
}
