package models

import (
	"time"

	"gorm.io/datatypes"
)

// Interactive game launch protocols.
const (
	GameTypeLTI   = "LTI"
	GameTypeSCORM = "SCORM"
	GameTypeXAPI  = "XAPI"
	GameTypeHTML5 = "HTML5"
)

// ValidGameType reports whether t is a known game type.
func ValidGameType(t string) bool {
	return t == GameTypeLTI || t == GameTypeSCORM || t == GameTypeXAPI || t == GameTypeHTML5
}

// InteractiveGame is a catalog entry; attachment to units goes through UnitGame.
type InteractiveGame struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"size:255;not null"`
	TitleAr     *string        `json:"titleAr" gorm:"size:255"`
	TitleHe     *string        `json:"titleHe" gorm:"size:255"`
	Type        string         `json:"type" gorm:"size:16;not null"`
	LaunchURL   *string        `json:"launchUrl" gorm:"size:500"`
	LaunchURLAr *string        `json:"launchUrlAr" gorm:"size:500"`
	LaunchURLHe *string        `json:"launchUrlHe" gorm:"size:500"`
	Config      datatypes.JSON `json:"config"`
	CreatedBy   uint           `json:"createdBy" gorm:"index;not null"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// LocalizedTitle resolves the game title for the given display language.
func (g *InteractiveGame) LocalizedTitle(lang string) string {
	return pickLocalized(lang, g.Title, g.TitleAr, g.TitleHe)
}

// LocalizedLaunchURL resolves the launch URL; empty when unset.
func (g *InteractiveGame) LocalizedLaunchURL(lang string) string {
	base := ""
	if g.LaunchURL != nil {
		base = *g.LaunchURL
	}
	return pickLocalized(lang, base, g.LaunchURLAr, g.LaunchURLHe)
}

// UnitGame links a game into a unit with display order and completion rules.
type UnitGame struct {
	ID                 uint           `json:"id" gorm:"primaryKey"`
	UnitID             uint           `json:"unitId" gorm:"index;not null"`
	GameID             uint           `json:"gameId" gorm:"index;not null"`
	RequiredToComplete bool           `json:"requiredToComplete" gorm:"default:false"`
	ScoringRules       datatypes.JSON `json:"scoringRules"`
	Order              int            `json:"order" gorm:"column:display_order;default:0"`
}

// GameSession is the log of one play-through.
type GameSession struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	UserID         uint           `json:"userId" gorm:"index;not null"`
	GameID         uint           `json:"gameId" gorm:"index;not null"`
	UnitID         uint           `json:"unitId" gorm:"index;not null"`
	Score          *float64       `json:"score"`
	Completed      bool           `json:"completed" gorm:"default:false;index"`
	DurationSec    *int           `json:"durationSec"`
	RawEvents      datatypes.JSON `json:"rawEvents"`
	PlayedLanguage string         `json:"playedLanguage" gorm:"size:4;default:'en'"`
	CreatedAt      time.Time      `json:"createdAt"`
	CompletedAt    *time.Time     `json:"completedAt"`
}
