package store

import (
	"errors"
	"time"

	"madrasa/models"

	"gorm.io/gorm"
)

func (s *Store) CreateAnalyticsEvent(event *models.AnalyticsEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	return s.db.Create(event).Error
}

// AnalyticsEventFilters combine with logical AND.
type AnalyticsEventFilters struct {
	UserID    uint
	EventType string
	Limit     int
}

// ListAnalyticsEvents returns events newest first.
func (s *Store) ListAnalyticsEvents(f AnalyticsEventFilters) ([]models.AnalyticsEvent, error) {
	q := s.db.Model(&models.AnalyticsEvent{})

	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.EventType != "" {
		q = q.Where("event_type = ?", f.EventType)
	}

	q = q.Order("timestamp desc")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var events []models.AnalyticsEvent
	if err := q.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// GetCachedTranslation looks up a memoized translation.
func (s *Store) GetCachedTranslation(sourceText, sourceLang, targetLang string) (*models.TranslationCache, error) {
	var row models.TranslationCache
	if err := s.db.Where("source_text = ? AND source_lang = ? AND target_lang = ?",
		sourceText, sourceLang, targetLang).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (s *Store) CacheTranslation(row *models.TranslationCache) error {
	return s.db.Create(row).Error
}
