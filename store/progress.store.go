package store

import (
	"errors"
	"time"

	"madrasa/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertProgress inserts the (user, lecture) row or, when the pair already
// exists, overwrites position, completed, watched language and last-seen
// only. The row id and creation timestamp are preserved across overwrites.
func (s *Store) UpsertProgress(p *models.Progress) error {
	p.LastSeenAt = time.Now()
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "lecture_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"position_sec", "completed", "watched_language", "last_seen_at",
		}),
	}).Create(p).Error
}

func (s *Store) GetProgress(userID, lectureID uint) (*models.Progress, error) {
	var p models.Progress
	if err := s.db.Where("user_id = ? AND lecture_id = ?", userID, lectureID).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *Store) ListProgressByUser(userID uint) ([]models.Progress, error) {
	var rows []models.Progress
	if err := s.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListProgressByUserAndLectures narrows a user's progress to a lecture id set.
func (s *Store) ListProgressByUserAndLectures(userID uint, lectureIDs []uint) ([]models.Progress, error) {
	if len(lectureIDs) == 0 {
		return []models.Progress{}, nil
	}
	var rows []models.Progress
	if err := s.db.Where("user_id = ? AND lecture_id IN ?", userID, lectureIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
