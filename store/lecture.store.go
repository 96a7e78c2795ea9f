package store

import (
	"errors"

	"madrasa/models"

	"gorm.io/gorm"
)

func (s *Store) CreateLecture(lecture *models.Lecture) error {
	return s.db.Create(lecture).Error
}

// ListLecturesByUnit returns the unit's lectures in display order.
func (s *Store) ListLecturesByUnit(unitID uint) ([]models.Lecture, error) {
	var lectures []models.Lecture
	if err := s.db.Where("unit_id = ?", unitID).
		Order("display_order asc").Find(&lectures).Error; err != nil {
		return nil, err
	}
	return lectures, nil
}

func (s *Store) GetLectureByID(id uint) (*models.Lecture, error) {
	var lecture models.Lecture
	if err := s.db.First(&lecture, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &lecture, nil
}

func (s *Store) UpdateLecture(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return s.db.Model(&models.Lecture{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteLecture hard-deletes the lecture row; attachments are not cascaded.
func (s *Store) DeleteLecture(id uint) error {
	return s.db.Delete(&models.Lecture{}, id).Error
}

func (s *Store) CreateAttachment(attachment *models.Attachment) error {
	return s.db.Create(attachment).Error
}

func (s *Store) GetAttachmentByID(id uint) (*models.Attachment, error) {
	var attachment models.Attachment
	if err := s.db.First(&attachment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attachment, nil
}

func (s *Store) ListAttachmentsByLecture(lectureID uint) ([]models.Attachment, error) {
	var attachments []models.Attachment
	if err := s.db.Where("lecture_id = ?", lectureID).Find(&attachments).Error; err != nil {
		return nil, err
	}
	return attachments, nil
}

func (s *Store) DeleteAttachment(id uint) error {
	return s.db.Delete(&models.Attachment{}, id).Error
}
