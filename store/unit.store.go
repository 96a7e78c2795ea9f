package store

import (
	"errors"

	"madrasa/models"

	"gorm.io/gorm"
)

func (s *Store) CreateUnit(unit *models.Unit) error {
	return s.db.Create(unit).Error
}

// ListUnitsByCourse returns the course's units in display order.
func (s *Store) ListUnitsByCourse(courseID uint) ([]models.Unit, error) {
	var units []models.Unit
	if err := s.db.Where("course_id = ?", courseID).
		Order("display_order asc").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (s *Store) GetUnitByID(id uint) (*models.Unit, error) {
	var unit models.Unit
	if err := s.db.First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &unit, nil
}

func (s *Store) UpdateUnit(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return s.db.Model(&models.Unit{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteUnit hard-deletes the unit row; lectures are not cascaded.
func (s *Store) DeleteUnit(id uint) error {
	return s.db.Delete(&models.Unit{}, id).Error
}
