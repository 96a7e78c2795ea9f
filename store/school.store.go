package store

import (
	"errors"

	"madrasa/models"

	"gorm.io/gorm"
)

func (s *Store) CreateSchool(school *models.School) error {
	return s.db.Create(school).Error
}

// ListSchools returns all schools ordered by name.
func (s *Store) ListSchools() ([]models.School, error) {
	var schools []models.School
	if err := s.db.Order("name asc").Find(&schools).Error; err != nil {
		return nil, err
	}
	return schools, nil
}

func (s *Store) GetSchoolByID(id uint) (*models.School, error) {
	var school models.School
	if err := s.db.First(&school, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &school, nil
}

func (s *Store) UpdateSchool(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return s.db.Model(&models.School{}).Where("id = ?", id).Updates(fields).Error
}

func (s *Store) DeleteSchool(id uint) error {
	return s.db.Delete(&models.School{}, id).Error
}
