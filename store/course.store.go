package store

import (
	"errors"
	"time"

	"madrasa/models"

	"gorm.io/gorm"
)

// CourseFilters combine with logical AND. Zero values mean "no filter".
type CourseFilters struct {
	Visibility string
	CreatedBy  uint
	Search     string
	Limit      int
	Offset     int
}

func (s *Store) CreateCourse(course *models.Course) error {
	return s.db.Create(course).Error
}

// ListCourses returns courses matching the filters, newest first.
func (s *Store) ListCourses(f CourseFilters) ([]models.Course, error) {
	q := s.db.Model(&models.Course{})

	if f.Visibility != "" {
		q = q.Where("visibility = ?", f.Visibility)
	}
	if f.CreatedBy != 0 {
		q = q.Where("created_by = ?", f.CreatedBy)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	q = q.Order("created_at desc")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var courses []models.Course
	if err := q.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *Store) GetCourseByID(id uint) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

// UpdateCourse overwrites only the supplied fields. CreatedBy is immutable
// and must never appear in the map.
func (s *Store) UpdateCourse(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return s.db.Model(&models.Course{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteCourse hard-deletes the course row. Units are not cascaded; orphans
// remain queryable by course id.
func (s *Store) DeleteCourse(id uint) error {
	return s.db.Delete(&models.Course{}, id).Error
}

func (s *Store) PublishCourse(id uint, at time.Time) error {
	return s.db.Model(&models.Course{}).Where("id = ?", id).
		Update("published_at", at).Error
}
