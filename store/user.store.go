package store

import (
	"errors"
	"time"

	"madrasa/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertUser inserts a user keyed by open id, or refreshes the mutable fields
// of the existing row. Role and password are only overwritten when the caller
// set one, so a plain sign-in cannot demote an admin or blank a credential.
func (s *Store) UpsertUser(u *models.User) error {
	if u.OpenID == "" {
		return errors.New("user openId is required for upsert")
	}
	if u.LastSignedIn.IsZero() {
		u.LastSignedIn = time.Now()
	}

	assignments := []string{"external_id", "email", "first_name", "last_name", "last_signed_in"}
	if u.Role != "" {
		assignments = append(assignments, "role")
	}
	if u.PasswordHash != "" {
		assignments = append(assignments, "password_hash")
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "open_id"}},
		DoUpdates: clause.AssignmentColumns(assignments),
	}).Create(u).Error
}

func (s *Store) GetUserByID(id uint) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetUserByOpenID(openID string) (*models.User, error) {
	var u models.User
	if err := s.db.Where("open_id = ?", openID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetUserByExternalID(externalID string) (*models.User, error) {
	var u models.User
	if err := s.db.Where("external_id = ?", externalID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// UpdateUser overwrites only the supplied fields.
func (s *Store) UpdateUser(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return s.db.Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
}

func (s *Store) UpdateUserLanguage(id uint, language string) error {
	return s.db.Model(&models.User{}).Where("id = ?", id).
		Update("preferred_language", language).Error
}

// StudentFilters narrows the teacher-facing student listing.
type StudentFilters struct {
	SchoolID uint
	Search   string
	Limit    int
	Offset   int
}

// ListStudents returns STUDENT-role users matching the filters.
func (s *Store) ListStudents(f StudentFilters) ([]models.User, error) {
	q := s.db.Where("role = ?", models.RoleStudent)

	if f.SchoolID != 0 {
		q = q.Where("school_id = ?", f.SchoolID)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where("first_name LIKE ? OR last_name LIKE ? OR external_id LIKE ?", pattern, pattern, pattern)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
