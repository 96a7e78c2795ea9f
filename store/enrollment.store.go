package store

import (
	"time"

	"madrasa/models"
)

// CreateEnrollment inserts the (user, course) pair. A duplicate pair fails on
// the unique constraint with gorm.ErrDuplicatedKey; there is no pre-check.
func (s *Store) CreateEnrollment(enrollment *models.Enrollment) error {
	return s.db.Create(enrollment).Error
}

// EnrollmentWithCourse pairs an enrollment with its course. The course is nil
// when the parent row was deleted (no cascade guards against that).
type EnrollmentWithCourse struct {
	Enrollment models.Enrollment `json:"enrollment"`
	Course     *models.Course    `json:"course"`
}

// ListEnrollmentsByUser returns a user's enrollments joined with their
// courses, newest first.
func (s *Store) ListEnrollmentsByUser(userID uint) ([]EnrollmentWithCourse, error) {
	var enrollments []models.Enrollment
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	if len(enrollments) == 0 {
		return []EnrollmentWithCourse{}, nil
	}

	ids := make([]uint, 0, len(enrollments))
	for _, e := range enrollments {
		ids = append(ids, e.CourseID)
	}

	var courses []models.Course
	if err := s.db.Where("id IN ?", ids).Find(&courses).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]*models.Course, len(courses))
	for i := range courses {
		byID[courses[i].ID] = &courses[i]
	}

	out := make([]EnrollmentWithCourse, 0, len(enrollments))
	for _, e := range enrollments {
		out = append(out, EnrollmentWithCourse{Enrollment: e, Course: byID[e.CourseID]})
	}
	return out, nil
}

// EnrollmentWithUser pairs an enrollment with the enrolled user.
type EnrollmentWithUser struct {
	Enrollment models.Enrollment `json:"enrollment"`
	User       *models.User      `json:"user"`
}

// ListEnrollmentsByCourse returns a course's enrollments joined with the
// enrolled users.
func (s *Store) ListEnrollmentsByCourse(courseID uint) ([]EnrollmentWithUser, error) {
	var enrollments []models.Enrollment
	if err := s.db.Where("course_id = ?", courseID).Find(&enrollments).Error; err != nil {
		return nil, err
	}
	if len(enrollments) == 0 {
		return []EnrollmentWithUser{}, nil
	}

	ids := make([]uint, 0, len(enrollments))
	for _, e := range enrollments {
		ids = append(ids, e.UserID)
	}

	var users []models.User
	if err := s.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]*models.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	out := make([]EnrollmentWithUser, 0, len(enrollments))
	for _, e := range enrollments {
		out = append(out, EnrollmentWithUser{Enrollment: e, User: byID[e.UserID]})
	}
	return out, nil
}

// UpdateEnrollmentStatus sets the status of the (user, course) enrollment.
// completedAt is written as given, including nil. Returns the number of rows
// matched so callers can tell an update from a missing enrollment.
func (s *Store) UpdateEnrollmentStatus(userID, courseID uint, status string, completedAt *time.Time) (int64, error) {
	result := s.db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Updates(map[string]interface{}{
			"status":       status,
			"completed_at": completedAt,
		})
	return result.RowsAffected, result.Error
}

// TouchEnrollment bumps last_accessed_at for the (user, course) pair.
func (s *Store) TouchEnrollment(userID, courseID uint, at time.Time) error {
	return s.db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Update("last_accessed_at", at).Error
}

// CountEnrollmentsByCourse returns total and completed enrollment counts.
func (s *Store) CountEnrollmentsByCourse(courseID uint) (total int64, completed int64, err error) {
	if err = s.db.Model(&models.Enrollment{}).
		Where("course_id = ?", courseID).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err = s.db.Model(&models.Enrollment{}).
		Where("course_id = ? AND status = ?", courseID, models.EnrollmentCompleted).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}
