package store_test

import (
	"errors"
	"testing"
	"time"

	"madrasa/database"
	"madrasa/models"
	"madrasa/store"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestStore opens an isolated in-memory database per test.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return store.New(db)
}

func strPtr(s string) *string { return &s }

func seedUser(t *testing.T, s *store.Store, openID, role string) *models.User {
	t.Helper()
	u := &models.User{
		OpenID:     openID,
		ExternalID: "ext-" + openID,
		Role:       role,
		FirstName:  "Test",
		LastName:   "User",
		Email:      strPtr(openID + "@example.com"),
	}
	require.NoError(t, s.UpsertUser(u))
	saved, err := s.GetUserByOpenID(openID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	return saved
}

func seedCourse(t *testing.T, s *store.Store, createdBy uint, visibility string) *models.Course {
	t.Helper()
	c := &models.Course{
		Title:       "Algebra Basics",
		Description: "Linear equations and friends",
		Visibility:  visibility,
		CreatedBy:   createdBy,
	}
	require.NoError(t, s.CreateCourse(c))
	return c
}

func TestUpsertUserKeepsRoleOnPlainSignIn(t *testing.T) {
	s := newTestStore(t)

	admin := seedUser(t, s, "open-1", models.RoleAdmin)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	// A sign-in without a role must not demote the stored one.
	again := &models.User{
		OpenID:     "open-1",
		ExternalID: "ext-open-1",
		FirstName:  "Updated",
		LastName:   "Name",
	}
	require.NoError(t, s.UpsertUser(again))

	saved, err := s.GetUserByOpenID("open-1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, saved.Role)
	assert.Equal(t, "Updated", saved.FirstName)
	assert.Equal(t, admin.ID, saved.ID, "upsert must not create a second row")
}

func TestGetUserAbsenceIsNilNil(t *testing.T) {
	s := newTestStore(t)

	u, err := s.GetUserByID(999)
	assert.NoError(t, err)
	assert.Nil(t, u)

	u, err = s.GetUserByExternalID("nobody")
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestProgressUpsertPreservesIDAndCreatedAt(t *testing.T) {
	s := newTestStore(t)
	student := seedUser(t, s, "student-1", models.RoleStudent)

	first := &models.Progress{
		UserID:          student.ID,
		LectureID:       42,
		PositionSec:     120,
		WatchedLanguage: models.LangEn,
	}
	require.NoError(t, s.UpsertProgress(first))

	saved, err := s.GetProgress(student.ID, 42)
	require.NoError(t, err)
	require.NotNil(t, saved)
	originalID := saved.ID
	originalCreated := saved.CreatedAt

	second := &models.Progress{
		UserID:          student.ID,
		LectureID:       42,
		PositionSec:     580,
		Completed:       true,
		WatchedLanguage: models.LangAr,
	}
	require.NoError(t, s.UpsertProgress(second))

	saved, err = s.GetProgress(student.ID, 42)
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, originalID, saved.ID)
	assert.Equal(t, originalCreated.Unix(), saved.CreatedAt.Unix())
	assert.Equal(t, 580, saved.PositionSec)
	assert.True(t, saved.Completed)
	assert.Equal(t, models.LangAr, saved.WatchedLanguage)

	rows, err := s.ListProgressByUser(student.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "one row per (user, lecture) pair")
}

func TestDuplicateEnrollmentFailsOnConstraint(t *testing.T) {
	s := newTestStore(t)
	teacher := seedUser(t, s, "teacher-1", models.RoleTeacher)
	student := seedUser(t, s, "student-1", models.RoleStudent)
	course := seedCourse(t, s, teacher.ID, models.VisibilityPublic)

	require.NoError(t, s.CreateEnrollment(&models.Enrollment{
		UserID:   student.ID,
		CourseID: course.ID,
		Status:   models.EnrollmentActive,
	}))

	err := s.CreateEnrollment(&models.Enrollment{
		UserID:   student.ID,
		CourseID: course.ID,
		Status:   models.EnrollmentActive,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestDeleteCourseLeavesUnitsOrphaned(t *testing.T) {
	s := newTestStore(t)
	teacher := seedUser(t, s, "teacher-1", models.RoleTeacher)
	course := seedCourse(t, s, teacher.ID, models.VisibilityPublic)

	unit := &models.Unit{CourseID: course.ID, Title: "Unit 1", Order: 1}
	require.NoError(t, s.CreateUnit(unit))

	require.NoError(t, s.DeleteCourse(course.ID))

	gone, err := s.GetCourseByID(course.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// No cascade: the unit still exists and is queryable by course id.
	orphans, err := s.ListUnitsByCourse(course.ID)
	require.NoError(t, err)
	assert.Len(t, orphans, 1)
	assert.Equal(t, unit.ID, orphans[0].ID)
}

func TestListCoursesFilters(t *testing.T) {
	s := newTestStore(t)
	teacher := seedUser(t, s, "teacher-1", models.RoleTeacher)
	other := seedUser(t, s, "teacher-2", models.RoleTeacher)

	seedCourse(t, s, teacher.ID, models.VisibilityPublic)
	seedCourse(t, s, teacher.ID, models.VisibilityPrivate)
	seedCourse(t, s, other.ID, models.VisibilityPublic)

	public, err := s.ListCourses(store.CourseFilters{Visibility: models.VisibilityPublic})
	require.NoError(t, err)
	assert.Len(t, public, 2)

	mine, err := s.ListCourses(store.CourseFilters{CreatedBy: teacher.ID})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := s.ListCourses(store.CourseFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestLectureOrderingByDisplayOrder(t *testing.T) {
	s := newTestStore(t)
	teacher := seedUser(t, s, "teacher-1", models.RoleTeacher)
	course := seedCourse(t, s, teacher.ID, models.VisibilityPublic)
	unit := &models.Unit{CourseID: course.ID, Title: "Unit 1", Order: 1}
	require.NoError(t, s.CreateUnit(unit))

	for i, title := range []string{"Third", "First", "Second"} {
		order := []int{3, 1, 2}[i]
		require.NoError(t, s.CreateLecture(&models.Lecture{
			UnitID:      unit.ID,
			Title:       title,
			Order:       order,
			VideoURL:    "https://cdn.example.com/v.mp4",
			DurationSec: 600,
		}))
	}

	lectures, err := s.ListLecturesByUnit(unit.ID)
	require.NoError(t, err)
	require.Len(t, lectures, 3)
	assert.Equal(t, "First", lectures[0].Title)
	assert.Equal(t, "Second", lectures[1].Title)
	assert.Equal(t, "Third", lectures[2].Title)
}

func TestEnrollmentListJoinsCourses(t *testing.T) {
	s := newTestStore(t)
	teacher := seedUser(t, s, "teacher-1", models.RoleTeacher)
	student := seedUser(t, s, "student-1", models.RoleStudent)
	course := seedCourse(t, s, teacher.ID, models.VisibilityPublic)

	require.NoError(t, s.CreateEnrollment(&models.Enrollment{
		UserID:   student.ID,
		CourseID: course.ID,
		Status:   models.EnrollmentActive,
	}))

	list, err := s.ListEnrollmentsByUser(student.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Course)
	assert.Equal(t, course.Title, list[0].Course.Title)

	// After the course is deleted the enrollment survives with a nil course.
	require.NoError(t, s.DeleteCourse(course.ID))
	list, err = s.ListEnrollmentsByUser(student.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Course)
}

func TestPurgeExpiredRefreshTokens(t *testing.T) {
	s := newTestStore(t)
	student := seedUser(t, s, "student-1", models.RoleStudent)

	now := time.Now()
	require.NoError(t, s.CreateRefreshToken(&models.RefreshToken{
		Token: "expired", UserID: student.ID, ExpiresAt: now.Add(-time.Hour),
	}))
	require.NoError(t, s.CreateRefreshToken(&models.RefreshToken{
		Token: "valid", UserID: student.ID, ExpiresAt: now.Add(time.Hour),
	}))

	purged, err := s.PurgeExpiredRefreshTokens(now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged)

	gone, err := s.GetRefreshToken("expired")
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := s.GetRefreshToken("valid")
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestTranslationCacheRoundTrip(t *testing.T) {
	s := newTestStore(t)

	miss, err := s.GetCachedTranslation("Hello", "en", "ar")
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, s.CacheTranslation(&models.TranslationCache{
		SourceText:  "Hello",
		SourceLang:  "en",
		TargetLang:  "ar",
		Translation: "مرحبا",
	}))

	hit, err := s.GetCachedTranslation("Hello", "en", "ar")
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, "مرحبا", hit.Translation)

	// Different target language is a separate cache entry.
	miss, err = s.GetCachedTranslation("Hello", "en", "he")
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestCountEnrollmentsByCourse(t *testing.T) {
	s := newTestStore(t)
	teacher := seedUser(t, s, "teacher-1", models.RoleTeacher)
	course := seedCourse(t, s, teacher.ID, models.VisibilityPublic)

	for i, status := range []string{models.EnrollmentActive, models.EnrollmentCompleted, models.EnrollmentCompleted} {
		student := seedUser(t, s, "student-"+string(rune('a'+i)), models.RoleStudent)
		require.NoError(t, s.CreateEnrollment(&models.Enrollment{
			UserID:   student.ID,
			CourseID: course.ID,
			Status:   status,
		}))
	}

	total, completed, err := s.CountEnrollmentsByCourse(course.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.EqualValues(t, 2, completed)
}
