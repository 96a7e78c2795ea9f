package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestPickLocalized(t *testing.T) {
	ar := strPtr("عنوان")
	he := strPtr("כותרת")

	t.Run("returns override for requested language", func(t *testing.T) {
		assert.Equal(t, "عنوان", pickLocalized(LangAr, "Title", ar, he))
		assert.Equal(t, "כותרת", pickLocalized(LangHe, "Title", ar, he))
	})

	t.Run("english always returns base", func(t *testing.T) {
		assert.Equal(t, "Title", pickLocalized(LangEn, "Title", ar, he))
	})

	t.Run("missing override falls back to base", func(t *testing.T) {
		assert.Equal(t, "Title", pickLocalized(LangAr, "Title", nil, he))
		assert.Equal(t, "Title", pickLocalized(LangHe, "Title", ar, nil))
	})

	t.Run("empty override falls back to base", func(t *testing.T) {
		assert.Equal(t, "Title", pickLocalized(LangAr, "Title", strPtr(""), he))
		assert.Equal(t, "Title", pickLocalized(LangHe, "Title", ar, strPtr("")))
	})

	t.Run("unknown language returns base", func(t *testing.T) {
		assert.Equal(t, "Title", pickLocalized("fr", "Title", ar, he))
	})
}

func TestCourseLocalizedFields(t *testing.T) {
	course := Course{
		Title:         "Algebra",
		TitleAr:       strPtr("الجبر"),
		Description:   "Intro to algebra",
		DescriptionHe: strPtr("מבוא לאלגברה"),
	}

	assert.Equal(t, "الجبر", course.LocalizedTitle(LangAr))
	assert.Equal(t, "Algebra", course.LocalizedTitle(LangHe))
	assert.Equal(t, "מבוא לאלגברה", course.LocalizedDescription(LangHe))
	assert.Equal(t, "Intro to algebra", course.LocalizedDescription(LangAr))

	// Optional fields resolve to empty string when nothing is set.
	assert.Equal(t, "", course.LocalizedPrerequisites(LangEn))
}

func TestLectureLocalizedVideoURL(t *testing.T) {
	lecture := Lecture{
		VideoURL:   "https://cdn.example.com/en.mp4",
		VideoURLAr: strPtr("https://cdn.example.com/ar.mp4"),
	}

	assert.Equal(t, "https://cdn.example.com/ar.mp4", lecture.LocalizedVideoURL(LangAr))
	assert.Equal(t, "https://cdn.example.com/en.mp4", lecture.LocalizedVideoURL(LangHe))
	assert.Equal(t, "", lecture.LocalizedCaptionsURL(LangAr))
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidLanguage("en"))
	assert.True(t, ValidLanguage("ar"))
	assert.True(t, ValidLanguage("he"))
	assert.False(t, ValidLanguage("fr"))

	assert.True(t, ValidRole(RoleTeacher))
	assert.False(t, ValidRole("PRINCIPAL"))

	assert.True(t, ValidVisibility(VisibilityPublic))
	assert.False(t, ValidVisibility("HIDDEN"))

	assert.True(t, ValidGameType(GameTypeSCORM))
	assert.False(t, ValidGameType("FLASH"))

	assert.True(t, ValidEnrollmentStatus(EnrollmentDropped))
	assert.False(t, ValidEnrollmentStatus("PAUSED"))
}
