package models

import "time"

// Attachment is a downloadable resource hanging off a lecture.
type Attachment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	LectureID uint      `json:"lectureId" gorm:"index;not null"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	TitleAr   *string   `json:"titleAr" gorm:"size:255"`
	TitleHe   *string   `json:"titleHe" gorm:"size:255"`
	FileURL   string    `json:"fileUrl" gorm:"size:500;not null"`
	FileURLAr *string   `json:"fileUrlAr" gorm:"size:500"`
	FileURLHe *string   `json:"fileUrlHe" gorm:"size:500"`
	FileType  string    `json:"fileType" gorm:"size:50;not null"`
	FileSize  *int      `json:"fileSize"`
	CreatedAt time.Time `json:"createdAt"`
}

// LocalizedTitle resolves the attachment title for the given display language.
func (a *Attachment) LocalizedTitle(lang string) string {
	return pickLocalized(lang, a.Title, a.TitleAr, a.TitleHe)
}

// LocalizedFileURL resolves the download URL for the given display language.
func (a *Attachment) LocalizedFileURL(lang string) string {
	return pickLocalized(lang, a.FileURL, a.FileURLAr, a.FileURLHe)
}
