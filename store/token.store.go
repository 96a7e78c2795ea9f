package store

import (
	"errors"
	"time"

	"madrasa/models"

	"gorm.io/gorm"
)

func (s *Store) CreateRefreshToken(t *models.RefreshToken) error {
	return s.db.Create(t).Error
}

func (s *Store) GetRefreshToken(token string) (*models.RefreshToken, error) {
	var t models.RefreshToken
	if err := s.db.Where("token = ?", token).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (s *Store) DeleteRefreshToken(token string) error {
	return s.db.Where("token = ?", token).Delete(&models.RefreshToken{}).Error
}

// PurgeExpiredRefreshTokens removes tokens past their expiry; returns the
// number of rows deleted.
func (s *Store) PurgeExpiredRefreshTokens(now time.Time) (int64, error) {
	res := s.db.Where("expires_at < ?", now).Delete(&models.RefreshToken{})
	return res.RowsAffected, res.Error
}
