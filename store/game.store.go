package store

import (
	"errors"

	"madrasa/models"

	"gorm.io/gorm"
)

func (s *Store) CreateGame(game *models.InteractiveGame) error {
	return s.db.Create(game).Error
}

// ListGames returns the game catalog, newest first.
func (s *Store) ListGames() ([]models.InteractiveGame, error) {
	var games []models.InteractiveGame
	if err := s.db.Order("created_at desc").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (s *Store) GetGameByID(id uint) (*models.InteractiveGame, error) {
	var game models.InteractiveGame
	if err := s.db.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

func (s *Store) LinkGameToUnit(link *models.UnitGame) error {
	return s.db.Create(link).Error
}

// UnitGameEntry pairs a unit-game link with its catalog entry.
type UnitGameEntry struct {
	UnitGame models.UnitGame         `json:"unitGame"`
	Game     *models.InteractiveGame `json:"game"`
}

// ListGamesByUnit returns the unit's game links in display order, each joined
// with its catalog entry.
func (s *Store) ListGamesByUnit(unitID uint) ([]UnitGameEntry, error) {
	var links []models.UnitGame
	if err := s.db.Where("unit_id = ?", unitID).
		Order("display_order asc").Find(&links).Error; err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return []UnitGameEntry{}, nil
	}

	ids := make([]uint, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.GameID)
	}

	var games []models.InteractiveGame
	if err := s.db.Where("id IN ?", ids).Find(&games).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]*models.InteractiveGame, len(games))
	for i := range games {
		byID[games[i].ID] = &games[i]
	}

	entries := make([]UnitGameEntry, 0, len(links))
	for _, l := range links {
		entries = append(entries, UnitGameEntry{UnitGame: l, Game: byID[l.GameID]})
	}
	return entries, nil
}

func (s *Store) CreateGameSession(session *models.GameSession) error {
	return s.db.Create(session).Error
}

func (s *Store) GetGameSessionByID(id uint) (*models.GameSession, error) {
	var session models.GameSession
	if err := s.db.First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (s *Store) UpdateGameSession(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return s.db.Model(&models.GameSession{}).Where("id = ?", id).Updates(fields).Error
}

// ListGameSessionsByUser returns a user's play-throughs, newest first.
func (s *Store) ListGameSessionsByUser(userID uint) ([]models.GameSession, error) {
	var sessions []models.GameSession
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
