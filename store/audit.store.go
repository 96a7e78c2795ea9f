package store

import "madrasa/models"

func (s *Store) CreateAuditLog(entry *models.AuditLog) error {
	return s.db.Create(entry).Error
}

// AuditLogFilters combine with logical AND.
type AuditLogFilters struct {
	ActorUserID uint
	EntityType  string
	Limit       int
	Offset      int
}

// ListAuditLogs returns the trail newest first.
func (s *Store) ListAuditLogs(f AuditLogFilters) ([]models.AuditLog, error) {
	q := s.db.Model(&models.AuditLog{})

	if f.ActorUserID != 0 {
		q = q.Where("actor_user_id = ?", f.ActorUserID)
	}
	if f.EntityType != "" {
		q = q.Where("entity_type = ?", f.EntityType)
	}

	q = q.Order("created_at desc")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var logs []models.AuditLog
	if err := q.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
