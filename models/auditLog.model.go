package models

import (
	"time"

	"gorm.io/datatypes"
)

// Audit actions written after mutating calls.
const (
	AuditCreate   = "CREATE"
	AuditUpdate   = "UPDATE"
	AuditDelete   = "DELETE"
	AuditPublish  = "PUBLISH"
	AuditLinkGame = "LINK_GAME"
)

// AuditLog is an append-only trail. It is never read back outside the
// admin-only list query.
type AuditLog struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	ActorUserID uint           `json:"actorUserId" gorm:"index;not null"`
	Action      string         `json:"action" gorm:"size:100;not null"`
	EntityType  string         `json:"entityType" gorm:"size:100;index:idx_audit_entity;not null"`
	EntityID    *uint          `json:"entityId" gorm:"index:idx_audit_entity"`
	Meta        datatypes.JSON `json:"meta"`
	CreatedAt   time.Time      `json:"createdAt" gorm:"index"`
}
