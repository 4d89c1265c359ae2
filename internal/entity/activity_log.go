package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityEntityType string

const (
	ActivityEntityLead    ActivityEntityType = "lead"
	ActivityEntityPlot    ActivityEntityType = "plot"
	ActivityEntityPayment ActivityEntityType = "payment"
	ActivityEntityUser    ActivityEntityType = "user"
)

// ActivityLog is an append-only audit record. One entry per mutating
// operation; entries are never updated or deleted.
type ActivityLog struct {
	ID         string             `json:"id"`
	UserID     string             `json:"user_id"`
	UserName   string             `json:"user_name"`
	Action     string             `json:"action"`
	EntityType ActivityEntityType `json:"entity_type"`
	EntityID   string             `json:"entity_id"`
	Details    string             `json:"details"`
	CreatedAt  time.Time          `json:"created_at"`
}

func NewActivityLog(actor Caller, action string, entityType ActivityEntityType, entityID, details string) *ActivityLog {
	return &ActivityLog{
		ID:         uuid.New().String(),
		UserID:     actor.ID,
		UserName:   actor.Email,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		CreatedAt:  time.Now(),
	}
}
