package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Response holds the full answer document for one participant submission.
type Response struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	ParticipantID uuid.UUID      `gorm:"type:uuid;not null;index" json:"participantId"`
	Answers       datatypes.JSON `gorm:"type:jsonb" json:"answers"`
	CreatedAt     time.Time      `json:"createdAt"`
}
