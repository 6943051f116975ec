package models

import (
	"time"

	"github.com/google/uuid"
)

// StoryCaptionResult represents the structure of a formatted story-caption run
// in the database. Immutable after creation.
type StoryCaptionResult struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Transcript string    `json:"transcript"`
	Style      string    `json:"style"`
	Pacing     string    `json:"pacing"`
	Background string    `json:"background"`
	Captions   string    `json:"captions"`
	CreatedAt  time.Time `json:"created_at"`
}
