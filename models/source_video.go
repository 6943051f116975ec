package models

import (
	"time"

	"github.com/google/uuid"
)

// SourceVideo represents the structure of an uploaded video in the database.
// Records are created on upload and never mutated.
type SourceVideo struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Duration    float64   `json:"duration"` // seconds; 0 means unknown
	CreatedAt   time.Time `json:"created_at"`
}
