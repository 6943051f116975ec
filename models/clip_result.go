package models

import (
	"time"

	"github.com/google/uuid"
)

// Clip statuses. Failed runs are not persisted today, but the status column
// leaves room for a failed state if that changes.
const (
	ClipStatusCompleted = "completed"
	ClipStatusFailed    = "failed"
)

// ClipResult represents the structure of a completed clip generation in the
// database. OutputFile is non-empty exactly when Status is completed.
type ClipResult struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	SourceVideoID string    `json:"source_video_id"`
	OutputFile    string    `json:"output_file"`
	Caption       string    `json:"caption"`
	Hashtags      string    `json:"hashtags"`
	Hook          string    `json:"hook"`
	CTA           string    `json:"cta"`
	Summary       string    `json:"summary"`
	Duration      float64   `json:"duration"` // actual output duration, seconds
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
