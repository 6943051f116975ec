package models

import (
	"time"

	"github.com/google/uuid"
)

// Content item types produced by the text-only generation routes.
const (
	ContentTypeVoiceover     = "voiceover"
	ContentTypeTranscription = "transcription"
	ContentTypeRanking       = "ranking"
	ContentTypeSplitScreen   = "split_screen"
)

// ContentItem represents the structure of a text-only generation result in the
// database (voiceover scripts, transcription templates, ranking reports,
// split-screen concepts). Immutable after creation.
type ContentItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
