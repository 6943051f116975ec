package models

import (
	"time"

	"github.com/google/uuid"
)

// Library item types.
const (
	LibraryTypeClip  = "clip"
	LibraryTypeStory = "story"
)

// LibraryItem is the unified view returned by the library endpoint. Exactly
// one of Clip, Story or Content is set. Type is "clip", "story" or the
// content item's own type (voiceover, transcription, ranking, split_screen).
type LibraryItem struct {
	ID        uuid.UUID           `json:"id"`
	Type      string              `json:"type"`
	CreatedAt time.Time           `json:"created_at"`
	Clip      *ClipResult         `json:"clip,omitempty"`
	Story     *StoryCaptionResult `json:"story,omitempty"`
	Content   *ContentItem        `json:"content,omitempty"`
}
