package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"cliptag/backend/models"
)

var allowedStyles = map[string]bool{
	"dramatic":     true,
	"mysterious":   true,
	"heartwarming": true,
	"suspenseful":  true,
	"educational":  true,
}

var allowedPacings = map[string]bool{"short": true, "medium": true, "long": true}

var allowedBackgrounds = map[string]bool{
	"minecraft":      true,
	"subway_surfers": true,
	"satisfying":     true,
	"nature":         true,
	"cooking":        true,
	"abstract":       true,
}

// StoryRequest carries the parameters of one story-caption run.
type StoryRequest struct {
	UserID     uuid.UUID
	Transcript string
	Style      string
	Pacing     string
	Background string
}

// GenerateStory formats a transcript into story captions and persists the
// result. The record is written even when generation fell back to the raw
// transcript; succeeded reports which happened.
func (p *Pipeline) GenerateStory(ctx context.Context, req StoryRequest) (*models.StoryCaptionResult, bool, error) {
	if strings.TrimSpace(req.Transcript) == "" {
		return nil, false, inputErrorf("transcript must not be empty")
	}
	if !allowedStyles[req.Style] {
		return nil, false, inputErrorf("invalid style %q", req.Style)
	}
	if !allowedPacings[req.Pacing] {
		return nil, false, inputErrorf("invalid length %q: must be short, medium or long", req.Pacing)
	}
	if !allowedBackgrounds[req.Background] {
		return nil, false, inputErrorf("invalid background category %q", req.Background)
	}

	res := p.d.Synthesizer.StoryCaptions(ctx, req.Transcript, req.Style, req.Pacing)

	record := models.StoryCaptionResult{
		ID:         uuid.New(),
		UserID:     req.UserID,
		Transcript: req.Transcript,
		Style:      req.Style,
		Pacing:     req.Pacing,
		Background: req.Background,
		Captions:   res.Captions,
		CreatedAt:  time.Now().UTC(),
	}
	if err := p.d.Store.CreateStoryCaptions(ctx, record); err != nil {
		return nil, false, processingErrorf(err, "could not persist story captions")
	}

	p.d.Log.WithFields(map[string]interface{}{
		"story_id":  record.ID,
		"user_id":   record.UserID,
		"style":     record.Style,
		"succeeded": res.Succeeded,
	}).Info("Story captions generated")
	return &record, res.Succeeded, nil
}
