package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"cliptag/backend/models"
)

// titleLimit bounds the request excerpt embedded in a content item's title.
const titleLimit = 50

// VoiceoverRequest carries the parameters of one voiceover-script run.
type VoiceoverRequest struct {
	UserID     uuid.UUID
	Text       string
	VoiceStyle string
}

// GenerateVoiceover rewrites text into a speech-optimized script and persists
// it as a library content item. Unlike clip captioning there is no fallback;
// a generation failure fails the run.
func (p *Pipeline) GenerateVoiceover(ctx context.Context, req VoiceoverRequest) (*models.ContentItem, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, inputErrorf("text must not be empty")
	}

	content, err := p.d.Synthesizer.VoiceoverScript(ctx, req.Text, req.VoiceStyle)
	if err != nil {
		return nil, processingErrorf(err, "voiceover script generation failed")
	}
	return p.persistContent(ctx, req.UserID, models.ContentTypeVoiceover, "Voiceover: "+excerpt(req.Text), content)
}

// TranscriptionRequest carries the parameters of one transcription-template run.
type TranscriptionRequest struct {
	UserID           uuid.UUID
	VideoDescription string
}

// GenerateTranscription produces a caption-ready transcription template and
// persists it as a library content item.
func (p *Pipeline) GenerateTranscription(ctx context.Context, req TranscriptionRequest) (*models.ContentItem, error) {
	if strings.TrimSpace(req.VideoDescription) == "" {
		return nil, inputErrorf("video description must not be empty")
	}

	content, err := p.d.Synthesizer.TranscriptionTemplate(ctx, req.VideoDescription)
	if err != nil {
		return nil, processingErrorf(err, "transcription template generation failed")
	}
	return p.persistContent(ctx, req.UserID, models.ContentTypeTranscription, "Transcription: "+excerpt(req.VideoDescription), content)
}

// RankingRequest carries the parameters of one ranking-analysis run.
type RankingRequest struct {
	UserID     uuid.UUID
	VideoTitle string
	Niche      string
}

// GenerateRanking produces an SEO optimization report and persists it as a
// library content item.
func (p *Pipeline) GenerateRanking(ctx context.Context, req RankingRequest) (*models.ContentItem, error) {
	if strings.TrimSpace(req.VideoTitle) == "" {
		return nil, inputErrorf("video title must not be empty")
	}
	if strings.TrimSpace(req.Niche) == "" {
		return nil, inputErrorf("niche must not be empty")
	}

	content, err := p.d.Synthesizer.RankingReport(ctx, req.VideoTitle, req.Niche)
	if err != nil {
		return nil, processingErrorf(err, "ranking analysis failed")
	}
	return p.persistContent(ctx, req.UserID, models.ContentTypeRanking, "Ranking: "+excerpt(req.VideoTitle), content)
}

// SplitScreenRequest carries the parameters of one split-screen concept run.
type SplitScreenRequest struct {
	UserID     uuid.UUID
	VideoTopic string
	Style      string
	Duration   string
}

// GenerateSplitScreen produces a dual-panel video concept and persists it as
// a library content item.
func (p *Pipeline) GenerateSplitScreen(ctx context.Context, req SplitScreenRequest) (*models.ContentItem, error) {
	if strings.TrimSpace(req.VideoTopic) == "" {
		return nil, inputErrorf("video topic must not be empty")
	}

	content, err := p.d.Synthesizer.SplitScreenConcept(ctx, req.VideoTopic, req.Style, req.Duration)
	if err != nil {
		return nil, processingErrorf(err, "split-screen concept generation failed")
	}
	return p.persistContent(ctx, req.UserID, models.ContentTypeSplitScreen, "Split Screen: "+excerpt(req.VideoTopic), content)
}

func (p *Pipeline) persistContent(ctx context.Context, userID uuid.UUID, itemType, title, content string) (*models.ContentItem, error) {
	item := models.ContentItem{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      itemType,
		Title:     title,
		Content:   content,
		Status:    models.ClipStatusCompleted,
		CreatedAt: time.Now().UTC(),
	}
	if err := p.d.Store.CreateContentItem(ctx, item); err != nil {
		return nil, processingErrorf(err, "could not persist %s content", itemType)
	}

	p.d.Log.WithFields(map[string]interface{}{
		"item_id": item.ID,
		"user_id": item.UserID,
		"type":    item.Type,
	}).Info("Content item generated")
	return &item, nil
}

// excerpt shortens user input for use in a content item title.
func excerpt(s string) string {
	runes := []rune(s)
	if len(runes) <= titleLimit {
		return s
	}
	return string(runes[:titleLimit]) + "..."
}
