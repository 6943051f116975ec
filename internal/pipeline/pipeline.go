// Package pipeline orchestrates clip generation: validate the request, drive
// the transcoder through the worker pool, attach generated captions, and
// persist the result. Each run is independent; re-running the same request
// produces a new output file and record.
package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cliptag/backend/internal/captions"
	"cliptag/backend/internal/jobs"
	"cliptag/backend/internal/worker"
	"cliptag/backend/models"
)

// Target durations a clip request may ask for, in seconds.
var allowedDurations = map[int]bool{15: true, 30: true, 45: true, 60: true, 90: true, 180: true}

var allowedAspects = map[string]bool{"portrait": true, "landscape": true}

// Prober reads a media file's duration; 0 means unknown.
type Prober interface {
	Probe(ctx context.Context, path string) float64
}

// Synthesizer generates text content. ClipCaptions and StoryCaptions degrade
// internally and never fail the pipeline; the remaining methods surface
// generation failures to the caller.
type Synthesizer interface {
	ClipCaptions(ctx context.Context, cc captions.ClipContext) captions.ClipCaptions
	StoryCaptions(ctx context.Context, transcript, style, pacing string) captions.StoryResult
	VoiceoverScript(ctx context.Context, text, voiceStyle string) (string, error)
	TranscriptionTemplate(ctx context.Context, videoDescription string) (string, error)
	RankingReport(ctx context.Context, videoTitle, niche string) (string, error)
	SplitScreenConcept(ctx context.Context, topic, style, duration string) (string, error)
}

// Store is the slice of persistence the pipeline needs.
type Store interface {
	FindSourceVideo(ctx context.Context, id string) (*models.SourceVideo, error)
	CreateClip(ctx context.Context, clip models.ClipResult) error
	CreateStoryCaptions(ctx context.Context, result models.StoryCaptionResult) error
	CreateContentItem(ctx context.Context, item models.ContentItem) error
}

// Pool bounds concurrent transcodes. Implemented by worker.Dispatcher.
type Pool interface {
	Submit(job worker.Job) error
}

// Deps collects the pipeline's collaborators.
type Deps struct {
	Prober      Prober
	Transcoder  jobs.Transcoder
	Synthesizer Synthesizer
	Store       Store
	Pool        Pool
	UploadDir   string
	OutputDir   string
	Log         *logrus.Logger
}

// Pipeline runs clip generation and story-caption formatting.
type Pipeline struct {
	d Deps
}

// New returns a Pipeline with the given collaborators.
func New(d Deps) *Pipeline {
	return &Pipeline{d: d}
}

// ClipRequest carries the validated parameters of one clip-generation run.
// The source file is resolved from the stored upload record, never from
// client-supplied paths.
type ClipRequest struct {
	UserID         uuid.UUID
	VideoID        string
	Notes          string
	AspectRatio    string
	TargetDuration int
}

// GenerateClip runs the full pipeline for one request. It returns an
// *InputError for bad requests (before any media work happens), a
// *ProcessingError when transcoding or persistence fails, and the persisted
// ClipResult on success. Caption generation cannot fail the run.
func (p *Pipeline) GenerateClip(ctx context.Context, req ClipRequest) (*models.ClipResult, error) {
	// Validating
	if !allowedAspects[req.AspectRatio] {
		return nil, inputErrorf("invalid aspect ratio %q: must be portrait or landscape", req.AspectRatio)
	}
	if !allowedDurations[req.TargetDuration] {
		return nil, inputErrorf("invalid target duration %d: must be one of 15, 30, 45, 60, 90, 180", req.TargetDuration)
	}

	source, err := p.d.Store.FindSourceVideo(ctx, req.VideoID)
	if err != nil {
		return nil, processingErrorf(err, "could not resolve source video %s", req.VideoID)
	}
	// A foreign user's video is indistinguishable from a missing one.
	if source == nil || source.UserID != req.UserID {
		return nil, inputErrorf("source video %s not found", req.VideoID)
	}

	sourcePath := filepath.Join(p.d.UploadDir, filepath.Base(source.Filename))
	if _, err := os.Stat(sourcePath); err != nil {
		return nil, inputErrorf("source file %s does not exist on storage", source.Filename)
	}

	// Transcoding
	outputFile := "clip_" + uuid.NewString() + ".mp4"
	outputPath := filepath.Join(p.d.OutputDir, outputFile)

	job := jobs.NewTranscodeJob(uuid.NewString(), ctx, p.d.Transcoder,
		sourcePath, outputPath, float64(req.TargetDuration), req.AspectRatio)
	if err := p.d.Pool.Submit(job); err != nil {
		return nil, processingErrorf(err, "transcode queue is full, try again later")
	}
	ok, err := job.Wait(ctx)
	if err != nil {
		p.removeOutput(outputPath)
		return nil, processingErrorf(err, "transcode interrupted")
	}
	if !ok {
		p.removeOutput(outputPath)
		return nil, &ProcessingError{Message: "clip transcoding failed"}
	}
	if _, err := os.Stat(outputPath); err != nil {
		return nil, &ProcessingError{Message: "transcoder produced no output file"}
	}

	// Captioning: internal fallbacks guarantee a result.
	meta := p.d.Synthesizer.ClipCaptions(ctx, captions.ClipContext{
		SourceDuration: p.d.Prober.Probe(ctx, sourcePath),
		TargetDuration: req.TargetDuration,
		AspectRatio:    req.AspectRatio,
		Notes:          req.Notes,
	})

	// Persisted
	clip := models.ClipResult{
		ID:            uuid.New(),
		UserID:        req.UserID,
		SourceVideoID: req.VideoID,
		OutputFile:    outputFile,
		Caption:       meta.Caption,
		Hashtags:      meta.Hashtags,
		Hook:          meta.Hook,
		CTA:           meta.CTA,
		Summary:       meta.Summary,
		Duration:      p.d.Prober.Probe(ctx, outputPath),
		Status:        models.ClipStatusCompleted,
		CreatedAt:     time.Now().UTC(),
	}
	if err := p.d.Store.CreateClip(ctx, clip); err != nil {
		p.removeOutput(outputPath)
		return nil, processingErrorf(err, "could not persist clip record")
	}

	p.d.Log.WithFields(logrus.Fields{
		"clip_id":  clip.ID,
		"user_id":  clip.UserID,
		"duration": clip.Duration,
		"aspect":   req.AspectRatio,
	}).Info("Clip generated")
	return &clip, nil
}

// removeOutput deletes a partial or orphaned output file. An existing but
// invalid output is worse than none.
func (p *Pipeline) removeOutput(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		p.d.Log.WithField("path", path).WithError(err).Warn("Could not remove output file")
	}
}
