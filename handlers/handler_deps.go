package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"cliptag/backend/config"
	"cliptag/backend/internal/pipeline"
	"cliptag/backend/internal/store"
	"cliptag/backend/models"
)

// MediaProber reads a file's duration; 0 means unknown. Implemented by
// ffmpeg.Tool.
type MediaProber interface {
	Probe(ctx context.Context, path string) float64
}

// ClipPipeline defines the operations handlers expect from the generation
// pipeline. This allows for decoupling and easier testing.
type ClipPipeline interface {
	GenerateClip(ctx context.Context, req pipeline.ClipRequest) (*models.ClipResult, error)
	GenerateStory(ctx context.Context, req pipeline.StoryRequest) (*models.StoryCaptionResult, bool, error)
	GenerateVoiceover(ctx context.Context, req pipeline.VoiceoverRequest) (*models.ContentItem, error)
	GenerateTranscription(ctx context.Context, req pipeline.TranscriptionRequest) (*models.ContentItem, error)
	GenerateRanking(ctx context.Context, req pipeline.RankingRequest) (*models.ContentItem, error)
	GenerateSplitScreen(ctx context.Context, req pipeline.SplitScreenRequest) (*models.ContentItem, error)
}

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Logger   *logrus.Logger
	Store    *store.Store
	Pipeline ClipPipeline
	Prober   MediaProber
	Validate *validator.Validate
	Config   *config.Config
}

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
func NewApplicationHandler(logger *logrus.Logger, st *store.Store, pipe ClipPipeline, prober MediaProber, cfg *config.Config) *ApplicationHandler {
	return &ApplicationHandler{
		Logger:   logger,
		Store:    st,
		Pipeline: pipe,
		Prober:   prober,
		Validate: validator.New(),
		Config:   cfg,
	}
}
