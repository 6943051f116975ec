package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	openai "github.com/sashabaranov/go-openai"
	supa "github.com/supabase-community/supabase-go"

	"cliptag/backend/config"
	"cliptag/backend/handlers"
	"cliptag/backend/internal/captions"
	"cliptag/backend/internal/ffmpeg"
	"cliptag/backend/internal/pipeline"
	"cliptag/backend/internal/store"
	"cliptag/backend/internal/worker"
	"cliptag/backend/middleware"
)

func main() {
	log := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	supaClient, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, nil)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize Supabase client")
	}
	st := store.New(supaClient, log)

	tool := ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath, cfg.ProbeTimeout, cfg.TranscodeTimeout, log)
	synth := captions.New(openai.NewClient(cfg.OpenAIKey), cfg.OpenAIModel, cfg.AITimeout, log)

	dispatcher := worker.NewDispatcher(cfg.TranscodeWorkers, cfg.QueueSize, log)
	dispatcher.Run()

	pipe := pipeline.New(pipeline.Deps{
		Prober:      tool,
		Transcoder:  tool,
		Synthesizer: synth,
		Store:       st,
		Pool:        dispatcher,
		UploadDir:   cfg.UploadDir,
		OutputDir:   cfg.OutputDir,
		Log:         log,
	})

	h := handlers.NewApplicationHandler(log, st, pipe, tool, cfg)

	app := fiber.New(fiber.Config{
		BodyLimit: 512 * 1024 * 1024, // raw source videos are large
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestLogger(log))

	// Produced clips and raw uploads are served statically.
	app.Static("/uploads", cfg.UploadDir)
	app.Static("/outputs", cfg.OutputDir)

	api := app.Group("/api")

	// Health check routes
	api.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "ClipTag AI API",
			"status":  "healthy",
		})
	})
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"service": "ClipTag AI",
		})
	})

	// Auth routes
	api.Post("/auth/register", h.Register)
	api.Post("/auth/login", h.Login)

	// Everything below requires a bearer token.
	authed := api.Group("", middleware.Protected(cfg.JWTSecret, st, log))

	authed.Get("/auth/me", h.Me)
	authed.Put("/profile", h.UpdateProfile)

	authed.Post("/upload/video", h.UploadVideo)
	authed.Post("/generate/video-clip", h.GenerateVideoClip)
	authed.Post("/generate/story-video", h.GenerateStoryVideo)
	authed.Post("/generate/voiceover", h.GenerateVoiceover)
	authed.Post("/generate/transcription", h.GenerateTranscription)
	authed.Post("/generate/ranking", h.GenerateRanking)
	authed.Post("/generate/split-screen", h.GenerateSplitScreen)

	authed.Get("/library", h.GetLibrary)
	authed.Delete("/library/:id", h.DeleteLibraryItem)

	go func() {
		log.WithField("port", cfg.Port).Info("Starting ClipTag API")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.WithError(err).Fatal("Server stopped")
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down")
	if err := app.Shutdown(); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}
	dispatcher.Stop()
	log.Info("Shutdown complete")
}
