package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the service needs. It is built once in main and
// passed by reference into the components that need it; nothing reads the
// environment after startup.
type Config struct {
	Port        string
	CORSOrigins string

	SupabaseURL string
	SupabaseKey string

	JWTSecret string

	OpenAIKey   string
	OpenAIModel string

	UploadDir string
	OutputDir string

	FFmpegPath  string
	FFprobePath string

	TranscodeWorkers int
	QueueSize        int

	ProbeTimeout     time.Duration
	TranscodeTimeout time.Duration
	AITimeout        time.Duration
}

// Load reads configuration from the environment, falling back to a local .env
// file when present. It also creates the upload and output directories.
func Load() (*Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		SupabaseURL: os.Getenv("SUPABASE_URL"),
		SupabaseKey: os.Getenv("SUPABASE_SERVICE_KEY"),

		JWTSecret: getEnv("JWT_SECRET", "cliptag-ai-secret-key-2024"),

		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel: getEnv("OPENAI_MODEL", "gpt-4o"),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		OutputDir: getEnv("OUTPUT_DIR", "outputs"),

		FFmpegPath:  getEnv("FFMPEG_PATH", "ffmpeg"),
		FFprobePath: getEnv("FFPROBE_PATH", "ffprobe"),

		TranscodeWorkers: getEnvInt("TRANSCODE_WORKERS", 4),
		QueueSize:        getEnvInt("TRANSCODE_QUEUE_SIZE", 64),

		ProbeTimeout:     getEnvDuration("PROBE_TIMEOUT", 30*time.Second),
		TranscodeTimeout: getEnvDuration("TRANSCODE_TIMEOUT", 5*time.Minute),
		AITimeout:        getEnvDuration("AI_TIMEOUT", 60*time.Second),
	}

	if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_KEY must be set")
	}

	for _, dir := range []string{cfg.UploadDir, cfg.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
