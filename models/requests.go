package models

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the payload for PUT /api/profile. Name is a pointer
// so an omitted field is distinguishable from an empty string.
type UpdateProfileRequest struct {
	Name *string `json:"name,omitempty"`
}

// GenerateClipRequest is the multipart/form payload for POST /api/generate/video-clip.
// Filename is accepted for client compatibility; the server resolves the stored
// filename from the video record, never from this field.
type GenerateClipRequest struct {
	VideoID        string `form:"video_id" json:"video_id" validate:"required"`
	Filename       string `form:"filename" json:"filename"`
	Notes          string `form:"notes" json:"notes"`
	AspectRatio    string `form:"aspect_ratio" json:"aspect_ratio" validate:"required,oneof=portrait landscape"`
	TargetDuration int    `form:"target_duration" json:"target_duration" validate:"required,oneof=15 30 45 60 90 180"`
}

// GenerateStoryRequest is the JSON payload for POST /api/generate/story-video.
type GenerateStoryRequest struct {
	Transcript string `json:"transcript" validate:"required"`
	Style      string `json:"style" validate:"required,oneof=dramatic mysterious heartwarming suspenseful educational"`
	Length     string `json:"length" validate:"required,oneof=short medium long"`
	Background string `json:"background" validate:"required,oneof=minecraft subway_surfers satisfying nature cooking abstract"`
}

// GenerateVoiceoverRequest is the JSON payload for POST /api/generate/voiceover.
// VoiceStyle defaults to "professional" when omitted.
type GenerateVoiceoverRequest struct {
	Text       string `json:"text" validate:"required"`
	VoiceStyle string `json:"voice_style"`
}

// GenerateTranscriptionRequest is the JSON payload for POST /api/generate/transcription.
type GenerateTranscriptionRequest struct {
	VideoDescription string `json:"video_description" validate:"required"`
}

// GenerateRankingRequest is the JSON payload for POST /api/generate/ranking.
type GenerateRankingRequest struct {
	VideoTitle string `json:"video_title" validate:"required"`
	Niche      string `json:"niche" validate:"required"`
}

// GenerateSplitScreenRequest is the JSON payload for POST /api/generate/split-screen.
// Style defaults to "engaging" and Duration to "60s" when omitted.
type GenerateSplitScreenRequest struct {
	VideoTopic string `json:"video_topic" validate:"required"`
	Style      string `json:"style"`
	Duration   string `json:"duration"`
}
