package captions

import (
	"context"
	"fmt"
	"strings"
)

// Personas for the text-only generation routes. Unlike clip and story
// captions these calls have no fallback content; a transport failure is
// surfaced to the caller.
const (
	voiceoverPersona = "You are a professional voiceover script writer. You optimize text for natural speech patterns, pacing, and engagement."

	transcriptionPersona = "You are an expert at creating video transcriptions and captions. You generate accurate, well-formatted transcriptions with timestamps."

	rankingPersona = "You are a YouTube SEO and video ranking expert. You provide actionable optimization strategies based on current best practices."

	splitScreenPersona = "You are an expert in creating split-screen video content. You design engaging layouts and content strategies for dual-view videos."
)

// VoiceoverScript rewrites text into a speech-optimized script.
func (s *Synthesizer) VoiceoverScript(ctx context.Context, text, voiceStyle string) (string, error) {
	return s.send(ctx, voiceoverPersona, BuildVoiceoverPrompt(text, voiceStyle))
}

// BuildVoiceoverPrompt assembles the voiceover prompt. An empty voice style
// defaults to professional.
func BuildVoiceoverPrompt(text, voiceStyle string) string {
	if strings.TrimSpace(voiceStyle) == "" {
		voiceStyle = "professional"
	}

	var b strings.Builder
	b.WriteString("Transform this text into an optimized voiceover script.\n")
	fmt.Fprintf(&b, "Original text: %s\n", text)
	fmt.Fprintf(&b, "Voice style: %s\n", voiceStyle)
	b.WriteString("\nProvide:\n")
	b.WriteString("1. Optimized script with natural pauses (marked with ...)\n")
	b.WriteString("2. Emphasis suggestions (marked with *word*)\n")
	b.WriteString("3. Pacing notes\n")
	b.WriteString("4. Emotion and tone guidance for each section\n")
	return b.String()
}

// TranscriptionTemplate produces a caption-ready transcription template for a
// described video.
func (s *Synthesizer) TranscriptionTemplate(ctx context.Context, videoDescription string) (string, error) {
	return s.send(ctx, transcriptionPersona, BuildTranscriptionPrompt(videoDescription))
}

// BuildTranscriptionPrompt assembles the transcription-template prompt.
func BuildTranscriptionPrompt(videoDescription string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a sample transcription template for a video about: %s\n", videoDescription)
	b.WriteString("\nInclude:\n")
	b.WriteString("1. Formatted timestamps [00:00]\n")
	b.WriteString("2. Speaker labels if multiple speakers\n")
	b.WriteString("3. Caption-ready segments (short, readable lines)\n")
	b.WriteString("4. Notes for sound effects or music cues [SFX] [MUSIC]\n")
	b.WriteString("\nMake it suitable for YouTube subtitles and social media captions.\n")
	return b.String()
}

// RankingReport produces an SEO optimization report for a video title within
// a niche.
func (s *Synthesizer) RankingReport(ctx context.Context, videoTitle, niche string) (string, error) {
	return s.send(ctx, rankingPersona, BuildRankingPrompt(videoTitle, niche))
}

// BuildRankingPrompt assembles the ranking-analysis prompt.
func BuildRankingPrompt(videoTitle, niche string) string {
	var b strings.Builder
	b.WriteString("Analyze and provide ranking optimization for:\n")
	fmt.Fprintf(&b, "Video title: %s\n", videoTitle)
	fmt.Fprintf(&b, "Niche: %s\n", niche)
	b.WriteString("\nProvide:\n")
	b.WriteString("1. SEO score estimate (out of 100)\n")
	b.WriteString("2. Title optimization suggestions\n")
	b.WriteString("3. Recommended tags (15-20 tags)\n")
	b.WriteString("4. Description template\n")
	b.WriteString("5. Thumbnail suggestions\n")
	b.WriteString("6. Best posting times\n")
	b.WriteString("7. Competitor analysis tips\n")
	b.WriteString("8. Engagement strategy\n")
	return b.String()
}

// SplitScreenConcept produces a dual-panel video concept for a topic.
func (s *Synthesizer) SplitScreenConcept(ctx context.Context, topic, style, duration string) (string, error) {
	return s.send(ctx, splitScreenPersona, BuildSplitScreenPrompt(topic, style, duration))
}

// BuildSplitScreenPrompt assembles the split-screen concept prompt. Empty
// style and duration default to engaging and 60s.
func BuildSplitScreenPrompt(topic, style, duration string) string {
	if strings.TrimSpace(style) == "" {
		style = "engaging"
	}
	if strings.TrimSpace(duration) == "" {
		duration = "60s"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a split-screen video concept for: %s\n", topic)
	fmt.Fprintf(&b, "Duration: %s\n", duration)
	fmt.Fprintf(&b, "Style: %s\n", style)
	b.WriteString("\nInclude:\n")
	b.WriteString("1. Left panel content description\n")
	b.WriteString("2. Right panel content description\n")
	b.WriteString("3. Synchronization points\n")
	b.WriteString("4. Transition suggestions\n")
	b.WriteString("5. Audio strategy (which side carries the main audio)\n")
	b.WriteString("6. Text overlay suggestions\n")
	b.WriteString("7. Engagement hooks for both panels\n")
	return b.String()
}
