// Package captions turns clip parameters and raw transcripts into social-media
// copy via the OpenAI chat API. Every entry point degrades to canned content
// instead of failing; a clip with generic captions is still a clip.
package captions

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

const (
	clipPersona = "You are a viral short-form video expert. You write scroll-stopping captions, hooks and hashtags for social media clips."

	storyPersona = "You are an expert at formatting story narration into screen-ready captions for faceless videos."

	// FallbackSummary is used whenever a summary cannot be obtained.
	FallbackSummary = "An engaging clip generated from your video."

	fallbackCaption  = "Check out this clip!"
	fallbackHashtags = "#viral #clips #fyp"
)

// ChatClient is the slice of the OpenAI client the synthesizer needs.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Synthesizer drives the text-generation capability.
type Synthesizer struct {
	client  ChatClient
	model   string
	timeout time.Duration
	log     *logrus.Logger
}

// New returns a Synthesizer using the given chat client and model.
func New(client ChatClient, model string, timeout time.Duration, log *logrus.Logger) *Synthesizer {
	return &Synthesizer{client: client, model: model, timeout: timeout, log: log}
}

// ClipContext carries the technical parameters of a produced clip; the prompt
// embeds them so the generated copy matches what the viewer will see.
type ClipContext struct {
	SourceDuration float64
	TargetDuration int
	AspectRatio    string
	Notes          string
}

// ClipCaptions is the parsed five-field result of clip caption synthesis.
type ClipCaptions struct {
	Caption  string
	Hashtags string
	Hook     string
	CTA      string
	Summary  string
}

func fallbackClipCaptions() ClipCaptions {
	return ClipCaptions{
		Caption:  fallbackCaption,
		Hashtags: fallbackHashtags,
		Summary:  FallbackSummary,
	}
}

// ClipCaptions generates caption metadata for a produced clip. It never fails:
// any transport or parsing problem yields the fixed fallback content.
func (s *Synthesizer) ClipCaptions(ctx context.Context, cc ClipContext) ClipCaptions {
	text, err := s.send(ctx, clipPersona, BuildClipPrompt(cc))
	if err != nil {
		s.log.WithError(err).Warn("Caption generation failed, using fallback content")
		return fallbackClipCaptions()
	}
	return ParseClipCaptions(text)
}

// BuildClipPrompt assembles the single-message prompt for clip captions.
func BuildClipPrompt(cc ClipContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write social media copy for a short video clip.\n")
	fmt.Fprintf(&b, "Source video duration: %.1f seconds\n", cc.SourceDuration)
	fmt.Fprintf(&b, "Clip duration: %d seconds\n", cc.TargetDuration)
	fmt.Fprintf(&b, "Aspect ratio: %s\n", cc.AspectRatio)
	if notes := strings.TrimSpace(cc.Notes); notes != "" {
		fmt.Fprintf(&b, "Creator notes: %s\n", notes)
	}
	b.WriteString("\nRespond with exactly five lines, one per label, nothing else:\n")
	b.WriteString("CAPTION: <one engaging caption>\n")
	b.WriteString("HASHTAGS: <5-8 hashtags separated by spaces>\n")
	b.WriteString("HOOK: <a hook line for the first 3 seconds>\n")
	b.WriteString("CTA: <a short call to action>\n")
	b.WriteString("SUMMARY: <one sentence describing the clip>\n")
	return b.String()
}

// clipLabels in response order; parsing does not depend on this order.
var clipLabels = []string{"CAPTION:", "HASHTAGS:", "HOOK:", "CTA:", "SUMMARY:"}

// ParseClipCaptions scans a model response line by line. A line belongs to a
// field when it starts with the exact label (case-sensitive, colon included);
// the value is the rest of the line, trimmed. Unrecognized lines are ignored,
// a repeated label overwrites the earlier value, and a missing summary falls
// back to the fixed sentence.
func ParseClipCaptions(text string) ClipCaptions {
	fields := make(map[string]string, len(clipLabels))
	for _, line := range strings.Split(text, "\n") {
		for _, label := range clipLabels {
			if strings.HasPrefix(line, label) {
				fields[label] = strings.TrimSpace(strings.TrimPrefix(line, label))
				break
			}
		}
	}

	out := ClipCaptions{
		Caption:  fields["CAPTION:"],
		Hashtags: fields["HASHTAGS:"],
		Hook:     fields["HOOK:"],
		CTA:      fields["CTA:"],
		Summary:  fields["SUMMARY:"],
	}
	if out.Summary == "" {
		out.Summary = FallbackSummary
	}
	return out
}

// StoryResult is the outcome of story-caption formatting. When Succeeded is
// false, Captions holds the caller's transcript unchanged.
type StoryResult struct {
	Captions  string
	Succeeded bool
}

var pacingGuidance = map[string]string{
	"short":  "aggressive, fast-paced cuts that keep every caption under a second of reading time",
	"medium": "balanced pacing with a steady rhythm between captions",
	"long":   "slow, emotional pacing that lets heavy moments breathe",
}

var styleGuidance = map[string]string{
	"dramatic":     "high tension and sharp emotional peaks",
	"mysterious":   "withheld information and an unsettling, curious tone",
	"heartwarming": "warm, gentle delivery that builds to an uplifting payoff",
	"suspenseful":  "mounting dread with cliffhanger breaks between captions",
	"educational":  "clear, confident delivery that lands one idea per caption",
}

// StoryCaptions formats a transcript into screen-ready caption segments.
// Unknown style or pacing values use the dramatic/medium guidance. On any
// generation failure the original transcript is returned with Succeeded false.
func (s *Synthesizer) StoryCaptions(ctx context.Context, transcript, style, pacing string) StoryResult {
	text, err := s.send(ctx, storyPersona, BuildStoryPrompt(transcript, style, pacing))
	if err != nil {
		s.log.WithError(err).Warn("Story caption generation failed, returning raw transcript")
		return StoryResult{Captions: transcript, Succeeded: false}
	}
	return StoryResult{Captions: text, Succeeded: true}
}

// BuildStoryPrompt embeds the transcript verbatim; the model must segment it,
// never rewrite it.
func BuildStoryPrompt(transcript, style, pacing string) string {
	styleText, ok := styleGuidance[style]
	if !ok {
		styleText = styleGuidance["dramatic"]
	}
	pacingText, ok := pacingGuidance[pacing]
	if !ok {
		pacingText = pacingGuidance["medium"]
	}

	var b strings.Builder
	b.WriteString("Format the following transcript into captions for a story video.\n")
	fmt.Fprintf(&b, "Style: %s\n", styleText)
	fmt.Fprintf(&b, "Pacing: %s\n", pacingText)
	b.WriteString("\nRules:\n")
	b.WriteString("- Split the text into short, screen-sized caption segments\n")
	b.WriteString("- Mark dramatic pauses with (...)\n")
	b.WriteString("- CAPITALIZE words that deserve emphasis\n")
	b.WriteString("- Preserve the original wording exactly; do not paraphrase or summarize\n")
	b.WriteString("\nTranscript:\n")
	b.WriteString(transcript)
	return b.String()
}

func (s *Synthesizer) send(ctx context.Context, persona, prompt string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(cctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: persona},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
