package captions

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

type fakeChatClient struct {
	CreateChatCompletionFunc func(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

func (f *fakeChatClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return f.CreateChatCompletionFunc(ctx, req)
}

func respondWith(text string) *fakeChatClient {
	return &fakeChatClient{
		CreateChatCompletionFunc: func(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			return openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: text}}},
			}, nil
		},
	}
}

func failingClient() *fakeChatClient {
	return &fakeChatClient{
		CreateChatCompletionFunc: func(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			return openai.ChatCompletionResponse{}, errors.New("quota exceeded")
		},
	}
}

func testSynth(client ChatClient) *Synthesizer {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(client, "gpt-4o", time.Second, log)
}

func TestParseClipCaptionsAllFieldsAnyOrder(t *testing.T) {
	t.Parallel()

	response := strings.Join([]string{
		"SUMMARY: A quick tour of the workshop.",
		"some preamble the model added",
		"CTA: Follow for more!",
		"CAPTION: Inside the workshop today",
		"HOOK: You won't believe what's in here",
		"HASHTAGS: #workshop #diy #maker",
	}, "\n")

	got := ParseClipCaptions(response)

	if got.Caption != "Inside the workshop today" {
		t.Errorf("Caption = %q", got.Caption)
	}
	if got.Hashtags != "#workshop #diy #maker" {
		t.Errorf("Hashtags = %q", got.Hashtags)
	}
	if got.Hook != "You won't believe what's in here" {
		t.Errorf("Hook = %q", got.Hook)
	}
	if got.CTA != "Follow for more!" {
		t.Errorf("CTA = %q", got.CTA)
	}
	if got.Summary != "A quick tour of the workshop." {
		t.Errorf("Summary = %q", got.Summary)
	}
}

func TestParseClipCaptionsNoLabels(t *testing.T) {
	t.Parallel()

	got := ParseClipCaptions("The model went completely off script.\nNo labels anywhere.")

	if got.Caption != "" || got.Hashtags != "" || got.Hook != "" || got.CTA != "" {
		t.Errorf("expected empty fields, got %+v", got)
	}
	if got.Summary != FallbackSummary {
		t.Errorf("Summary = %q, want fallback sentence", got.Summary)
	}
}

func TestParseClipCaptionsDuplicateLabelLastWins(t *testing.T) {
	t.Parallel()

	got := ParseClipCaptions("CAPTION: first try\nCAPTION: second try")
	if got.Caption != "second try" {
		t.Errorf("Caption = %q, want last occurrence", got.Caption)
	}
}

func TestParseClipCaptionsLabelsAreCaseSensitive(t *testing.T) {
	t.Parallel()

	got := ParseClipCaptions("caption: lowercase is not a label")
	if got.Caption != "" {
		t.Errorf("Caption = %q, want empty", got.Caption)
	}
}

func TestClipCaptionsFallbackOnFailure(t *testing.T) {
	t.Parallel()

	s := testSynth(failingClient())
	got := s.ClipCaptions(context.Background(), ClipContext{SourceDuration: 120, TargetDuration: 60, AspectRatio: "portrait"})

	want := fallbackClipCaptions()
	if got != want {
		t.Errorf("ClipCaptions = %+v, want fallback %+v", got, want)
	}
}

func TestClipCaptionsParsesResponse(t *testing.T) {
	t.Parallel()

	s := testSynth(respondWith("CAPTION: Great clip\nHASHTAGS: #a #b\nHOOK: Wait for it\nCTA: Share this\nSUMMARY: A great clip."))
	got := s.ClipCaptions(context.Background(), ClipContext{SourceDuration: 90, TargetDuration: 30, AspectRatio: "landscape"})

	if got.Caption != "Great clip" || got.Summary != "A great clip." {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestBuildClipPromptEmbedsParameters(t *testing.T) {
	t.Parallel()

	prompt := BuildClipPrompt(ClipContext{SourceDuration: 120, TargetDuration: 60, AspectRatio: "portrait", Notes: "bold energy"})

	for _, want := range []string{"120.0 seconds", "60 seconds", "portrait", "bold energy", "CAPTION:", "HASHTAGS:", "HOOK:", "CTA:", "SUMMARY:"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildStoryPromptEmbedsTranscriptVerbatim(t *testing.T) {
	t.Parallel()

	transcript := "The door creaked open."
	prompt := BuildStoryPrompt(transcript, "mysterious", "short")

	if !strings.Contains(prompt, transcript) {
		t.Fatal("prompt must embed the transcript verbatim")
	}
	if !strings.Contains(prompt, styleGuidance["mysterious"]) {
		t.Error("prompt missing mysterious style guidance")
	}
	if !strings.Contains(prompt, pacingGuidance["short"]) {
		t.Error("prompt missing short pacing guidance")
	}
}

func TestBuildStoryPromptUnknownValuesUseDefaults(t *testing.T) {
	t.Parallel()

	prompt := BuildStoryPrompt("text", "sarcastic", "instant")

	if !strings.Contains(prompt, styleGuidance["dramatic"]) {
		t.Error("unknown style should fall back to dramatic guidance")
	}
	if !strings.Contains(prompt, pacingGuidance["medium"]) {
		t.Error("unknown pacing should fall back to medium guidance")
	}
}

func TestStoryCaptionsFailureReturnsTranscript(t *testing.T) {
	t.Parallel()

	transcript := "The door creaked open."
	s := testSynth(failingClient())

	got := s.StoryCaptions(context.Background(), transcript, "mysterious", "short")
	if got.Succeeded {
		t.Fatal("expected Succeeded=false")
	}
	if got.Captions != transcript {
		t.Errorf("Captions = %q, want the original transcript", got.Captions)
	}
}

func TestStoryCaptionsSuccess(t *testing.T) {
	t.Parallel()

	s := testSynth(respondWith("THE DOOR (...) creaked open."))
	got := s.StoryCaptions(context.Background(), "The door creaked open.", "dramatic", "medium")
	if !got.Succeeded {
		t.Fatal("expected Succeeded=true")
	}
	if got.Captions != "THE DOOR (...) creaked open." {
		t.Errorf("Captions = %q", got.Captions)
	}
}
