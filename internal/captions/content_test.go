package captions

import (
	"context"
	"strings"
	"testing"
)

func TestBuildVoiceoverPromptEmbedsParameters(t *testing.T) {
	t.Parallel()

	prompt := BuildVoiceoverPrompt("Welcome to the channel", "energetic")
	for _, want := range []string{"Welcome to the channel", "energetic", "natural pauses"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildVoiceoverPromptDefaultsStyle(t *testing.T) {
	t.Parallel()

	if !strings.Contains(BuildVoiceoverPrompt("text", ""), "professional") {
		t.Error("empty voice style should default to professional")
	}
}

func TestBuildTranscriptionPromptEmbedsDescription(t *testing.T) {
	t.Parallel()

	prompt := BuildTranscriptionPrompt("a cooking tutorial")
	for _, want := range []string{"a cooking tutorial", "[00:00]", "[SFX]"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildRankingPromptEmbedsTitleAndNiche(t *testing.T) {
	t.Parallel()

	prompt := BuildRankingPrompt("My Best Video", "tech reviews")
	for _, want := range []string{"My Best Video", "tech reviews", "SEO score"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildSplitScreenPromptDefaults(t *testing.T) {
	t.Parallel()

	prompt := BuildSplitScreenPrompt("gaming reactions", "", "")
	for _, want := range []string{"gaming reactions", "engaging", "60s", "Left panel"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestVoiceoverScriptReturnsGeneratedText(t *testing.T) {
	t.Parallel()

	s := testSynth(respondWith("OPTIMIZED ... script"))
	got, err := s.VoiceoverScript(context.Background(), "Welcome", "calm")
	if err != nil {
		t.Fatalf("VoiceoverScript: %v", err)
	}
	if got != "OPTIMIZED ... script" {
		t.Errorf("got %q", got)
	}
}

// No fallback content here, unlike clip and story captions.
func TestContentGenerationPropagatesFailure(t *testing.T) {
	t.Parallel()

	s := testSynth(failingClient())
	if _, err := s.RankingReport(context.Background(), "My Video", "tech"); err == nil {
		t.Fatal("expected the transport error to propagate")
	}
	if _, err := s.TranscriptionTemplate(context.Background(), "a vlog"); err == nil {
		t.Fatal("expected the transport error to propagate")
	}
}
