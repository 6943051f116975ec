package ffmpeg

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestTool(run commandRunner) *Tool {
	tool := New("ffmpeg", "ffprobe", time.Second, time.Second, testLogger())
	tool.run = run
	return tool
}

func TestTrimWindow(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		original     float64
		target       float64
		wantStart    float64
		wantDuration float64
	}{
		{name: "long source skips 10 percent", original: 120, target: 60, wantStart: 12, wantDuration: 60},
		{name: "very long source", original: 600, target: 60, wantStart: 60, wantDuration: 60},
		{name: "barely long enough clamps start", original: 65, target: 60, wantStart: 5, wantDuration: 60},
		{name: "short source starts at zero", original: 30, target: 60, wantStart: 0, wantDuration: 30},
		{name: "short source duration floored", original: 45.7, target: 60, wantStart: 0, wantDuration: 45},
		{name: "unknown duration keeps target", original: 0, target: 60, wantStart: 0, wantDuration: 60},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			start, duration := TrimWindow(tc.original, tc.target)
			if start != tc.wantStart {
				t.Errorf("start = %v, want %v", start, tc.wantStart)
			}
			if duration != tc.wantDuration {
				t.Errorf("duration = %v, want %v", duration, tc.wantDuration)
			}
			if tc.original > 0 && start+duration > tc.original {
				t.Errorf("window %v+%v reads past end of %vs source", start, duration, tc.original)
			}
		})
	}
}

func TestAspectFilter(t *testing.T) {
	t.Parallel()

	cases := []struct {
		mode string
		want string
	}{
		{mode: "portrait", want: "crop=ih*9/16:ih,scale=1080:1920"},
		{mode: "landscape", want: "crop=iw:iw*9/16,scale=1920:1080"},
		{mode: "square", want: "crop=iw:iw*9/16,scale=1920:1080"},
		{mode: "", want: "crop=iw:iw*9/16,scale=1920:1080"},
	}

	for _, tc := range cases {
		if got := AspectFilter(tc.mode); got != tc.want {
			t.Errorf("AspectFilter(%q) = %q, want %q", tc.mode, got, tc.want)
		}
	}
}

func TestProbe(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		output string
		err    error
		want   float64
	}{
		{name: "valid duration", output: `{"format":{"duration":"123.456"}}`, want: 123.456},
		{name: "tool failure", output: "", err: errors.New("exit status 1"), want: 0},
		{name: "malformed json", output: "not json", want: 0},
		{name: "missing duration field", output: `{"format":{}}`, want: 0},
		{name: "non-numeric duration", output: `{"format":{"duration":"N/A"}}`, want: 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tool := newTestTool(func(ctx context.Context, name string, args ...string) ([]byte, error) {
				return []byte(tc.output), tc.err
			})
			if got := tool.Probe(context.Background(), "in.mp4"); got != tc.want {
				t.Errorf("Probe = %v, want %v", got, tc.want)
			}
		})
	}
}

func hasArg(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}

func TestTranscodeFallbackDropsFilter(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "clip.mp4")

	var ffmpegCalls [][]string
	tool := newTestTool(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		if name == "ffprobe" {
			return []byte(`{"format":{"duration":"120.0"}}`), nil
		}
		ffmpegCalls = append(ffmpegCalls, args)
		if len(ffmpegCalls) == 1 {
			return []byte("filter error"), errors.New("exit status 1")
		}
		if err := os.WriteFile(out, []byte("video"), 0o644); err != nil {
			t.Fatalf("write output: %v", err)
		}
		return nil, nil
	})

	if !tool.Transcode(context.Background(), "in.mp4", out, 60, "portrait") {
		t.Fatal("expected transcode to succeed via fallback")
	}
	if len(ffmpegCalls) != 2 {
		t.Fatalf("expected 2 ffmpeg attempts, got %d", len(ffmpegCalls))
	}
	if !hasArg(ffmpegCalls[0], "-vf") {
		t.Error("primary attempt should carry a filter graph")
	}
	if hasArg(ffmpegCalls[1], "-vf") {
		t.Error("fallback attempt must not carry a filter graph")
	}
	// Both attempts reuse the same trim window.
	if !hasArg(ffmpegCalls[0], "12.000") || !hasArg(ffmpegCalls[1], "12.000") {
		t.Errorf("both attempts should start at 12.000, got %v and %v", ffmpegCalls[0], ffmpegCalls[1])
	}
}

func TestTranscodeBothAttemptsFail(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "clip.mp4")

	ffmpegCalls := 0
	tool := newTestTool(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		if name == "ffprobe" {
			return []byte(`{"format":{"duration":"120.0"}}`), nil
		}
		ffmpegCalls++
		return []byte("encode error"), errors.New("exit status 1")
	})

	if tool.Transcode(context.Background(), "in.mp4", out, 60, "landscape") {
		t.Fatal("expected transcode to fail")
	}
	if ffmpegCalls != 2 {
		t.Fatalf("expected exactly 2 ffmpeg attempts, got %d", ffmpegCalls)
	}
}

func TestTranscodeMissingOutputIsFailure(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "clip.mp4")

	tool := newTestTool(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		if name == "ffprobe" {
			return []byte(`{"format":{"duration":"120.0"}}`), nil
		}
		// Exit zero without producing the file.
		return nil, nil
	})

	if tool.Transcode(context.Background(), "in.mp4", out, 60, "portrait") {
		t.Fatal("expected missing output to be reported as failure")
	}
}
