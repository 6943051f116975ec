package jobs

import (
	"context"
	"testing"
	"time"
)

type stubTranscoder struct {
	ok    bool
	calls int
}

func (s *stubTranscoder) Transcode(ctx context.Context, sourcePath, outputPath string, targetDuration float64, aspectMode string) bool {
	s.calls++
	return s.ok
}

func TestWaitDeliversOutcome(t *testing.T) {
	t.Parallel()

	for _, ok := range []bool{true, false} {
		tr := &stubTranscoder{ok: ok}
		job := NewTranscodeJob("job-1", context.Background(), tr, "in.mp4", "out.mp4", 60, "portrait")

		err := job.Execute()
		if ok && err != nil {
			t.Errorf("Execute: %v", err)
		}
		if !ok && err == nil {
			t.Error("Execute must report a failed transcode")
		}

		got, err := job.Wait(context.Background())
		if err != nil {
			t.Fatalf("Wait: %v", err)
		}
		if got != ok {
			t.Errorf("Wait = %v, want %v", got, ok)
		}
		if tr.calls != 1 {
			t.Errorf("transcoder called %d times, want 1", tr.calls)
		}
	}
}

func TestWaitHonorsContext(t *testing.T) {
	t.Parallel()

	job := NewTranscodeJob("job-2", context.Background(), &stubTranscoder{ok: true}, "in.mp4", "out.mp4", 30, "landscape")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	ok, err := job.Wait(ctx)
	if ok {
		t.Error("Wait must not report success when nothing ran")
	}
	if err == nil {
		t.Fatal("Wait must surface the context error")
	}
}
