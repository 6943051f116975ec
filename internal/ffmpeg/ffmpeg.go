// Package ffmpeg wraps the external ffmpeg and ffprobe binaries for the two
// media operations the service performs: probing a file's duration and
// producing a trimmed, reframed clip.
package ffmpeg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Output geometry per aspect mode.
const (
	portraitFilter  = "crop=ih*9/16:ih,scale=1080:1920"
	landscapeFilter = "crop=iw:iw*9/16,scale=1920:1080"
)

// commandRunner executes an external tool and returns its combined output.
// Swapped out in tests.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.Bytes(), err
}

// Tool invokes ffmpeg/ffprobe with bounded timeouts. Safe for concurrent use;
// it holds no per-call state.
type Tool struct {
	ffmpeg           string
	ffprobe          string
	probeTimeout     time.Duration
	transcodeTimeout time.Duration
	log              *logrus.Logger
	run              commandRunner
}

// New returns a Tool bound to the given binary paths.
func New(ffmpegPath, ffprobePath string, probeTimeout, transcodeTimeout time.Duration, log *logrus.Logger) *Tool {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Tool{
		ffmpeg:           ffmpegPath,
		ffprobe:          ffprobePath,
		probeTimeout:     probeTimeout,
		transcodeTimeout: transcodeTimeout,
		log:              log,
		run:              runCommand,
	}
}

// probeOutput captures the slice of ffprobe JSON output we care about.
type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Probe returns the container duration of the file at path in seconds.
// Any failure (missing tool, malformed output, absent duration field) yields
// 0.0; callers must treat that as "unknown", not as an empty clip.
func (t *Tool) Probe(ctx context.Context, path string) float64 {
	cctx, cancel := context.WithTimeout(ctx, t.probeTimeout)
	defer cancel()

	out, err := t.run(cctx, t.ffprobe,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		path,
	)
	if err != nil {
		t.log.WithField("path", path).WithError(err).Warn("ffprobe failed")
		return 0
	}

	var probed probeOutput
	if err := json.Unmarshal(out, &probed); err != nil {
		t.log.WithField("path", path).WithError(err).Warn("Could not parse ffprobe output")
		return 0
	}
	if probed.Format.Duration == "" {
		return 0
	}

	seconds, err := strconv.ParseFloat(probed.Format.Duration, 64)
	if err != nil {
		t.log.WithField("duration", probed.Format.Duration).Warn("Non-numeric ffprobe duration")
		return 0
	}
	return seconds
}

// AspectFilter returns the crop+scale filter graph for an aspect mode.
// Portrait centers a 9:16 window; anything else gets the 16:9 landscape frame.
func AspectFilter(mode string) string {
	if mode == "portrait" {
		return portraitFilter
	}
	return landscapeFilter
}

// Transcode produces a clip of at most targetDuration seconds from sourcePath,
// reframed per aspectMode, at outputPath. When the filtered encode fails it
// retries once without the filter graph before giving up. Returns true only
// if an attempt exited zero and the output file exists.
func (t *Tool) Transcode(ctx context.Context, sourcePath, outputPath string, targetDuration float64, aspectMode string) bool {
	originalDuration := t.Probe(ctx, sourcePath)
	start, clipDuration := TrimWindow(originalDuration, targetDuration)

	if err := t.encode(ctx, sourcePath, outputPath, start, clipDuration, AspectFilter(aspectMode)); err != nil {
		t.log.WithFields(logrus.Fields{
			"source": sourcePath,
			"aspect": aspectMode,
		}).WithError(err).Warn("Filtered transcode failed, retrying without filter")

		if err := t.encode(ctx, sourcePath, outputPath, start, clipDuration, ""); err != nil {
			t.log.WithField("source", sourcePath).WithError(err).Error("Fallback transcode failed")
			return false
		}
	}

	if _, err := os.Stat(outputPath); err != nil {
		t.log.WithField("output", outputPath).Error("Transcode reported success but output is missing")
		return false
	}
	return true
}

func (t *Tool) encode(ctx context.Context, sourcePath, outputPath string, start, duration float64, filter string) error {
	cctx, cancel := context.WithTimeout(ctx, t.transcodeTimeout)
	defer cancel()

	args := []string{
		"-y",
		"-ss", formatSeconds(start),
		"-t", formatSeconds(duration),
		"-i", sourcePath,
	}
	if filter != "" {
		args = append(args, "-vf", filter)
	}
	args = append(args,
		"-c:v", "libx264",
		"-preset", "fast",
		"-crf", "23",
		"-c:a", "aac",
		"-b:a", "128k",
		outputPath,
	)

	out, err := t.run(cctx, t.ffmpeg, args...)
	if err != nil {
		if cctx.Err() != nil {
			// Timed-out encodes leave partial files behind.
			os.Remove(outputPath)
			return fmt.Errorf("ffmpeg timed out after %s: %w", t.transcodeTimeout, cctx.Err())
		}
		return fmt.Errorf("ffmpeg: %w\n%s", err, out)
	}
	return nil
}

// TrimWindow selects the (start, duration) pair to cut from a source of
// originalDuration seconds. Long sources skip the first 10% to avoid generic
// intros, but never start so late that less than targetDuration remains.
// Short sources start at zero with the duration clamped to the whole seconds
// available. An unknown original duration (0) keeps the requested target and
// lets the encoder stop at end of input.
func TrimWindow(originalDuration, targetDuration float64) (start, duration float64) {
	if originalDuration == 0 {
		return 0, targetDuration
	}
	if originalDuration > targetDuration {
		start = originalDuration * 0.10
		if latest := originalDuration - targetDuration; start > latest {
			start = latest
		}
		return start, targetDuration
	}
	return 0, math.Floor(originalDuration)
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 3, 64)
}
