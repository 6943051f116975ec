// Package jobs defines the work items submitted to the worker pool.
package jobs

import (
	"context"
	"fmt"
)

// Transcoder produces a clip from a source file. Implemented by ffmpeg.Tool.
type Transcoder interface {
	Transcode(ctx context.Context, sourcePath, outputPath string, targetDuration float64, aspectMode string) bool
}

// TranscodeJob runs one clip transcode on the worker pool and delivers the
// boolean outcome to the submitter through Wait.
type TranscodeJob struct {
	JobID          string
	Ctx            context.Context
	Transcoder     Transcoder
	SourcePath     string
	OutputPath     string
	TargetDuration float64
	AspectRatio    string

	done chan bool
}

// NewTranscodeJob creates a job whose result can be collected exactly once.
func NewTranscodeJob(jobID string, ctx context.Context, transcoder Transcoder, sourcePath, outputPath string, targetDuration float64, aspectRatio string) *TranscodeJob {
	return &TranscodeJob{
		JobID:          jobID,
		Ctx:            ctx,
		Transcoder:     transcoder,
		SourcePath:     sourcePath,
		OutputPath:     outputPath,
		TargetDuration: targetDuration,
		AspectRatio:    aspectRatio,
		done:           make(chan bool, 1),
	}
}

// ID returns the unique identifier of the job.
func (j *TranscodeJob) ID() string {
	return j.JobID
}

// Execute performs the transcode and publishes the outcome.
func (j *TranscodeJob) Execute() error {
	ok := j.Transcoder.Transcode(j.Ctx, j.SourcePath, j.OutputPath, j.TargetDuration, j.AspectRatio)
	j.done <- ok
	if !ok {
		return fmt.Errorf("transcode of %s failed", j.SourcePath)
	}
	return nil
}

// Wait blocks until the job finishes or ctx is cancelled.
func (j *TranscodeJob) Wait(ctx context.Context) (bool, error) {
	select {
	case ok := <-j.done:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
