package worker

import (
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type countingJob struct {
	id   string
	mu   sync.Mutex
	runs int
	done chan struct{}
}

func newCountingJob(id string) *countingJob {
	return &countingJob{id: id, done: make(chan struct{})}
}

func (j *countingJob) Execute() error {
	j.mu.Lock()
	j.runs++
	j.mu.Unlock()
	close(j.done)
	return nil
}

func (j *countingJob) ID() string { return j.id }

func (j *countingJob) executed(t *testing.T) int {
	t.Helper()
	select {
	case <-j.done:
	case <-time.After(2 * time.Second):
		t.Fatal("job was never executed")
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.runs
}

func TestDispatcherExecutesSubmittedJobs(t *testing.T) {
	d := NewDispatcher(2, 8, testLogger())
	d.Run()
	defer d.Stop()

	jobs := []*countingJob{newCountingJob("a"), newCountingJob("b"), newCountingJob("c")}
	for _, j := range jobs {
		if err := d.Submit(j); err != nil {
			t.Fatalf("Submit(%s): %v", j.ID(), err)
		}
	}
	for _, j := range jobs {
		if got := j.executed(t); got != 1 {
			t.Errorf("job %s ran %d times, want 1", j.ID(), got)
		}
	}
}

func TestSubmitRejectsWhenQueueFull(t *testing.T) {
	// Not running, so the first job sits in the queue and the second has no room.
	d := NewDispatcher(1, 1, testLogger())

	if err := d.Submit(newCountingJob("first")); err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	if err := d.Submit(newCountingJob("second")); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("second Submit: got %v, want ErrQueueFull", err)
	}
}

func TestStopWaitsForWorkers(t *testing.T) {
	d := NewDispatcher(1, 4, testLogger())
	d.Run()

	j := newCountingJob("only")
	if err := d.Submit(j); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got := j.executed(t); got != 1 {
		t.Fatalf("job ran %d times, want 1", got)
	}
	d.Stop()
}
