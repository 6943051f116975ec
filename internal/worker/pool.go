// Package worker provides a fixed-size pool that bounds how many external
// transcode processes run at once.
package worker

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrQueueFull is returned by Submit when the job queue has no room left.
var ErrQueueFull = errors.New("worker: job queue is full")

// Job represents a unit of work to be executed.
type Job interface {
	Execute() error // The method that performs the actual work
	ID() string     // A unique identifier for the job
}

// Worker pulls jobs from its own channel after registering it with the pool.
type Worker struct {
	ID         int
	WorkerPool chan chan Job
	JobChannel chan Job
	Quit       chan bool
	Wg         *sync.WaitGroup
	Log        *logrus.Logger
}

// NewWorker creates a new Worker registered against the given pool.
func NewWorker(id int, workerPool chan chan Job, wg *sync.WaitGroup, log *logrus.Logger) Worker {
	return Worker{
		ID:         id,
		WorkerPool: workerPool,
		JobChannel: make(chan Job),
		Quit:       make(chan bool),
		Wg:         wg,
		Log:        log,
	}
}

// Start makes the Worker listen for jobs on its JobChannel.
func (w Worker) Start() {
	w.Wg.Add(1)
	go func() {
		defer w.Wg.Done()
		for {
			// Register the current worker's JobChannel to the worker pool.
			w.WorkerPool <- w.JobChannel

			select {
			case job := <-w.JobChannel:
				w.Log.WithFields(logrus.Fields{"worker": w.ID, "job": job.ID()}).Info("Worker started job")
				if err := job.Execute(); err != nil {
					w.Log.WithFields(logrus.Fields{"worker": w.ID, "job": job.ID()}).WithError(err).Error("Job failed")
				} else {
					w.Log.WithFields(logrus.Fields{"worker": w.ID, "job": job.ID()}).Info("Worker finished job")
				}
			case <-w.Quit:
				return
			}
		}
	}()
}

// Stop signals the worker to stop processing new jobs.
func (w Worker) Stop() {
	go func() {
		w.Quit <- true
	}()
}

// Dispatcher manages a pool of workers and dispatches jobs to them.
type Dispatcher struct {
	MaxWorkers int
	WorkerPool chan chan Job
	JobQueue   chan Job
	Workers    []Worker
	Wg         sync.WaitGroup
	Quit       chan bool
	Log        *logrus.Logger
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(maxWorkers, jobQueueSize int, log *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		MaxWorkers: maxWorkers,
		WorkerPool: make(chan chan Job, maxWorkers),
		JobQueue:   make(chan Job, jobQueueSize),
		Workers:    make([]Worker, 0, maxWorkers),
		Quit:       make(chan bool),
		Log:        log,
	}
}

// Run starts the dispatcher and its workers.
func (d *Dispatcher) Run() {
	d.Log.WithField("workers", d.MaxWorkers).Info("Starting transcode worker pool")
	for i := 1; i <= d.MaxWorkers; i++ {
		worker := NewWorker(i, d.WorkerPool, &d.Wg, d.Log)
		d.Workers = append(d.Workers, worker)
		worker.Start()
	}
	go d.dispatch()
}

func (d *Dispatcher) dispatch() {
	for {
		select {
		case job := <-d.JobQueue:
			go func(job Job) {
				// Wait for a worker to become available.
				jobChannel := <-d.WorkerPool
				jobChannel <- job
			}(job)
		case <-d.Quit:
			return
		}
	}
}

// Submit adds a job to the queue. It does not block; callers must treat
// ErrQueueFull as backpressure and fail the request.
func (d *Dispatcher) Submit(job Job) error {
	select {
	case d.JobQueue <- job:
		return nil
	default:
		d.Log.WithField("job", job.ID()).Warn("Job queue full, rejecting job")
		return ErrQueueFull
	}
}

// Stop gracefully shuts down the dispatcher and all its workers.
func (d *Dispatcher) Stop() {
	d.Quit <- true
	for _, worker := range d.Workers {
		worker.Stop()
	}
	d.Wg.Wait()
	d.Log.Info("Transcode worker pool stopped")
}
