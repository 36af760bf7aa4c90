package systems

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spaghettifunk/oglc/engine/core"
)

// JobTask is work that can run away from the graphics thread, such as
// reading and decoding an image. Run executes on a worker goroutine and
// must not touch the graphics context. OnComplete and OnFailure run later
// on the goroutine that calls Update.
type JobTask struct {
	Name       string
	Run        func() (interface{}, error)
	OnComplete func(result interface{})
	OnFailure  func(err error)
}

type jobResult struct {
	task   JobTask
	result interface{}
	err    error
}

// JobSystem is a fixed pool of workers fed through a buffered queue.
type JobSystem struct {
	numWorkers int
	jobQueue   chan JobTask
	wg         sync.WaitGroup

	mu   sync.Mutex
	done []jobResult

	// held for reading while sending so Shutdown never closes a queue
	// that still has a sender
	closeMu  sync.RWMutex
	isClosed bool
}

var ErrNoWorkers = fmt.Errorf("attempting to create worker pool with less than 1 worker")
var ErrNegativeChannelSize = fmt.Errorf("attempting to create worker pool with a negative channel size")
var ErrJobSystemClosed = errors.New("job system is shut down")

func NewJobSystem(numWorkers int, channelSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}

	js := &JobSystem{
		numWorkers: numWorkers,
		jobQueue:   make(chan JobTask, channelSize),
	}
	js.start()
	core.LogDebug("job system started with %d workers", numWorkers)
	return js, nil
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			for job := range js.jobQueue {
				result, err := job.Run()
				if err != nil {
					core.LogError("job %s failed: %s", job.Name, err)
				}
				js.mu.Lock()
				js.done = append(js.done, jobResult{task: job, result: result, err: err})
				js.mu.Unlock()
			}
		}()
	}
}

// Shutdown waits for queued jobs to finish. Their callbacks are dropped.
func (js *JobSystem) Shutdown() error {
	js.closeMu.Lock()
	if js.isClosed {
		js.closeMu.Unlock()
		return nil
	}
	js.isClosed = true
	close(js.jobQueue)
	js.closeMu.Unlock()

	js.wg.Wait()

	js.mu.Lock()
	if n := len(js.done); n > 0 {
		core.LogDebug("dropping %d finished jobs at shutdown", n)
	}
	js.done = nil
	js.mu.Unlock()
	return nil
}

// Update runs the callbacks of every finished job and returns how many
// there were. It runs once per frame on the graphics thread.
func (js *JobSystem) Update() int {
	js.mu.Lock()
	done := js.done
	js.done = nil
	js.mu.Unlock()

	for _, d := range done {
		if d.err != nil {
			if d.task.OnFailure != nil {
				d.task.OnFailure(d.err)
			}
			continue
		}
		if d.task.OnComplete != nil {
			d.task.OnComplete(d.result)
		}
	}
	return len(done)
}

// Submit queues jt, blocking while the queue is full.
func (js *JobSystem) Submit(jt JobTask) error {
	if jt.Run == nil {
		return fmt.Errorf("job %s has nothing to run", jt.Name)
	}
	js.closeMu.RLock()
	defer js.closeMu.RUnlock()
	if js.isClosed {
		return ErrJobSystemClosed
	}
	js.jobQueue <- jt
	return nil
}
