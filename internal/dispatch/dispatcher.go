package dispatch

import (
	"context"
	"sync"
	"time"

	"gitlab.com/void-training.net/internal/core/ports/primary"
)

// Task is a unit of background work. It receives its own bounded context,
// detached from the request that scheduled it.
type Task func(ctx context.Context)

// Dispatcher schedules fire-and-forget side effects off the request path.
type Dispatcher interface {
	// Submit queues a task without blocking. It returns false when the
	// queue is full and the task was dropped.
	Submit(name string, task Task) bool
}

type namedTask struct {
	name string
	fn   Task
}

// Pool is a fixed worker pool draining a buffered task queue. Tasks that
// are still queued when the process exits are lost.
type Pool struct {
	tasks       chan namedTask
	taskTimeout time.Duration
	logger      primary.Logger
	wg          sync.WaitGroup
	stopOnce    sync.Once
}

var _ Dispatcher = (*Pool)(nil)

// NewPool starts workerSize workers draining a queue of queueSize tasks
func NewPool(workerSize, queueSize int, taskTimeout time.Duration, logger primary.Logger) *Pool {
	p := &Pool{
		tasks:       make(chan namedTask, queueSize),
		taskTimeout: taskTimeout,
		logger:      logger,
	}
	p.wg.Add(workerSize)
	for i := 0; i < workerSize; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for t := range p.tasks {
		p.run(t)
	}
}

func (p *Pool) run(t namedTask) {
	ctx, cancel := context.WithTimeout(context.Background(), p.taskTimeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Background task panicked", "task", t.name, "panic", r)
		}
	}()
	t.fn(ctx)
}

// Submit queues a task; it never blocks the caller
func (p *Pool) Submit(name string, task Task) bool {
	select {
	case p.tasks <- namedTask{name: name, fn: task}:
		return true
	default:
		p.logger.Warn("Task queue full, dropping task", "task", name)
		return false
	}
}

// Stop drains the queue and waits for in-flight tasks to finish. Submit
// must not be called after Stop.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.tasks)
	})
	p.wg.Wait()
}
