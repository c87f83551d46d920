package workers

import (
	"errors"
	"sync"
)

// Pool is the explicit dispatch point for fire-and-forget work: the store
// write after a monitored send and the per-task deletions during a sweep.
// Request handlers submit and move on; they never await completion.
type Pool struct {
	wg      sync.WaitGroup
	mu      sync.RWMutex
	tasks   chan func()
	stopped bool
}

func New(workerCount, queueSize int) *Pool {
	p := &Pool{
		tasks: make(chan func(), queueSize),
	}

	for range workerCount {
		p.wg.Add(1)
		go p.worker()
	}

	return p
}

// Submit enqueues without blocking. The lock keeps the enqueue and Stop's
// channel close mutually exclusive: a timer-driven sweep may still be
// submitting while shutdown begins.
func (p *Pool) Submit(task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return errors.New("worker pool is stopped")
	}

	select {
	case p.tasks <- task:
		return nil
	default:
		return errors.New("worker pool queue is full")
	}
}

// Stop rejects further submissions, drains the queue and waits for the
// workers to finish.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for task := range p.tasks {
		task()
	}
}
