package timers

import (
	"sync"
	"time"
)

type Timer struct {
	ID       string
	Interval time.Duration
	Task     func()

	ticker *time.Ticker
	stop   chan struct{}
}

// Timers drives the periodic triggers of the app, most importantly the
// deletion sweep. Each timer runs its task in its own goroutine loop; a
// task invocation that overruns the interval simply overlaps the next one,
// which the sweep tolerates.
type Timers struct {
	mu     sync.Mutex
	timers map[string]*Timer
}

func New() *Timers {
	return &Timers{timers: make(map[string]*Timer)}
}

func (t *Timers) Add(id string, interval time.Duration, task func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if old, ok := t.timers[id]; ok {
		old.ticker.Stop()
		close(old.stop)
	}

	tm := &Timer{
		ID:       id,
		Interval: interval,
		Task:     task,
		ticker:   time.NewTicker(interval),
		stop:     make(chan struct{}),
	}
	t.timers[id] = tm

	go func() {
		for {
			select {
			case <-tm.ticker.C:
				go tm.Task()
			case <-tm.stop:
				return
			}
		}
	}()
}

func (t *Timers) Remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if tm, ok := t.timers[id]; ok {
		tm.ticker.Stop()
		close(tm.stop)
		delete(t.timers, id)
	}
}

func (t *Timers) StopAll() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for id, tm := range t.timers {
		tm.ticker.Stop()
		close(tm.stop)
		delete(t.timers, id)
	}
}
