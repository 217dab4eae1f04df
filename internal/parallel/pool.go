// Package parallel runs independent jobs on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool runs jobs on a fixed number of worker goroutines. Each worker owns
// a queue and steals from the others once its own queue runs dry, so a
// few slow jobs (large erosion grids) do not stall the rest.
//
// Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// mu orders Close after every in-flight enqueue.
	mu sync.RWMutex
}

// NewPool starts a pool of workers goroutines. Zero or a negative count
// means GOMAXPROCS.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		select {
		case <-p.done:
			drain(own)
			return
		case job := <-own:
			job()
		default:
			if job := p.steal(id); job != nil {
				job()
				continue
			}
			select {
			case <-p.done:
				drain(own)
				return
			case job := <-own:
				job()
			}
		}
	}
}

func drain(queue chan func()) {
	for {
		select {
		case job := <-queue:
			job()
		default:
			return
		}
	}
}

// steal takes one job from another worker's queue, or returns nil.
func (p *Pool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case job := <-p.queues[i]:
			return job
		default:
		}
	}
	return nil
}

// Run distributes jobs round-robin and blocks until all of them have
// finished. On a closed pool Run executes the jobs on the calling
// goroutine instead.
func (p *Pool) Run(jobs []func()) {
	if len(jobs) == 0 {
		return
	}
	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		for _, job := range jobs {
			job()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(jobs))
	for i, job := range jobs {
		p.queues[i%p.workers] <- func() {
			defer wg.Done()
			job()
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// Close waits for queued jobs and stops the workers. It is safe to call
// more than once, and concurrently with Run.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}
