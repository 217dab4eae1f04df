package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewPool_Workers(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{4, 4},
		{1, 1},
		{0, runtime.GOMAXPROCS(0)},
		{-3, runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		p := NewPool(tt.in)
		if got := p.Workers(); got != tt.want {
			t.Errorf("NewPool(%d).Workers() = %d, want %d", tt.in, got, tt.want)
		}
		p.Close()
	}
}

func TestPool_RunAll(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	const n = 200
	var count atomic.Int64
	results := make([]int, n)
	jobs := make([]func(), n)
	for i := range jobs {
		jobs[i] = func() {
			count.Add(1)
			results[i] = i * i
		}
	}
	p.Run(jobs)

	if got := count.Load(); got != n {
		t.Fatalf("ran %d jobs, want %d", got, n)
	}
	for i, r := range results {
		if r != i*i {
			t.Fatalf("results[%d] = %d, want %d", i, r, i*i)
		}
	}
}

func TestPool_RunEmpty(t *testing.T) {
	p := NewPool(2)
	defer p.Close()
	p.Run(nil)
}

func TestPool_RunAfterClose(t *testing.T) {
	p := NewPool(2)
	p.Close()
	p.Close()

	var count atomic.Int64
	p.Run([]func(){
		func() { count.Add(1) },
		func() { count.Add(1) },
	})
	if got := count.Load(); got != 2 {
		t.Errorf("ran %d jobs on a closed pool, want 2", got)
	}
}

func TestPool_UnevenJobs(t *testing.T) {
	p := NewPool(3)
	defer p.Close()

	var sum atomic.Int64
	jobs := make([]func(), 30)
	for i := range jobs {
		jobs[i] = func() {
			// Every third job is much heavier.
			n := 1
			if i%3 == 0 {
				n = 20000
			}
			acc := 0
			for k := 0; k < n; k++ {
				acc += k % 7
			}
			if acc >= 0 {
				sum.Add(1)
			}
		}
	}
	p.Run(jobs)
	if got := sum.Load(); got != 30 {
		t.Errorf("completed %d jobs, want 30", got)
	}
}

func TestPool_RunConcurrentWithClose(t *testing.T) {
	for round := 0; round < 50; round++ {
		p := NewPool(2)

		const callers, perCall = 8, 16
		var count atomic.Int64
		var wg sync.WaitGroup
		wg.Add(callers + 1)
		for range callers {
			go func() {
				defer wg.Done()
				jobs := make([]func(), perCall)
				for i := range jobs {
					jobs[i] = func() { count.Add(1) }
				}
				p.Run(jobs)
			}()
		}
		go func() {
			defer wg.Done()
			p.Close()
		}()

		finished := make(chan struct{})
		go func() {
			wg.Wait()
			close(finished)
		}()
		select {
		case <-finished:
		case <-time.After(5 * time.Second):
			t.Fatalf("round %d: Run or Close did not return", round)
		}
		if got := count.Load(); got != callers*perCall {
			t.Fatalf("round %d: ran %d jobs, want %d", round, got, callers*perCall)
		}
	}
}
