package harvest

import (
	"context"
	"sync"
)

type task func(ctx context.Context) error

type result struct {
	Err error
}

type pool struct {
	workers int
	tasks   chan task
	wg      sync.WaitGroup
}

func newPool(workers, buffer int) *pool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &pool{workers: workers, tasks: make(chan task, buffer)}
}

func (p *pool) Submit(t task) {
	if t == nil {
		return
	}
	p.tasks <- t
}

func (p *pool) Close() {
	close(p.tasks)
}

// Run starts the workers. The returned channel is closed once every worker
// has exited, either because tasks was closed and drained or ctx ended.
func (p *pool) Run(ctx context.Context) <-chan result {
	out := make(chan result, p.workers)
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					err := t(ctx)
					select {
					case <-ctx.Done():
						return
					case out <- result{Err: err}:
					}
				}
			}
		}()
	}
	go func() {
		p.wg.Wait()
		close(out)
	}()
	return out
}
