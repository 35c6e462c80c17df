// Package worker provides the bounded pool and rate limiter used to fan one
// batch of article analyses out across goroutines.
package worker

import (
	"context"
	"sync"
)

// Task is a unit of work executed by the pool.
type Task interface {
	Run(ctx context.Context) Outcome
}

// Outcome is the result of one task.
type Outcome interface {
	Err() error
}

// Pool executes tasks with a fixed number of workers. Cancellation stops
// issuing new tasks; in-flight tasks run to completion and their outcomes
// are still collected.
type Pool struct {
	width int
}

// NewPool creates a pool with the given width.
func NewPool(width int) *Pool {
	if width <= 0 {
		width = 1
	}
	return &Pool{width: width}
}

// Run executes all tasks and returns the outcomes of those that ran.
// Completion order is unspecified; callers needing determinism sort the
// outcomes themselves.
func (p *Pool) Run(ctx context.Context, tasks []Task) []Outcome {
	if len(tasks) == 0 {
		return nil
	}

	queue := make(chan Task)
	outcomes := make(chan Outcome, len(tasks))

	var wg sync.WaitGroup
	for i := 0; i < p.width; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range queue {
				outcomes <- task.Run(ctx)
			}
		}()
	}

feed:
	for _, task := range tasks {
		select {
		case <-ctx.Done():
			break feed
		case queue <- task:
		}
	}
	close(queue)

	wg.Wait()
	close(outcomes)

	collected := make([]Outcome, 0, len(tasks))
	for outcome := range outcomes {
		collected = append(collected, outcome)
	}
	return collected
}
