// Package engine runs username generation over a bounded worker pool. The
// pipeline pulls work items from a source in fixed-size chunks, fans them
// out to workers, and consumes results in completion order, so memory stays
// bounded even when the source is a huge lazy cross product.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/fmfug/fmfug/internal/core"
)

// Task turns one work item into usernames. Implementations must be safe
// for concurrent use; the pipeline calls Generate from multiple workers.
type Task interface {
	Generate(item core.WorkItem) []string
}

// Reporter receives one tick per completed work item, success or failure.
type Reporter interface {
	Step(n int)
}

// NopReporter discards progress updates.
type NopReporter struct{}

func (NopReporter) Step(int) {}

// ErrorEvent describes a generation failure for a single work item. The
// run continues past it.
type ErrorEvent struct {
	Item core.WorkItem
	Err  error
}

// chunkPerWorker bounds in-flight items to workers*chunkPerWorker, the
// pipeline's backpressure against unbounded sources.
const chunkPerWorker = 200

// Pipeline coordinates chunked dispatch, completion collection and sink
// buffering. All shared state (counters, the sink) is touched only from
// Run's goroutine; workers are pure functions over work items.
type Pipeline struct {
	Task     Task
	Workers  int
	Reporter Reporter

	// OnError is invoked from Run's goroutine for each failed item.
	OnError func(ErrorEvent)
}

type taskResult struct {
	item      core.WorkItem
	usernames []string
	err       error
}

// Run consumes the source until exhaustion or context cancellation and
// returns the total number of usernames generated. On cancellation it stops
// dispatching, lets in-flight work finish, flushes the sink and returns the
// partial total together with the context error.
func (p *Pipeline) Run(ctx context.Context, source core.Source, sink Sink) (int64, error) {
	workers := p.Workers
	if workers < 1 {
		workers = 1
	}
	reporter := p.Reporter
	if reporter == nil {
		reporter = NopReporter{}
	}

	chunkSize := workers * chunkPerWorker
	jobs := make(chan core.WorkItem)
	// Results are buffered to chunk capacity so workers never block on the
	// controller while it drains a chunk.
	results := make(chan taskResult, chunkSize)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range jobs {
				results <- p.runTask(item)
			}
		}()
	}

	var (
		total   int64
		sinkErr error
	)
	chunk := make([]core.WorkItem, 0, chunkSize)

	for sinkErr == nil && ctx.Err() == nil {
		chunk = chunk[:0]
		for len(chunk) < chunkSize {
			item, ok := source.Next()
			if !ok {
				break
			}
			chunk = append(chunk, item)
		}
		if len(chunk) == 0 {
			break
		}

		submitted := 0
	submit:
		for _, item := range chunk {
			select {
			case <-ctx.Done():
				break submit
			case jobs <- item:
				submitted++
			}
		}

		// Collect exactly what was submitted, in completion order.
		for i := 0; i < submitted; i++ {
			res := <-results
			if res.err != nil {
				if p.OnError != nil {
					p.OnError(ErrorEvent{Item: res.item, Err: res.err})
				}
			} else if sinkErr == nil {
				if err := sink.Accept(res.usernames); err != nil {
					sinkErr = err
				} else {
					total += int64(len(res.usernames))
				}
			}
			reporter.Step(1)
		}
	}

	close(jobs)
	wg.Wait()

	flushErr := sink.Flush()
	switch {
	case sinkErr != nil:
		return total, sinkErr
	case flushErr != nil:
		return total, flushErr
	}
	return total, ctx.Err()
}

// runTask executes one work item, converting panics into per-item errors
// so a malformed item can never abort the run.
func (p *Pipeline) runTask(item core.WorkItem) (res taskResult) {
	res.item = item
	defer func() {
		if r := recover(); r != nil {
			res.usernames = nil
			res.err = fmt.Errorf("generate %s: %v", item, r)
		}
	}()
	res.usernames = p.Task.Generate(item)
	return res
}
