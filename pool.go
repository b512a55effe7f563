package cssprune

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ExecutionOptions configures parallel batch execution. The zero value runs
// one worker per CPU and reports no progress. The same value is composed
// into every component that runs batches, so a scan uses one consistent
// thread count end to end.
type ExecutionOptions struct {
	ThreadCount int              // <= 0 means runtime.NumCPU()
	Progress    ProgressObserver // nil means no progress reporting
}

func (o ExecutionOptions) workers() int {
	if o.ThreadCount > 0 {
		return o.ThreadCount
	}
	return runtime.NumCPU()
}

func (o ExecutionOptions) observer() ProgressObserver {
	if o.Progress != nil {
		return o.Progress
	}
	return NopProgress{}
}

// Pool runs order-independent batches over a bounded number of workers.
// Every batch starts, runs to completion, and returns; there are no
// long-lived background tasks and no cancellation mid-batch.
type Pool struct {
	opts ExecutionOptions
}

// NewPool creates a pool with the given execution options.
func NewPool(opts ExecutionOptions) *Pool {
	return &Pool{opts: opts}
}

// Process applies worker to every item and returns one result per item, in
// item order. If any application fails, the whole batch fails once all
// in-flight work has drained and the first failure is surfaced.
//
// The progress observer is notified roughly every total/20 items and always
// on the final item.
func Process[T, R any](p *Pool, phase string, items []T, worker func(T) (R, error)) ([]R, error) {
	total := len(items)
	obs := p.opts.observer()
	obs.PhaseStarted(phase, total)

	results := make([]R, total)
	step := progressStep(total)
	var done atomic.Int64

	var g errgroup.Group
	g.SetLimit(p.opts.workers())
	for i := range items {
		i := i
		g.Go(func() error {
			r, err := worker(items[i])
			if err != nil {
				return err
			}
			results[i] = r
			if n := int(done.Add(1)); n%step == 0 || n == total {
				obs.ItemsProcessed(phase, n, total)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", phase, err)
	}
	obs.PhaseFinished(phase)
	return results, nil
}

// FlatMap applies worker to every item and concatenates the per-item result
// slices, preserving item order. Failure semantics match Process.
func FlatMap[T, R any](p *Pool, phase string, items []T, worker func(T) ([]R, error)) ([]R, error) {
	perItem, err := Process(p, phase, items, worker)
	if err != nil {
		return nil, err
	}
	var out []R
	for _, rs := range perItem {
		out = append(out, rs...)
	}
	return out, nil
}

func progressStep(total int) int {
	if step := total / 20; step > 0 {
		return step
	}
	return 1
}
