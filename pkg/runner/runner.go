package runner

import (
	"context"
	"fmt"
	"sync"

	"github.com/yaklabco/checkfiles/pkg/check"
)

// Run scans the candidate files under opts, optionally fixing violating
// files, and returns the aggregate result.
//
// Files are processed sequentially in enumeration order unless opts.Jobs
// asks for fan-out, in which case a bounded worker pool scans files
// concurrently and outcomes are folded back in enumeration order, so the
// summary is updated from a single goroutine either way. A file that
// cannot be read is recorded in the summary and never aborts the run.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.TabSize <= 0 {
		return nil, fmt.Errorf("invalid tab size %d: must be positive", opts.TabSize)
	}

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files:   make([]FileOutcome, 0, len(files)),
		TabSize: opts.TabSize,
	}

	if len(files) == 0 {
		return result, nil
	}

	if opts.Jobs < 2 || len(files) == 1 {
		for _, path := range files {
			select {
			case <-ctx.Done():
				return result, fmt.Errorf("run cancelled: %w", ctx.Err())
			default:
			}
			result.accumulate(processFile(ctx, path, opts))
		}
		return result, nil
	}

	jobs := opts.Jobs
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; re-fold in enumeration order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// processFile takes one candidate through scan and optional fixup.
func processFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	result, err := check.Scan(ctx, path)
	outcome.Result = result
	if err != nil {
		outcome.Err = err
		return outcome
	}

	if opts.Fix && result.Fixable() {
		fix := check.Fix(ctx, path, result, opts.TabSize)
		outcome.Fix = &fix
	}

	return outcome
}

// worker drains workCh, sending one outcome per file to outCh.
func worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, opts Options) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := processFile(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
