package atoship

import (
	"context"
	"sync"
)

// BatchFunc runs one item's operation and returns its envelope.
type BatchFunc[T any] func(ctx context.Context, item T) (*APIResponse, error)

// RunBatch runs op over items with at most maxConcurrent operations in
// flight, gated by a counting semaphore. Results come back in input order
// regardless of completion order, and one item's failure never cancels its
// siblings: a failed item simply carries a failure envelope.
//
// When ctx is canceled, no further items are admitted; operations already
// in flight run to completion (or their own timeout) and items never
// started report a cancellation envelope.
func RunBatch[T any](ctx context.Context, items []T, op BatchFunc[T], maxConcurrent int) []*APIResponse {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	results := make([]*APIResponse, len(items))
	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup

admit:
	for i, item := range items {
		// Checked before blocking so a free slot cannot race a cancellation.
		if ctx.Err() != nil {
			break
		}
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			break admit
		}

		wg.Add(1)
		go func(i int, item T) {
			defer wg.Done()
			defer func() { <-sem }()

			resp, err := op(ctx, item)
			if err != nil {
				resp = &APIResponse{Success: false, Error: err.Error()}
			}
			results[i] = resp
		}(i, item)
	}
	wg.Wait()

	for i, resp := range results {
		if resp == nil {
			results[i] = &APIResponse{Success: false, Error: "batch canceled before item started"}
		}
	}
	return results
}
