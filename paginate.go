package atoship

import (
	"context"
	"encoding/json"
	"fmt"
)

// PageFunc fetches one page of a list endpoint.
type PageFunc func(ctx context.Context, page, limit int) (*APIResponse, error)

// PageIterator walks a paginated endpoint lazily: each page is fetched when
// the previous one is exhausted, and iteration stops when the server reports
// no more pages. The iterator is single-pass; construct a fresh one to
// restart from page one.
//
//	it := client.Paginate(ctx, 50, func(ctx context.Context, page, limit int) (*atoship.APIResponse, error) {
//	    return client.ListOrders(ctx, atoship.ListOrdersParams{Page: page, Limit: limit})
//	})
//	for it.Next() {
//	    item := it.Item()
//	    ...
//	}
//	if err := it.Err(); err != nil {
//	    ...
//	}
type PageIterator struct {
	ctx   context.Context
	fetch PageFunc
	limit int

	page  int
	items []json.RawMessage
	index int
	done  bool
	err   error
}

// Paginate creates an iterator over a list endpoint starting at page one.
func (c *Client) Paginate(ctx context.Context, limit int, fetch PageFunc) *PageIterator {
	if limit <= 0 {
		limit = 50
	}
	return &PageIterator{
		ctx:   ctx,
		fetch: fetch,
		limit: limit,
		page:  1,
	}
}

// Next advances to the next item, fetching the next page when needed. It
// returns false when the sequence is exhausted or a page fetch failed; the
// failure is reported by Err.
func (it *PageIterator) Next() bool {
	if it.err != nil {
		return false
	}
	if it.index < len(it.items) {
		it.index++
		return true
	}
	if it.done {
		return false
	}

	resp, err := it.fetch(it.ctx, it.page, it.limit)
	if err != nil {
		it.err = err
		return false
	}
	if !resp.Success {
		it.err = fmt.Errorf("atoship: page %d fetch failed: %s", it.page, resp.Error)
		return false
	}
	page, err := DecodePaginated(resp)
	if err != nil {
		it.err = err
		return false
	}

	it.items = page.Items
	it.index = 0
	it.page++
	// An empty page also terminates, so a server that keeps reporting more
	// pages cannot spin the iterator forever.
	it.done = !page.HasMore || len(page.Items) == 0

	if len(it.items) == 0 {
		return false
	}
	it.index++
	return true
}

// Item returns the current raw item. Valid only after a true Next.
func (it *PageIterator) Item() json.RawMessage {
	if it.index == 0 || it.index > len(it.items) {
		return nil
	}
	return it.items[it.index-1]
}

// Err returns the failure that terminated the sequence, if any. Partial
// results already yielded remain valid.
func (it *PageIterator) Err() error {
	return it.err
}
