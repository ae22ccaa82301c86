package atoship

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

// pageServer fakes a paginated list endpoint in memory.
func pageServer(total int) PageFunc {
	return func(_ context.Context, page, limit int) (*APIResponse, error) {
		start := (page - 1) * limit
		end := start + limit
		if end > total {
			end = total
		}
		items := make([]json.RawMessage, 0, limit)
		for i := start; i < end; i++ {
			items = append(items, json.RawMessage(fmt.Sprintf(`{"id":"ord_%d"}`, i)))
		}
		data, _ := json.Marshal(PaginatedData{
			Items:   items,
			Total:   total,
			Page:    page,
			Limit:   limit,
			HasMore: end < total,
		})
		return &APIResponse{Success: true, Data: data}, nil
	}
}

func TestPaginateWalksAllPages(t *testing.T) {
	client, _ := newTestClient(t, "https://api.atoship.com")

	var pagesFetched int
	fetch := pageServer(120)
	counting := func(ctx context.Context, page, limit int) (*APIResponse, error) {
		pagesFetched++
		return fetch(ctx, page, limit)
	}

	it := client.Paginate(context.Background(), 50, counting)
	var ids []string
	for it.Next() {
		var item struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(it.Item(), &item); err != nil {
			t.Fatalf("Failed to decode item: %v", err)
		}
		ids = append(ids, item.ID)
	}
	if err := it.Err(); err != nil {
		t.Fatalf("Iterator failed: %v", err)
	}

	if len(ids) != 120 {
		t.Fatalf("Expected 120 items, got %d", len(ids))
	}
	if pagesFetched != 3 {
		t.Errorf("Expected 3 page fetches (50+50+20), got %d", pagesFetched)
	}
	for i, id := range ids {
		if want := fmt.Sprintf("ord_%d", i); id != want {
			t.Fatalf("Item %d out of order: expected %s, got %s", i, want, id)
		}
	}
}

func TestPaginateLazyFetch(t *testing.T) {
	client, _ := newTestClient(t, "https://api.atoship.com")

	var pagesFetched int
	fetch := pageServer(100)
	counting := func(ctx context.Context, page, limit int) (*APIResponse, error) {
		pagesFetched++
		return fetch(ctx, page, limit)
	}

	it := client.Paginate(context.Background(), 50, counting)
	if pagesFetched != 0 {
		t.Errorf("Expected no fetch before first Next, got %d", pagesFetched)
	}

	for i := 0; i < 50 && it.Next(); i++ {
	}
	if pagesFetched != 1 {
		t.Errorf("Expected one fetch while consuming the first page, got %d", pagesFetched)
	}
}

func TestPaginateRestartable(t *testing.T) {
	client, _ := newTestClient(t, "https://api.atoship.com")
	fetch := pageServer(30)

	count := func() int {
		n := 0
		it := client.Paginate(context.Background(), 10, fetch)
		for it.Next() {
			n++
		}
		return n
	}

	if first := count(); first != 30 {
		t.Errorf("Expected 30 items on first pass, got %d", first)
	}
	if second := count(); second != 30 {
		t.Errorf("Expected a fresh iterator to restart from page one, got %d items", second)
	}
}

func TestPaginateEmpty(t *testing.T) {
	client, _ := newTestClient(t, "https://api.atoship.com")

	it := client.Paginate(context.Background(), 50, pageServer(0))
	if it.Next() {
		t.Error("Expected Next to be false for an empty sequence")
	}
	if err := it.Err(); err != nil {
		t.Errorf("Expected no error for empty sequence, got %v", err)
	}
}

func TestPaginateStopsOnFetchError(t *testing.T) {
	client, _ := newTestClient(t, "https://api.atoship.com")

	boom := errors.New("boom")
	fetch := func(_ context.Context, page, limit int) (*APIResponse, error) {
		if page >= 2 {
			return nil, boom
		}
		return pageServer(40)(context.Background(), page, limit)
	}

	it := client.Paginate(context.Background(), 20, fetch)
	var yielded int
	for it.Next() {
		yielded++
	}
	if yielded != 20 {
		t.Errorf("Expected the first page's 20 items before the failure, got %d", yielded)
	}
	if !errors.Is(it.Err(), boom) {
		t.Errorf("Expected fetch error surfaced by Err, got %v", it.Err())
	}
	if it.Next() {
		t.Error("Expected Next to stay false after a failure")
	}
}

func TestPaginateStopsOnFailureEnvelope(t *testing.T) {
	client, _ := newTestClient(t, "https://api.atoship.com")

	fetch := func(_ context.Context, page, limit int) (*APIResponse, error) {
		return &APIResponse{Success: false, Error: "rate limit exceeded"}, nil
	}

	it := client.Paginate(context.Background(), 20, fetch)
	if it.Next() {
		t.Error("Expected no items from a failure envelope")
	}
	if it.Err() == nil {
		t.Error("Expected failure envelope converted to an error")
	}
}

func TestPaginateTerminatesOnEmptyPageWithHasMore(t *testing.T) {
	client, _ := newTestClient(t, "https://api.atoship.com")

	// A misbehaving server that always claims more pages but returns none.
	fetch := func(_ context.Context, page, limit int) (*APIResponse, error) {
		data, _ := json.Marshal(PaginatedData{Items: nil, HasMore: true, Page: page, Limit: limit})
		return &APIResponse{Success: true, Data: data}, nil
	}

	it := client.Paginate(context.Background(), 20, fetch)
	if it.Next() {
		t.Error("Expected empty page to terminate iteration")
	}
	if err := it.Err(); err != nil {
		t.Errorf("Expected clean termination, got %v", err)
	}
}

func TestPaginateDefaultLimit(t *testing.T) {
	client, _ := newTestClient(t, "https://api.atoship.com")

	var gotLimit int
	fetch := func(_ context.Context, page, limit int) (*APIResponse, error) {
		gotLimit = limit
		return pageServer(0)(context.Background(), page, limit)
	}

	it := client.Paginate(context.Background(), 0, fetch)
	it.Next()
	if gotLimit != 50 {
		t.Errorf("Expected default limit 50, got %d", gotLimit)
	}
}
