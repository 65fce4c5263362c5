package gridclient

import (
	"context"
	"fmt"
	"time"
)

// GetPages fetches pages 1 through pages sequentially and returns the
// one-level-flattened concatenation of their results: a page decoding to
// a JSON array contributes its elements, anything else contributes
// itself. Fetches are strictly ordered, with the configured page delay
// between calls — a throttle toward the remote service, not backoff.
func (b *RequestBuilder) GetPages(ctx context.Context, pages int) ([]any, error) {
	if pages < 1 {
		pages = 1
	}

	var results []any

	for page := 1; page <= pages; page++ {
		b.Page(page)

		result, err := b.Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}

		results = appendFlattened(results, result)

		if b.logger != nil {
			b.logger.Debug("fetched page", map[string]interface{}{
				"page":  page,
				"of":    pages,
				"items": len(results),
			})
		}

		if page < pages {
			err = b.pace(ctx)
			if err != nil {
				return nil, err
			}
		}
	}

	return results, nil
}

// PageIterator walks result pages one fetch per call, pacing between
// fetches like GetPages. It stops once a page comes back shorter than
// the limit or the total-items header says the window is exhausted.
type PageIterator struct {
	builder *RequestBuilder
	page    int
	fetched bool
	done    bool
}

// Pages returns an iterator over the builder's result pages.
func (b *RequestBuilder) Pages() *PageIterator {
	return &PageIterator{builder: b}
}

// HasNext reports whether another page may remain. It is optimistic
// before the first fetch.
func (it *PageIterator) HasNext() bool {
	return !it.done
}

// NextPage fetches the next page and returns its flattened items.
func (it *PageIterator) NextPage(ctx context.Context) ([]any, error) {
	if it.done {
		return nil, nil
	}

	if it.fetched {
		err := it.builder.pace(ctx)
		if err != nil {
			return nil, err
		}
	}

	it.page++
	it.builder.Page(it.page)

	result, err := it.builder.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching page %d: %w", it.page, err)
	}

	it.fetched = true

	items := appendFlattened(nil, result)
	if len(items) < it.builder.limit {
		it.done = true
	}

	total, ok := it.builder.TotalItems()
	if ok && total > 0 && it.builder.offset+len(items) >= total {
		it.done = true
	}

	return items, nil
}

func appendFlattened(results []any, page any) []any {
	if items, ok := page.([]any); ok {
		return append(results, items...)
	}

	return append(results, page)
}

// pace waits out the inter-page delay, honoring ctx cancellation.
func (b *RequestBuilder) pace(ctx context.Context) error {
	if b.pageDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(b.pageDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("waiting between pages: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}
