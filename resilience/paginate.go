/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

package resilience

import "context"

// Page is one page of a paged backend operation. A nil Next means the
// backend reported natural end-of-data.
type Page[T, C any] struct {
	Items []T
	Next  *C
}

// PageFunc executes one page fetch starting at cursor (nil = from the
// beginning).
type PageFunc[T, C any] func(ctx context.Context, cursor *C) (Page[T, C], error)

// Result is an accumulation of pages. LastCursor is the continuation
// cursor of the final executed page when the backend returned one, so a
// caller can resume pagination externally; it is nil when accumulation
// stopped at natural end.
type Result[T, C any] struct {
	Items      []T
	LastCursor *C
}

// Accumulate folds fn's pages into a single ordered result. Each page
// fetch runs through Do with the current cursor, so a transient failure
// retries that page and accumulation resumes from the same position.
// Items append in arrival order; an absent items slice is a valid empty
// page. A ceiling > 0 caps the result: accumulation stops as soon as
// the cap is met, truncating mid-page if needed, and surfaces the
// page's continuation cursor. On a permanent error or an exhausted
// retry budget the error alone is returned; items from prior pages are
// discarded.
func Accumulate[T, C any](ctx context.Context, cfg Config, op string, start *C, ceiling int, fn PageFunc[T, C], retryable func(error) bool) (Result[T, C], error) {
	var res Result[T, C]
	cursor := start

	for {
		page, err := Do(ctx, cfg, op, func(ctx context.Context) (Page[T, C], error) {
			return fn(ctx, cursor)
		}, retryable)
		if err != nil {
			return Result[T, C]{}, err
		}

		res.Items = append(res.Items, page.Items...)
		res.LastCursor = page.Next

		if ceiling > 0 && len(res.Items) >= ceiling {
			res.Items = res.Items[:ceiling]
			return res, nil
		}
		if page.Next == nil {
			return res, nil
		}
		cursor = page.Next
	}
}
