package google

import (
	"context"
	"iter"
)

// pageFunc fetches a single page of items T and returns the token of the next page.
type pageFunc[T any] func(context.Context, ListParams) ([]T, string, error)

// iterate returns an iterator that walks through all pages using the provided fetcher.
func iterate[T any](ctx context.Context, params ListParams, fetch pageFunc[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		seen := map[string]bool{}

		for {
			items, next, err := fetch(ctx, params)
			if err != nil {
				yield(*new(T), err)
				return
			}

			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}

			// Stop on the last page, and on a server handing out the same token twice.
			if next == "" || seen[next] {
				return
			}
			seen[next] = true
			params.Token = next
		}
	}
}
