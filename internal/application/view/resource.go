// Package view binds a fetch operation to the loading/data state every page
// renders from.
//
// A Resource starts in the loading state with zero-valued data. Load runs the
// fetch once: on success the payload is stored, on failure the error is
// logged and the data stays empty. Either way the loading flag flips, so a
// page always renders, possibly with nothing to show.
package view

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Fetcher produces the data a page renders.
type Fetcher[T any] func(ctx context.Context) (T, error)

// State is a point-in-time copy of a Resource.
type State[T any] struct {
	Loading bool
	Data    T
}

// Resource is a fetch bound to its loading flag and data.
type Resource[T any] struct {
	name  string
	fetch Fetcher[T]

	once sync.Once

	mu      sync.Mutex
	loading bool
	data    T
}

// NewResource creates a Resource in the loading state.
// PRE: fetch is non-nil; name identifies the page in logs
// POST: State().Loading is true and State().Data is the zero value
func NewResource[T any](name string, fetch Fetcher[T]) *Resource[T] {
	return &Resource[T]{
		name:    name,
		fetch:   fetch,
		loading: true,
	}
}

// Load runs the fetch if it has not run yet. Concurrent callers block until
// the one fetch finished.
// PRE: ctx is valid
// POST: State().Loading is false; Data holds the payload, or the zero value after a failure
func (r *Resource[T]) Load(ctx context.Context) {
	r.once.Do(func() {
		data, err := r.fetch(ctx)

		r.mu.Lock()
		defer r.mu.Unlock()
		if err != nil {
			slog.Error("resource_fetch_failed", "resource", r.name, "error", err.Error())
		} else {
			r.data = data
		}
		r.loading = false
	})
}

// State returns the current loading flag and data.
func (r *Resource[T]) State() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return State[T]{Loading: r.loading, Data: r.data}
}

// Pair holds the results of two fetches issued together.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Both issues fa and fb concurrently and waits for both.
// If either fails the pair is discarded and the first error is returned, so
// a page never renders one half of its data.
func Both[A, B any](fa Fetcher[A], fb Fetcher[B]) Fetcher[Pair[A, B]] {
	return func(ctx context.Context) (Pair[A, B], error) {
		var (
			g errgroup.Group
			a A
			b B
		)
		g.Go(func() error {
			var err error
			a, err = fa(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			b, err = fb(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return Pair[A, B]{}, err
		}
		return Pair[A, B]{First: a, Second: b}, nil
	}
}
