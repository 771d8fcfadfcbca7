package zsr

import (
	"context"
	"iter"

	"golang.org/x/sync/errgroup"
)

type pagerState int

const (
	stateAwaiting pagerState = iota
	stateDraining
	stateExhausted
)

// pager is the page advancement state machine behind both Iter and Stream.
//
//	awaiting(n) --empty page or error---------------> exhausted
//	awaiting(n) --items--> draining --buffer empty--> awaiting(n+1) or exhausted (short page)
type pager[T any] struct {
	endpoint Pageable
	client   RestClient
	exec     executor
	perPage  int

	state   pagerState
	next    int
	buffer  []T
	last    bool
	fetches int
}

func newPager[T any](ep Pageable, c RestClient, exec executor, opts []TraversalOption) *pager[T] {
	cfg := newTraversalConfig(opts)

	return &pager[T]{
		endpoint: ep,
		client:   c,
		exec:     exec,
		perPage:  cfg.perPage,
		state:    stateAwaiting,
		next:     cfg.startPage,
	}
}

// advance returns the next item. ok is false once the traversal is over.
// An error is returned at most once; the pager is exhausted afterwards.
func (p *pager[T]) advance(ctx context.Context) (T, bool, error) {
	var zero T

	for {
		switch p.state {
		case stateExhausted:
			return zero, false, nil

		case stateDraining:
			if len(p.buffer) > 0 {
				item := p.buffer[0]
				p.buffer[0] = zero
				p.buffer = p.buffer[1:]

				return item, true, nil
			}

			p.buffer = nil

			if p.last {
				p.state = stateExhausted
			} else {
				p.state = stateAwaiting
			}

		case stateAwaiting:
			number := p.next
			page := NewPage(p.endpoint).Page(number).PerPage(p.perPage).Build()

			p.fetches++

			coll, err := fetchPage[T](ctx, page, p.client, p.exec)
			if err != nil {
				p.state = stateExhausted

				return zero, false, &PageError{Page: number, Err: err}
			}

			if len(coll.Inner) == 0 {
				p.state = stateExhausted

				return zero, false, nil
			}

			p.buffer = coll.Inner
			p.last = coll.Pagination.IsLast()
			p.next = number + 1
			p.state = stateDraining
		}
	}
}

// PagedIter is a blocking pull iterator over every item of a paginated
// collection. Pages are fetched on demand, one at a time.
type PagedIter[T any] struct {
	ctx   context.Context //nolint:containedctx
	pager *pager[T]

	peeked  bool
	item    T
	itemOK  bool
	itemErr error
}

// Iter starts a blocking traversal of ep.
func Iter[T any](ctx context.Context, ep Pageable, c Client, opts ...TraversalOption) *PagedIter[T] {
	return &PagedIter[T]{
		ctx:   ctx,
		pager: newPager[T](ep, c, blocking(c), opts),
	}
}

// HasNext reports whether Next will return an item or an error. It may
// fetch the next page.
func (it *PagedIter[T]) HasNext() bool {
	if !it.peeked {
		it.item, it.itemOK, it.itemErr = it.pager.advance(it.ctx)
		it.peeked = true
	}

	return it.itemOK || it.itemErr != nil
}

// Next returns the next item, a *PageError, or ErrNoMoreItems.
func (it *PagedIter[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		return zero, ErrNoMoreItems
	}

	item, err := it.item, it.itemErr
	it.peeked = false
	it.item = zero
	it.itemOK = false
	it.itemErr = nil

	if err != nil {
		return zero, err
	}

	return item, nil
}

// All drains the iterator. Items read before a failure are returned along
// with the error.
func (it *PagedIter[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return items, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach calls fn for every item until fn or the traversal fails.
func (it *PagedIter[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// Seq adapts the iterator to a range-over-func sequence.
func (it *PagedIter[T]) Seq() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for it.HasNext() {
			item, err := it.Next()
			if !yield(item, err) || err != nil {
				return
			}
		}
	}
}

// Pages returns how many page requests have been issued.
func (it *PagedIter[T]) Pages() int {
	return it.pager.fetches
}

// Stream returns a lazy sequence of every item of ep fetched through an
// async client. Each range over the sequence starts a new traversal.
// Breaking out of the loop stops further page requests.
func Stream[T any](ctx context.Context, ep Pageable, c AsyncClient, opts ...TraversalOption) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		p := newPager[T](ep, c, awaiting(c), opts)

		for {
			item, ok, err := p.advance(ctx)
			if err != nil {
				yield(item, err)

				return
			}

			if !ok {
				return
			}

			if !yield(item, nil) {
				return
			}
		}
	}
}

// ForEachConcurrent runs fn on the items of seq with at most limit calls in
// flight. Items are pulled from seq only when a slot is free, so pages are
// still fetched one at a time. The first error from seq or fn is returned.
func ForEachConcurrent[T any](
	ctx context.Context,
	seq iter.Seq2[T, error],
	limit int,
	fn func(context.Context, T) error,
) error {
	group, groupCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}

	var seqErr error

	for item, err := range seq {
		if err != nil {
			seqErr = err

			break
		}

		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			return fn(groupCtx, item)
		})
	}

	waitErr := group.Wait()

	if seqErr != nil {
		return seqErr
	}

	if waitErr != nil {
		return waitErr //nolint:wrapcheck
	}

	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	return nil
}
