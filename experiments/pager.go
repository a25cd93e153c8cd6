package experiments

import "context"

// pageFunc fetches the page identified by token. A nil returned token means
// the final page was fetched.
type pageFunc[T any] func(ctx context.Context, token *string) (items []T, next *string, err error)

// Pager lazily iterates a paginated listing, fetching one page at a time as
// it is consumed. It is forward-only: to resume a listing later, capture
// [Pager.NextToken] and pass it back as the NextToken of a fresh call.
//
// Usage follows the bufio.Scanner pattern:
//
//	pager := experiments.ListTrialComponents(experiments.ListTrialComponentsOptions{})
//	for pager.Next(ctx) {
//		handle(pager.Item())
//	}
//	if err := pager.Err(); err != nil {
//		return err
//	}
type Pager[T any] struct {
	fetch pageFunc[T]
	buf   []T
	idx   int
	token *string
	done  bool
	item  T
	err   error
}

func newPager[T any](fetch pageFunc[T], startToken *string) *Pager[T] {
	return &Pager[T]{fetch: fetch, token: startToken}
}

// Next advances the pager to the next item, fetching the next page from the
// service when the buffered one is exhausted. It returns false when the
// listing is exhausted or an error occurred; check Err afterwards.
func (p *Pager[T]) Next(ctx context.Context) bool {
	if p.err != nil {
		return false
	}

	for p.idx >= len(p.buf) {
		if p.done {
			return false
		}

		items, next, err := p.fetch(ctx, p.token)
		if err != nil {
			p.err = err
			return false
		}

		p.buf, p.idx = items, 0
		p.token = next
		// Absence of a continuation token signals the end of results.
		if next == nil {
			p.done = true
		}
	}

	p.item = p.buf[p.idx]
	p.idx++

	return true
}

// Item returns the item the pager advanced to on the last successful call to
// Next.
func (p *Pager[T]) Item() T {
	return p.item
}

// Err returns the first error encountered while fetching pages, if any.
func (p *Pager[T]) Err() error {
	return p.err
}

// NextToken returns the continuation token of the most recently fetched
// page, or nil once the final page was seen. It can be passed as the
// NextToken of a fresh listing to resume from this point.
func (p *Pager[T]) NextToken() *string {
	return p.token
}

// Collect drains the pager and returns all remaining items. It defeats the
// lazy per-page fetching and should only be used when the full result set is
// known to be small.
func (p *Pager[T]) Collect(ctx context.Context) ([]T, error) {
	var items []T
	for p.Next(ctx) {
		items = append(items, p.Item())
	}

	return items, p.Err()
}
