// Package ngramkit emits fixed-size overlapping windows ("n-grams") over a pull iterator.
//
// # Summary
//
// A window iterator pulls items one at a time from its source and yields every contiguous
// run of N items in source order, using a rolling buffer of N-1 items instead of
// materializing the source.
// Nothing is pulled from the source until the first Next call.
//
// Windows are not padded by default.
// Boundary padding is opt-in with NewPadded, which stacks a padkit.Iter under the window iterator:
//
//	src := ngramkit.Slice([]string{"one", "two", "three"})
//	itr, err := ngramkit.NewPadded(src, 2, padkit.Both(), padkit.WordJoiner)
//
// # Resources
//
// https://en.wikipedia.org/wiki/N-gram
package ngramkit

import (
	"sync"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"

	"go.llib.dev/ngrams/pkg/padkit"
)

const ErrInvalidSize errorkit.Error = "n-gram size must be at least 1"

// New creates a window iterator of size n over src without any padding.
func New[T any](src iterkit.PullIter[T], n int) (*Iter[T], error) {
	if n < 1 {
		return nil, ErrInvalidSize.F("got %d", n)
	}
	return &Iter[T]{
		source: src,
		n:      n,
		memory: newRing[T](n - 1),
	}, nil
}

// NewPadded creates a window iterator of size n over src padded according to the policy,
// with symbol as the sentinel item.
func NewPadded[T any](src iterkit.PullIter[T], n int, p padkit.Policy, symbol T) (*Iter[T], error) {
	if n < 1 {
		return nil, ErrInvalidSize.F("got %d", n)
	}
	padded, err := padkit.NewWithPolicy(src, symbol, p, n)
	if err != nil {
		return nil, err
	}
	return New[T](padded, n)
}

// NewPaddedDefault is like NewPadded, but it uses the type-level pad symbol of T.
// It fails with padkit.ErrNoDefaultSymbol when T has none.
func NewPaddedDefault[T any](src iterkit.PullIter[T], n int, p padkit.Policy) (*Iter[T], error) {
	symbol, ok := padkit.DefaultSymbol[T]()
	if !ok {
		return nil, padkit.ErrNoDefaultSymbol.F("%T", symbol)
	}
	return NewPadded(src, n, p, symbol)
}

type state int

const (
	filling state = iota
	emitting
	exhausted
)

// Iter is a single-pass window iterator.
// Each Value is a freshly allocated slice of exactly N items.
type Iter[T any] struct {
	source iterkit.PullIter[T]
	n      int
	memory ring[T]

	state       state
	underfilled bool
	window      []T
	err         error

	closeOnce sync.Once
	closeErr  error
}

func (i *Iter[T]) Next() bool {
	switch i.state {
	case exhausted:
		return false
	case filling:
		for !i.memory.full() {
			if !i.source.Next() {
				i.underfilled = i.source.Err() == nil
				i.exhaust()
				return false
			}
			i.memory.push(i.source.Value())
		}
		i.state = emitting
	}
	if !i.source.Next() {
		i.exhaust()
		return false
	}
	tail := i.source.Value()
	window := make([]T, 0, i.n)
	window = i.memory.appendTo(window)
	window = append(window, tail)
	i.memory.push(tail)
	i.window = window
	return true
}

func (i *Iter[T]) exhaust() {
	i.state = exhausted
	i.window = nil
	i.err = i.source.Err()
}

// Value returns the current window.
func (i *Iter[T]) Value() []T {
	return i.window
}

// Err returns the source's error unchanged.
func (i *Iter[T]) Err() error {
	return i.err
}

func (i *Iter[T]) Close() error {
	i.closeOnce.Do(func() {
		i.state = exhausted
		i.window = nil
		i.closeErr = i.source.Close()
	})
	return i.closeErr
}

// Size is the N of the window iterator.
func (i *Iter[T]) Size() int {
	return i.n
}

// Underfilled reports whether the source ended before the rolling buffer
// could hold N-1 items, which means no window was produced at all.
func (i *Iter[T]) Underfilled() bool {
	return i.underfilled
}
