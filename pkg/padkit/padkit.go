// Package padkit injects sentinel items before and after a pull iterator's real content.
//
// A padded iterator yields Left copies of its symbol, then every item of the source,
// then Right copies of its symbol.
// It is the building block that lets an n-gram window anchor the first and the last real item
// of a sequence at a full window position.
package padkit

import (
	"sync"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
)

const (
	ErrNegativeCount   errorkit.Error = "pad count must not be negative"
	ErrInvalidSide     errorkit.Error = "invalid padding side"
	ErrInvalidSize     errorkit.Error = "window size must be at least 1"
	ErrNoDefaultSymbol errorkit.Error = "item type has no default pad symbol"
)

// New pads the source with left sentinels in front and right sentinels at the end.
func New[T any](src iterkit.PullIter[T], symbol T, left, right int) (*Iter[T], error) {
	if left < 0 {
		return nil, ErrNegativeCount.F("left count is %d", left)
	}
	if right < 0 {
		return nil, ErrNegativeCount.F("right count is %d", right)
	}
	return &Iter[T]{
		Source: src,
		Symbol: symbol,
		Left:   left,
		Right:  right,

		left: left,
	}, nil
}

// NewForSize pads both sides of the source for a window size of n,
// using the type-level pad symbol and pad length of T.
func NewForSize[T any](src iterkit.PullIter[T], n int) (*Iter[T], error) {
	if n < 1 {
		return nil, ErrInvalidSize.F("got %d", n)
	}
	symbol, ok := DefaultSymbol[T]()
	if !ok {
		return nil, ErrNoDefaultSymbol.F("%T", symbol)
	}
	count := PadLen[T](n)
	return New(src, symbol, count, count)
}

// NewSided applies the same count to the selected sides only.
func NewSided[T any](src iterkit.PullIter[T], symbol T, side Side, count int) (*Iter[T], error) {
	if count == Auto {
		return nil, ErrInvalidSize.F("sided padding has no window size to resolve the automatic count against")
	}
	return NewWithPolicy(src, symbol, Sides(side, count), 0)
}

// NewWithPolicy resolves the policy against the window size n.
// n is only consulted for Auto counts.
func NewWithPolicy[T any](src iterkit.PullIter[T], symbol T, p Policy, n int) (*Iter[T], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if (p.Left == Auto || p.Right == Auto) && n < 1 {
		return nil, ErrInvalidSize.F("automatic pad count requested with window size %d", n)
	}
	left, right := p.Counts(PadLen[T](n))
	return New(src, symbol, left, right)
}

// Iter is a single-pass iterator that wraps its Source with sentinels.
// After the end of the sequence was reached, Next keeps returning false.
type Iter[T any] struct {
	Source iterkit.PullIter[T]
	Symbol T
	Left   int
	Right  int

	left  int
	right int

	sourceDone bool
	done       bool

	value T
	err   error

	closeOnce sync.Once
	closeErr  error
}

func (i *Iter[T]) Next() bool {
	if i.done {
		return false
	}
	if 0 < i.left {
		i.left--
		i.value = cloneSymbol(i.Symbol)
		return true
	}
	if !i.sourceDone {
		if i.Source.Next() {
			i.value = i.Source.Value()
			return true
		}
		if err := i.Source.Err(); err != nil {
			i.err = err
			i.done = true
			return false
		}
		// the right side counter is armed only on the first observed exhaustion
		i.sourceDone = true
		i.right = i.Right
	}
	if 0 < i.right {
		i.right--
		i.value = cloneSymbol(i.Symbol)
		return true
	}
	i.done = true
	var zero T
	i.value = zero
	return false
}

func (i *Iter[T]) Value() T {
	return i.value
}

// Err returns the error of the Source unchanged.
func (i *Iter[T]) Err() error {
	return i.err
}

func (i *Iter[T]) Close() error {
	i.closeOnce.Do(func() {
		i.done = true
		var zero T
		i.value = zero
		i.closeErr = i.Source.Close()
	})
	return i.closeErr
}
