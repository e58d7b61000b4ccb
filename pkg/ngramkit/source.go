package ngramkit

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"

	"go.llib.dev/ngrams/pkg/padkit"
)

// Slice turns a slice into a pull iterator.
func Slice[T any](vs []T) iterkit.PullIter[T] {
	return &sliceIter[T]{Slice: vs}
}

type sliceIter[T any] struct {
	Slice []T

	closed bool
	index  int
	value  T
}

func (i *sliceIter[T]) Close() error {
	i.closed = true
	return nil
}

func (i *sliceIter[T]) Err() error {
	return nil
}

func (i *sliceIter[T]) Next() bool {
	if i.closed {
		return false
	}
	if len(i.Slice) <= i.index {
		return false
	}
	i.value = i.Slice[i.index]
	i.index++
	return true
}

func (i *sliceIter[T]) Value() T {
	return i.value
}

// FromSeq turns an iter.Seq into a pull iterator.
// Close must be called when the iterator is abandoned early.
func FromSeq[T any](seq iter.Seq[T]) iterkit.PullIter[T] {
	next, stop := iter.Pull(seq)
	return &pullIter[T]{next: func() (T, error, bool) {
		v, ok := next()
		return v, nil, ok
	}, stop: stop}
}

// FromErrSeq turns a failable iter.Seq2 into a pull iterator.
// The first error stops the iteration and becomes the iterator's Err.
func FromErrSeq[T any](seq iter.Seq2[T, error]) iterkit.PullIter[T] {
	next, stop := iter.Pull2(seq)
	return &pullIter[T]{next: next, stop: stop}
}

type pullIter[T any] struct {
	next func() (T, error, bool)
	stop func()

	value T
	err   error
	done  bool
}

func (i *pullIter[T]) Next() bool {
	if i.done {
		return false
	}
	v, err, ok := i.next()
	if !ok {
		i.done = true
		return false
	}
	if err != nil {
		i.err = err
		i.done = true
		return false
	}
	i.value = v
	return true
}

func (i *pullIter[T]) Value() T {
	return i.value
}

func (i *pullIter[T]) Err() error {
	return i.err
}

func (i *pullIter[T]) Close() error {
	i.done = true
	i.stop()
	return nil
}

// Seq exposes a window iterator as a range-able sequence.
// The iterator is closed when the range loop finishes.
func Seq[T any](itr *Iter[T]) iter.Seq2[[]T, error] {
	return iterkit.FromPullIter[[]T](itr)
}

// Collect drains the window iterator and closes it.
func Collect[T any](itr *Iter[T]) (_ [][]T, rErr error) {
	defer errorkit.Finish(&rErr, itr.Close)
	var windows [][]T
	for itr.Next() {
		windows = append(windows, itr.Value())
	}
	return windows, itr.Err()
}

// Windows is a shorthand for collecting the padded windows of a slice.
func Windows[T any](vs []T, n int, p padkit.Policy, symbol T) ([][]T, error) {
	itr, err := NewPadded(Slice(vs), n, p, symbol)
	if err != nil {
		return nil, err
	}
	return Collect(itr)
}
