package ngramkitcontract

import (
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// PullIter describes the end-of-sequence guarantees of a finite single-pass pull iterator.
// The Make function must return a fresh iterator over the same finite source on every call.
func PullIter[T any](mk contract.Make[iterkit.PullIter[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) iterkit.PullIter[T] {
		itr := mk(t)
		t.Defer(itr.Close)
		return itr
	})

	drain := func(t *testcase.T, itr iterkit.PullIter[T]) []T {
		var vs []T
		for itr.Next() {
			vs = append(vs, itr.Value())
		}
		assert.NoError(t, itr.Err())
		return vs
	}

	s.Then("once exhausted, it stays exhausted", func(t *testcase.T) {
		itr := subject.Get(t)
		drain(t, itr)

		for range t.Random.IntBetween(1, 7) {
			assert.False(t, itr.Next())
			assert.NoError(t, itr.Err())
		}
	})

	s.Then("the same source yields the same sequence", func(t *testcase.T) {
		oth := mk(t)
		t.Defer(oth.Close)

		assert.Equal(t, drain(t, subject.Get(t)), drain(t, oth))
	})

	s.Then("close can be called multiple times", func(t *testcase.T) {
		itr := subject.Get(t)
		assert.NoError(t, itr.Close())
		assert.NoError(t, itr.Close())
	})

	s.Then("after close no more values are yielded", func(t *testcase.T) {
		itr := subject.Get(t)
		assert.NoError(t, itr.Close())
		assert.False(t, itr.Next())
	})

	return s.AsSuite("PullIter")
}

// WindowsSubject is the testing subject of the Windows contract.
type WindowsSubject[T any] struct {
	// Iter is a fresh window iterator over a finite source.
	Iter iterkit.PullIter[[]T]
	// Size is the expected length of every window.
	Size int
}

// Windows describes the guarantees of a window iterator on top of PullIter.
func Windows[T any](mk contract.Make[WindowsSubject[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) WindowsSubject[T] {
		sub := mk(t)
		t.Defer(sub.Iter.Close)
		return sub
	})

	s.Then("every window has exactly the declared size", func(t *testcase.T) {
		sub := subject.Get(t)
		for sub.Iter.Next() {
			assert.Equal(t, sub.Size, len(sub.Iter.Value()))
		}
		assert.NoError(t, sub.Iter.Err())
	})

	s.Then("windows do not share their backing array", func(t *testcase.T) {
		sub := subject.Get(t)
		var windows [][]T
		for sub.Iter.Next() {
			windows = append(windows, sub.Iter.Value())
		}
		assert.NoError(t, sub.Iter.Err())
		if len(windows) < 2 {
			t.Skip("at least two windows are needed")
		}

		second := append([]T{}, windows[1]...)
		var zero T
		for i := range windows[0] {
			windows[0][i] = zero
		}
		assert.Equal(t, second, windows[1])
	})

	testcase.RunSuite(s, PullIter[[]T](func(tb testing.TB) iterkit.PullIter[[]T] {
		return mk(tb).Iter
	}))

	return s.AsSuite("Windows")
}
