package ngramkit

// ring is the rolling buffer of a window iterator.
// It keeps the most recent len(items) values, oldest first.
type ring[T any] struct {
	items []T
	head  int
	size  int
}

func newRing[T any](capacity int) ring[T] {
	return ring[T]{items: make([]T, capacity)}
}

func (r *ring[T]) full() bool {
	return r.size == len(r.items)
}

// push appends v, and when the ring is already full, it drops the oldest value.
func (r *ring[T]) push(v T) {
	if len(r.items) == 0 {
		return
	}
	if r.full() {
		r.items[r.head] = v
		r.head = (r.head + 1) % len(r.items)
		return
	}
	r.items[(r.head+r.size)%len(r.items)] = v
	r.size++
}

// appendTo copies the buffered values to dst from the oldest to the newest.
func (r *ring[T]) appendTo(dst []T) []T {
	for i := 0; i < r.size; i++ {
		dst = append(dst, r.items[(r.head+i)%len(r.items)])
	}
	return dst
}
