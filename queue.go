package linkq

import (
	"fmt"
	"iter"
	"strings"

	"deedles.dev/linkq/internal/list"
)

// A Queue holds values and returns them in FIFO order. A zero value
// Queue is ready to use.
//
// A Queue keeps its elements in a chain of nodes owned from the head.
// Appends are constant time without walking the chain. Removal only
// happens at the head.
//
// Two events are raised as a Queue drains. [Queue.SingleElementRemains]
// fires when a dequeue leaves exactly one element behind, and
// [Queue.BecameEmpty] fires when a dequeue removes the last element
// or when the Queue is cleared.
//
// A Queue is not safe for concurrent use. A copy of a non-empty Queue
// shares nodes with the original and must not be used.
type Queue[T any] struct {
	_ noCopy

	chain list.Single[T]
	eq    func(a, b T) bool

	single Event
	empty  Event
}

// New returns a new, empty queue.
func New[T any](opts ...Option[T]) *Queue[T] {
	var q Queue[T]
	for _, opt := range opts {
		opt(&q)
	}
	return &q
}

// From returns a new queue containing the values yielded by seq, in
// the order that they were yielded. seq is iterated exactly once.
func From[T any](seq iter.Seq[T], opts ...Option[T]) *Queue[T] {
	q := New(opts...)
	for v := range seq {
		q.Enqueue(v)
	}
	return q
}

// Enqueue adds v to the end of the queue.
func (q *Queue[T]) Enqueue(v T) {
	q.chain.Enqueue(v)
}

// Dequeue removes and returns the value at the front of the queue. It
// returns [ErrEmpty] if there is nothing to remove.
func (q *Queue[T]) Dequeue() (v T, err error) {
	v, ok := q.TryDequeue()
	if !ok {
		return v, ErrEmpty
	}
	return v, nil
}

// TryDequeue is like [Queue.Dequeue] but reports an empty queue by
// returning false instead of an error.
func (q *Queue[T]) TryDequeue() (v T, ok bool) {
	v, state, ok := q.chain.Pop()
	if !ok {
		return v, false
	}

	switch state {
	case list.One:
		q.single.fire()
	case list.Empty:
		q.empty.fire()
	}

	return v, true
}

// Peek returns the value at the front of the queue without removing
// it. It returns [ErrEmpty] if the queue has no values.
func (q *Queue[T]) Peek() (v T, err error) {
	v, ok := q.chain.Peek()
	if !ok {
		return v, ErrEmpty
	}
	return v, nil
}

// TryPeek is like [Queue.Peek] but reports an empty queue by
// returning false instead of an error.
func (q *Queue[T]) TryPeek() (v T, ok bool) {
	return q.chain.Peek()
}

// Clear removes every value from the queue and then fires
// [Queue.BecameEmpty]. The event fires even if the queue was already
// empty.
func (q *Queue[T]) Clear() {
	q.chain.Reset()
	q.empty.fire()
}

// Contains reports whether item is in the queue. Values are compared
// with the function given to [WithEqual], or with [DefaultEqual] if
// there was none.
func (q *Queue[T]) Contains(item T) bool {
	eq := q.eq
	if eq == nil {
		eq = DefaultEqual[T]
	}

	return q.ContainsFunc(func(v T) bool { return eq(v, item) })
}

// ContainsFunc reports whether any value in the queue satisfies
// match. Values are checked from front to back and checking stops at
// the first match.
func (q *Queue[T]) ContainsFunc(match func(T) bool) bool {
	for v := range q.chain.All() {
		if match(v) {
			return true
		}
	}
	return false
}

// Count returns the number of values in the queue.
func (q *Queue[T]) Count() int {
	return q.chain.Len()
}

// Len is the same as [Queue.Count].
func (q *Queue[T]) Len() int {
	return q.chain.Len()
}

// ToArray returns a new slice holding the values in the queue from
// front to back. The slice is never nil.
func (q *Queue[T]) ToArray() []T {
	s := make([]T, 0, q.chain.Len())
	for v := range q.chain.All() {
		s = append(s, v)
	}
	return s
}

// CopyTo copies the values in the queue, front to back, into dst
// starting at index. It returns an error matching [ErrCopyRange] if
// dst is nil, if index is negative or not less than len(dst), or if
// the values would not fit in what remains of dst after index. The
// index check applies even when the queue is empty.
func (q *Queue[T]) CopyTo(dst []T, index int) error {
	if dst == nil {
		return rangeErrorf("nil destination")
	}
	err := q.checkRange(len(dst), index)
	if err != nil {
		return err
	}

	i := index
	for v := range q.chain.All() {
		dst[i] = v
		i++
	}
	return nil
}

func (q *Queue[T]) checkRange(length, index int) error {
	switch {
	case index < 0:
		return rangeErrorf("negative index %d", index)
	case index >= length:
		return rangeErrorf("index %d past destination of length %d", index, length)
	case length-index < q.chain.Len():
		return rangeErrorf("%d values do not fit in %d slots after index %d", q.chain.Len(), length-index, index)
	default:
		return nil
	}
}

// All returns an iterator over the values in the queue from front to
// back. The iterator is a live view, not a snapshot: each iteration
// starts from the current front, and the results of modifying the
// queue during an iteration are undefined.
func (q *Queue[T]) All() iter.Seq[T] {
	return q.chain.All()
}

// SingleElementRemains returns the event that fires when a dequeue
// leaves the queue with exactly one value.
func (q *Queue[T]) SingleElementRemains() *Event {
	return &q.single
}

// BecameEmpty returns the event that fires when a dequeue removes the
// last value or when the queue is cleared.
func (q *Queue[T]) BecameEmpty() *Event {
	return &q.empty
}

// String formats the queue's values front to back, like a slice.
func (q *Queue[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := q.chain.Head(); n != nil; n = n.Next() {
		fmt.Fprint(&sb, n.Val)
		if n.Next() != nil {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
