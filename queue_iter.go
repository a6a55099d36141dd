package linkq

import "deedles.dev/linkq/internal/list"

// A Cursor steps through the values of a [Queue] one at a time by
// following the links between its nodes. Like [Queue.All], it is a
// live view and its results are undefined if the queue is modified
// while it is in use.
type Cursor[T any] struct {
	q       *Queue[T]
	cur     *list.SingleNode[T]
	started bool
}

// Cursor returns a new cursor positioned before the front of q.
func (q *Queue[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{q: q}
}

// Next advances the cursor to the next value and reports whether
// there was one. The first call moves to whatever is at the front of
// the queue at that moment.
func (c *Cursor[T]) Next() bool {
	switch {
	case !c.started:
		c.started = true
		c.cur = c.q.chain.Head()
	case c.cur != nil:
		c.cur = c.cur.Next()
	}
	return c.cur != nil
}

// Value returns the value that the cursor is positioned at. It
// returns the zero value before the first call to Next and after Next
// has returned false.
func (c *Cursor[T]) Value() (v T) {
	if c.cur == nil {
		return v
	}
	return c.cur.Val
}
