package list

import "iter"

// State describes how many nodes a [Single] holds, as far as the
// head and tail links can tell.
type State int

const (
	// Empty means both head and tail are nil.
	Empty State = iota
	// One means head is set and tail is nil.
	One
	// Many means head and tail are set to distinct nodes.
	Many
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case One:
		return "one"
	case Many:
		return "many"
	default:
		return "unknown"
	}
}

// Single is a singly-linked list that also contains a reference to
// the last node for quick inserts at the tail.
//
// The tail reference is only populated while the list has two or
// more nodes. With exactly one node, head is that node and tail is
// nil, so appends attach directly to head.
type Single[T any] struct {
	head, tail *SingleNode[T]
	n          int
}

// Enqueue adds v as a new node at the tail of the list.
func (ls *Single[T]) Enqueue(v T) {
	n := &SingleNode[T]{Val: v}
	ls.n++

	switch {
	case ls.head == nil:
		ls.head = n
	case ls.tail == nil:
		ls.head.next = n
		ls.tail = n
	default:
		ls.tail.next = n
		ls.tail = n
	}
}

// Peek returns the value of the head node. It returns false if the
// list is empty.
func (ls *Single[T]) Peek() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}
	return ls.head.Val, true
}

// Pop removes the current head node from the list and returns its
// value along with the state the list is left in. It returns false
// if the list was already empty.
func (ls *Single[T]) Pop() (v T, state State, ok bool) {
	if ls.head == nil {
		return v, Empty, false
	}

	removed := ls.head
	ls.head = removed.next
	removed.next = nil
	ls.n--

	if ls.head != nil && ls.head.next == nil {
		ls.tail = nil
	}

	return removed.Val, ls.State(), true
}

// Reset drops every node in the list at once.
func (ls *Single[T]) Reset() {
	ls.head = nil
	ls.tail = nil
	ls.n = 0
}

// Len returns the number of nodes in the list.
func (ls *Single[T]) Len() int {
	return ls.n
}

// State reports which row of the head/tail table the list is in.
func (ls *Single[T]) State() State {
	switch {
	case ls.head == nil:
		return Empty
	case ls.tail == nil:
		return One
	default:
		return Many
	}
}

// Head returns the first node of the list, or nil if it is empty.
func (ls *Single[T]) Head() *SingleNode[T] {
	return ls.head
}

// All returns an iterator over the elements of the list. The
// iterator follows the live links, so it observes whatever the list
// looks like as it advances.
func (ls *Single[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := ls.head
		for cur != nil {
			if !yield(cur.Val) {
				return
			}
			cur = cur.next
		}
	}
}

// SingleNode is a node of a [Single].
type SingleNode[T any] struct {
	Val  T
	next *SingleNode[T]
}

// Next returns the node following n, or nil if n is the last node.
func (n *SingleNode[T]) Next() *SingleNode[T] {
	return n.next
}
