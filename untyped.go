package linkq

import (
	"iter"
	"reflect"

	"github.com/pkg/errors"
)

// Collection is the part of a [Queue] that does not depend on its
// element type. It lets code that handles queues of many types work
// with them in one way.
type Collection interface {
	// Len returns the number of elements in the collection.
	Len() int

	// Synchronized reports whether the collection does its own
	// locking.
	Synchronized() bool

	// SyncRoot returns a value that callers can use to identify the
	// collection when choosing an external lock.
	SyncRoot() any

	// CopyToAny copies the elements of the collection into dst,
	// starting at index.
	CopyToAny(dst any, index int) error

	// Values returns an iterator over the elements of the collection.
	Values() iter.Seq[any]
}

var _ Collection = (*Queue[int])(nil)

// Array is a copy destination that describes its own shape. It can be
// passed to [Queue.CopyToAny] for destinations that are not plain Go
// slices or arrays.
type Array interface {
	// Rank returns the number of dimensions of the array.
	Rank() int

	// LowerBound returns the first valid index of dimension dim.
	LowerBound(dim int) int

	// Len returns the total number of elements in the array.
	Len() int

	// Set stores v at offset i from the start of the array.
	Set(i int, v any) error
}

// Synchronized always returns false. A Queue does no locking of its
// own.
func (q *Queue[T]) Synchronized() bool {
	return false
}

// SyncRoot returns q itself. It holds no lock; it is only an identity
// for callers that keep their own locks per queue.
func (q *Queue[T]) SyncRoot() any {
	return q
}

// Values is like [Queue.All] but yields each value as an any.
func (q *Queue[T]) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for v := range q.chain.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// CopyToAny copies the values in the queue, front to back, into dst
// starting at index. dst may be a slice, a pointer to an array, or an
// [Array].
//
// A nil dst, a bad index, or too little room produce an error
// matching [ErrCopyRange], as with [Queue.CopyTo]. A dst that is not
// one-dimensional, does not start at index zero, cannot be written
// to, or cannot hold values of type T produces an error matching
// [ErrCopyShape] instead. Shape is checked before range. A nil
// pointer counts as a nil dst, even if its type implements [Array].
//
// Copies into an [Array] are not atomic. If Set fails partway
// through, the values before the failing index have already been
// written. The returned error matches both [ErrCopyShape] and the
// error returned by Set.
func (q *Queue[T]) CopyToAny(dst any, index int) error {
	if dst == nil {
		return rangeErrorf("nil destination")
	}

	rv := reflect.ValueOf(dst)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return rangeErrorf("nil destination")
	}

	if a, ok := dst.(Array); ok {
		return q.copyToArray(a, index)
	}

	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return rangeErrorf("nil destination")
		}
	case reflect.Pointer:
		if rv.Type().Elem().Kind() != reflect.Array {
			return shapeErrorf("unsupported destination type %v", rv.Type())
		}
		rv = rv.Elem()
	case reflect.Array:
		return shapeErrorf("array of type %v is not writable, pass a pointer to it", rv.Type())
	default:
		return shapeErrorf("unsupported destination type %v", rv.Type())
	}

	et := rv.Type().Elem()
	vt := reflect.TypeFor[T]()
	if !vt.AssignableTo(et) {
		switch et.Kind() {
		case reflect.Slice, reflect.Array:
			return shapeErrorf("destination %v has more than one dimension", rv.Type())
		default:
			return shapeErrorf("cannot store %v in destination of %v", vt, et)
		}
	}

	err := q.checkRange(rv.Len(), index)
	if err != nil {
		return err
	}

	i := index
	for v := range q.chain.All() {
		rv.Index(i).Set(reflect.ValueOf(&v).Elem())
		i++
	}
	return nil
}

func (q *Queue[T]) copyToArray(a Array, index int) error {
	if rank := a.Rank(); rank != 1 {
		return shapeErrorf("destination has rank %d", rank)
	}
	if lb := a.LowerBound(0); lb != 0 {
		return shapeErrorf("destination has lower bound %d", lb)
	}

	err := q.checkRange(a.Len(), index)
	if err != nil {
		return err
	}

	i := index
	for v := range q.chain.All() {
		err := a.Set(i, v)
		if err != nil {
			return errors.WithStack(&setError{index: i, err: err})
		}
		i++
	}
	return nil
}
