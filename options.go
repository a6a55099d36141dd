package linkq

import "reflect"

// An Option configures a [Queue] created by [New] or [From].
type Option[T any] func(*Queue[T])

// WithEqual sets the function that [Queue.Contains] uses to compare
// elements. By default, elements are compared with [DefaultEqual].
func WithEqual[T any](eq func(a, b T) bool) Option[T] {
	return func(q *Queue[T]) {
		q.eq = eq
	}
}

// DefaultEqual is the equality used by [Queue.Contains] when no
// other function has been configured.
//
// Absent values, meaning nil interfaces, pointers, slices, maps,
// channels, and funcs, are equal to each other when they have the
// same type and never equal to anything present. Values that are
// comparable at runtime are compared with ==. Anything else, such as
// a slice or a struct holding one, is compared with
// [reflect.DeepEqual].
func DefaultEqual[T any](a, b T) bool {
	va, vb := any(a), any(b)
	if va == nil || vb == nil {
		return va == nil && vb == nil
	}

	ra, rb := reflect.ValueOf(va), reflect.ValueOf(vb)
	if ra.Type() != rb.Type() {
		return false
	}

	if na, nb := isNil(ra), isNil(rb); na || nb {
		return na && nb
	}

	if ra.Comparable() && rb.Comparable() {
		return va == vb
	}
	return reflect.DeepEqual(va, vb)
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
