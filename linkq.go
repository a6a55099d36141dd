// Package linkq provides a FIFO queue built on a singly linked chain
// of nodes, with notifications for when the queue drains.
//
// None of the types in this package are safe for concurrent use.
// Callers that share a queue between goroutines must hold a lock of
// their own around every call.
package linkq

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
