package cmd

import (
	"fmt"
	"io"
	"slices"

	"deedles.dev/linkq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func runDemo(w io.Writer, log *zap.Logger, values []int) error {
	q := linkq.From(slices.Values(values))
	log.Debug("filled queue", zap.Ints("values", values))

	probe := values[len(values)-1]
	fmt.Fprintf(w, "Contains %v: %v\n", probe, q.Contains(probe))
	fmt.Fprintf(w, "Queue: %v\n", q)

	head, err := q.Peek()
	if err != nil {
		return errors.Wrap(err, "peek")
	}
	fmt.Fprintf(w, "Peek: %v\n", head)

	dequeued, err := q.Dequeue()
	if err != nil {
		return errors.Wrap(err, "dequeue")
	}
	fmt.Fprintf(w, "Dequeue: %v\n", dequeued)
	fmt.Fprintf(w, "Contains %v after dequeue: %v\n", dequeued, q.Contains(dequeued))
	fmt.Fprintf(w, "Count after dequeue: %v\n", q.Count())

	copyStep(w, log, q, "exact", make([]int, q.Count()), 0)

	long := make([]int, q.Count()+3)
	copyStep(w, log, q, "long at 2", long, 2)

	copyStep(w, log, q, "short", make([]int, max(q.Count()-1, 0)), 0)

	copied := linkq.From(slices.Values(long))
	fmt.Fprintf(w, "Queue from long slice: %v\n", copied)

	q.SingleElementRemains().Subscribe(func() {
		log.Info("single element remains", zap.Int("count", q.Count()))
		fmt.Fprintf(w, "Event: single element remains\n")
	})
	q.BecameEmpty().Subscribe(func() {
		log.Info("queue became empty")
		fmt.Fprintf(w, "Event: became empty\n")
	})

	for range q.Count() {
		v, ok := q.TryDequeue()
		fmt.Fprintf(w, "TryDequeue: %v %v\n", v, ok)
		_, ok = q.TryPeek()
		fmt.Fprintf(w, "TryPeek after dequeue: %v\n", ok)
	}

	for _, v := range long {
		q.Enqueue(v)
	}
	fmt.Fprintf(w, "Queue after refill: %v\n", q)
	fmt.Fprintf(w, "ToArray: %v\n", q.ToArray())

	q.Clear()
	fmt.Fprintf(w, "Count after clear: %v\n", q.Count())

	return nil
}

func copyStep(w io.Writer, log *zap.Logger, q *linkq.Queue[int], name string, dst []int, index int) {
	err := q.CopyTo(dst, index)
	if err != nil {
		log.Warn("copy rejected", zap.String("target", name), zap.Int("len", len(dst)), zap.Error(err))
		fmt.Fprintf(w, "CopyTo %v: rejected\n", name)
		return
	}
	fmt.Fprintf(w, "CopyTo %v: %v\n", name, dst)
}
