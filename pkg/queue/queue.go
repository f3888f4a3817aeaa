// Package queue implements a simple generic FIFO queue.
package queue

type Queue[T any] struct {
	xs []T
}

func New[T any](n int) Queue[T] {
	return Queue[T]{make([]T, 0, n)}
}

func (q *Queue[T]) Push(x T) {
	q.xs = append(q.xs, x)
}

// Peek returns the element at the front of the queue without removing it, or
// nil if the queue is empty.
func (q *Queue[T]) Peek() *T {
	if len(q.xs) == 0 {
		return nil
	}
	return &q.xs[0]
}

// Pop removes and returns the element at the front of the queue, or nil if
// the queue is empty.
func (q *Queue[T]) Pop() *T {
	if len(q.xs) == 0 {
		return nil
	}
	x := q.xs[0]
	q.xs = q.xs[1:]
	return &x
}

func (q *Queue[T]) Len() int {
	return len(q.xs)
}
