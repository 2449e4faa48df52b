package Queues

// Queue is a first in first out container.
type Queue[T any] interface {
	Push(item T)
	// Pop removes the oldest item. It fails with *EmptyQueueError when the
	// queue is empty.
	Pop() (T, error)
	// Peek returns the oldest item without removing it, the zero value if
	// the queue is empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a growable ring buffer.
type ArrayQueue[T any] interface {
	Queue[T]
	// Shrink the buffer to the number of items held.
	Shrink()
	// Clear removes all items, keeping the buffer.
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
