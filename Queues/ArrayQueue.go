package Queues

// ring is a circular buffer: items live in content[head], content[head+1],
// ... wrapping around, sz of them.
type ring[T any] struct {
	sz, head uint
	content  []T
}

// MakeArrayQueue returns an empty queue with room for initCap items before
// it grows. initCap may be 0.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &ring[T]{content: make([]T, initCap)}
}

func (this ring[T]) Empty() bool {
	return this.sz == 0
}

// resize copies the items to the front of a new buffer of length n>=sz.
func (this *ring[T]) resize(n uint) {
	nc := make([]T, n)
	if end := this.head + this.sz; end <= uint(len(this.content)) {
		copy(nc, this.content[this.head:end])
	} else {
		k := copy(nc, this.content[this.head:])
		copy(nc[k:], this.content[:end-uint(len(this.content))])
	}
	this.content, this.head = nc, 0
}

func (this *ring[T]) Shrink() {
	this.resize(this.sz)
}

func (this *ring[T]) Clear() {
	clear(this.content)
	this.head, this.sz = 0, 0
}

func (this ring[T]) Size() uint {
	return this.sz
}

func (this *ring[T]) Push(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(this.sz + this.sz>>1 + 1)
	}
	this.content[(this.head+this.sz)%uint(len(this.content))] = item
	this.sz++
}

func (this *ring[T]) Pop() (T, error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := this.content[this.head]
	this.content[this.head] = *new(T)
	this.head = (this.head + 1) % uint(len(this.content))
	this.sz--
	return t, nil
}

func (this ring[T]) Peek() T {
	if this.Empty() {
		return *new(T)
	}
	return this.content[this.head]
}
