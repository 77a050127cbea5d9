// Package queue provides a bounded FIFO of cfdp.PduHolder values, used by
// the Source handler's closure-wait receive queue and the Destination
// handler's file-directive/file-data queues (spec.md §3 "Ownership", §9
// "Receive queue").
//
// It is adapted from teacher's internal/fifo package: the same
// fixed-capacity ring-buffer-over-a-slice technique (read/write positions
// wrapping modulo capacity, with an element count telling "full" apart from
// "empty" when the two positions meet), generalized from byte elements to PduHolder elements
// since CFDP handlers queue whole PDUs rather than raw bytes.
package queue

import cfdp "github.com/go-cfdp/gocfdp"

// Queue is a fixed-capacity circular FIFO of cfdp.PduHolder. It is not safe
// for concurrent use; callers needing that must add their own locking, the
// same division of responsibility teacher's Fifo leaves to its callers.
type Queue struct {
	buffer   []cfdp.PduHolder
	readPos  int
	writePos int
	count    int
}

// New returns a Queue that holds up to capacity elements.
func New(capacity int) *Queue {
	if capacity <= 0 {
		capacity = 1
	}
	return &Queue{buffer: make([]cfdp.PduHolder, capacity)}
}

// Reset empties the queue without changing its capacity.
func (q *Queue) Reset() {
	q.readPos = 0
	q.writePos = 0
	q.count = 0
}

// Len returns the number of elements currently queued.
func (q *Queue) Len() int {
	return q.count
}

// Full reports whether the queue is at capacity.
func (q *Queue) Full() bool {
	return q.count == len(q.buffer)
}

// Push appends a holder to the tail of the queue. It reports false, leaving
// the queue unchanged, if the queue is already full — a misbehaving host
// that never drains the queue cannot grow it without bound.
func (q *Queue) Push(h cfdp.PduHolder) bool {
	if q.Full() {
		return false
	}
	q.buffer[q.writePos] = h
	q.writePos = (q.writePos + 1) % len(q.buffer)
	q.count++
	return true
}

// Pop removes and returns the holder at the head of the queue. ok is false
// if the queue is empty.
func (q *Queue) Pop() (h cfdp.PduHolder, ok bool) {
	if q.count == 0 {
		return cfdp.PduHolder{}, false
	}
	h = q.buffer[q.readPos]
	q.readPos = (q.readPos + 1) % len(q.buffer)
	q.count--
	return h, true
}

// Drain removes every queued element in FIFO order, calling fn on each.
// Draining stops, leaving the remainder queued, if fn returns false.
func (q *Queue) Drain(fn func(cfdp.PduHolder) bool) {
	for {
		h, ok := q.Pop()
		if !ok {
			return
		}
		if !fn(h) {
			return
		}
	}
}
