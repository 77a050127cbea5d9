package queue

import (
	"testing"

	cfdp "github.com/go-cfdp/gocfdp"
	"github.com/stretchr/testify/assert"
)

func TestPushPopFIFOOrder(t *testing.T) {
	q := New(4)
	eof1 := &cfdp.EofPdu{FileSize: 1}
	eof2 := &cfdp.EofPdu{FileSize: 2}
	assert.True(t, q.Push(cfdp.NewPduHolder(eof1)))
	assert.True(t, q.Push(cfdp.NewPduHolder(eof2)))
	assert.Equal(t, 2, q.Len())

	h1, ok := q.Pop()
	assert.True(t, ok)
	p1, err := h1.AsEOF()
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), p1.FileSize)

	h2, ok := q.Pop()
	assert.True(t, ok)
	p2, _ := h2.AsEOF()
	assert.Equal(t, uint64(2), p2.FileSize)

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestBoundedCapacityRejectsPastFull(t *testing.T) {
	q := New(2)
	assert.True(t, q.Push(cfdp.NewPduHolder(&cfdp.EofPdu{})))
	assert.True(t, q.Push(cfdp.NewPduHolder(&cfdp.EofPdu{})))
	assert.True(t, q.Full())
	assert.False(t, q.Push(cfdp.NewPduHolder(&cfdp.EofPdu{})))
	assert.Equal(t, 2, q.Len())
}

func TestDrainStopsOnFalse(t *testing.T) {
	q := New(4)
	for i := 0; i < 3; i++ {
		q.Push(cfdp.NewPduHolder(&cfdp.EofPdu{FileSize: uint64(i)}))
	}
	seen := 0
	q.Drain(func(h cfdp.PduHolder) bool {
		seen++
		return seen < 2
	})
	assert.Equal(t, 2, seen)
	assert.Equal(t, 1, q.Len())
}

func TestResetClearsQueue(t *testing.T) {
	q := New(2)
	q.Push(cfdp.NewPduHolder(&cfdp.EofPdu{}))
	q.Reset()
	assert.Equal(t, 0, q.Len())
	_, ok := q.Pop()
	assert.False(t, ok)
}
