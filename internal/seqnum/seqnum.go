// Package seqnum provides the monotonic transfer sequence number source
// (spec.md C7) the Source handler draws each transaction's sequence number
// from, once per transaction at TRANSACTION_START.
package seqnum

import "sync"

// Provider is the interface the Source handler's sequence number field is
// driven through. Grounded on the original source's ProvidesSeqCount
// (tmtccmd.util), widened to the 64-bit range spec.md §4.3 specifies.
type Provider interface {
	// GetAndIncrement returns the next sequence number and advances the
	// counter. Overflow wraps modulo 2^MaxBitWidth.
	GetAndIncrement() uint64
	// MaxBitWidth declares the bit width the returned values are narrowed
	// to; it must be one of {8, 16, 32, 64}.
	MaxBitWidth() int
}

// Counter is a mutex-guarded monotonic counter, the default Provider
// implementation. Grounded on teacher's sync.Mutex-guarded internal
// counters (pkg/nmt/nmt.go).
type Counter struct {
	mu    sync.Mutex
	next  uint64
	width int
	mask  uint64
}

// NewCounter returns a Counter starting at 0, narrowed to width bits.
// width must be one of {8, 16, 32, 64}; any other value is accepted here
// (the Source handler is responsible for rejecting it via
// ErrInvalidSeqNumWidth, per spec.md §4.3) but MaxBitWidth will report it
// verbatim so the caller can detect the mismatch.
func NewCounter(width int) *Counter {
	c := &Counter{width: width}
	switch width {
	case 8, 16, 32:
		c.mask = (uint64(1) << width) - 1
	case 64:
		c.mask = ^uint64(0)
	default:
		c.mask = ^uint64(0)
	}
	return c
}

func (c *Counter) GetAndIncrement() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := c.next & c.mask
	c.next = (c.next + 1) & c.mask
	return v
}

func (c *Counter) MaxBitWidth() int {
	return c.width
}
