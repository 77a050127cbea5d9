package seqnum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterIncrements(t *testing.T) {
	c := NewCounter(32)
	assert.EqualValues(t, 0, c.GetAndIncrement())
	assert.EqualValues(t, 1, c.GetAndIncrement())
	assert.EqualValues(t, 2, c.GetAndIncrement())
	assert.Equal(t, 32, c.MaxBitWidth())
}

func TestCounterWrapsAtWidth(t *testing.T) {
	c := NewCounter(8)
	for i := 0; i < 255; i++ {
		c.GetAndIncrement()
	}
	assert.EqualValues(t, 255, c.GetAndIncrement())
	assert.EqualValues(t, 0, c.GetAndIncrement())
}
