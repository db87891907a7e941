package sketch

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardinalityDistinctInts(t *testing.T) {
	c := NewCardinality(DefaultCardinalityP)
	n := uint64(200000)
	for i := uint64(0); i < n; i++ {
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, i)
		c.Insert(b)
	}
	est := c.Estimate()
	relErr := math.Abs(float64(est)-float64(n)) / float64(n)
	if relErr > 0.05 {
		t.Errorf("expected estimate within 5%% of %d, got %d (rel err %.4f)", n, est, relErr)
	}
}

func TestCardinalityDeterministicGivenSameOrder(t *testing.T) {
	data := make([][]byte, 1000)
	for i := range data {
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, uint64(i))
		data[i] = b
	}
	a, b := NewCardinality(DefaultCardinalityP), NewCardinality(DefaultCardinalityP)
	for _, v := range data {
		a.Insert(v)
		b.Insert(v)
	}
	assert.Equal(t, a.Estimate(), b.Estimate())
}

func TestCardinalityPrecisionClamped(t *testing.T) {
	c := NewCardinality(0)
	assert.Equal(t, byte(minCardinalityP), c.p)
	c = NewCardinality(200)
	assert.Equal(t, byte(maxCardinalityP), c.p)
}
