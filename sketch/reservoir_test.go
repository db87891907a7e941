package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservoirFillsUnderCapacity(t *testing.T) {
	r := NewReservoir()
	for i := 0; i < 500; i++ {
		r.Push(float64(i))
	}
	assert.Equal(t, 500, r.Len())
	assert.Equal(t, uint64(500), r.Seen())
}

func TestReservoirCapsAtSize(t *testing.T) {
	r := NewReservoir()
	for i := 0; i < 5000; i++ {
		r.Push(float64(i))
	}
	assert.Equal(t, ReservoirSize, r.Len())
	assert.Equal(t, uint64(5000), r.Seen())
}

func TestReservoirDeterministicReplacement(t *testing.T) {
	a, b := NewReservoir(), NewReservoir()
	for i := 0; i < 3000; i++ {
		a.Push(float64(i))
		b.Push(float64(i))
	}
	assert.Equal(t, a.Sorted(), b.Sorted())
}

func TestQuantilesMedianOfOneToTen(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	qs := Quantiles(sorted, 0.5)
	assert.InDelta(t, 5.5, qs[0], 1e-9)
}

func TestQuantilesSingleValue(t *testing.T) {
	qs := Quantiles([]float64{7}, 0.25, 0.5, 0.99)
	for _, q := range qs {
		assert.Equal(t, 7.0, q)
	}
}
