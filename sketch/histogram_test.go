package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinCountClamp(t *testing.T) {
	assert.Equal(t, 5, BinCount(0))
	assert.Equal(t, 5, BinCount(1))
	assert.Equal(t, 50, BinCount(1<<60))
}

func TestBuildHistogramCoversRange(t *testing.T) {
	sample := make([]float64, 0, 10)
	for i := 1; i <= 10; i++ {
		sample = append(sample, float64(i))
	}
	h := BuildHistogram(sample, 1, 10, 10)
	assert.Len(t, h.Bins, BinCount(10))
	total := 0
	for _, b := range h.Bins {
		total += b.Count
	}
	assert.Equal(t, len(sample), total)
	assert.Equal(t, 1.0, h.Min)
	assert.Equal(t, 10.0, h.Max)
}

func TestBuildHistogramConstantValue(t *testing.T) {
	sample := []float64{4, 4, 4, 4}
	h := BuildHistogram(sample, 4, 4, 4)
	assert.Equal(t, 4, h.Bins[0].Count)
}
