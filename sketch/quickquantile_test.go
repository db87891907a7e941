package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuickQuantileMedianOnUniform(t *testing.T) {
	q := NewQuickQuantile()
	for i := 1; i <= 10000; i++ {
		q.Push(float64(i))
	}
	assert.InDelta(t, 5000, q.Median(), 500)
}

func TestQuickQuantileOutlierDetection(t *testing.T) {
	q := NewQuickQuantile()
	for i := 0; i < 200; i++ {
		q.Push(10.0)
	}
	assert.True(t, q.IsOutlier(10000.0))
	assert.False(t, q.IsOutlier(10.0))
}

func TestQuickQuantileNotOutlierBeforeWarmup(t *testing.T) {
	q := NewQuickQuantile()
	q.Push(1.0)
	assert.False(t, q.IsOutlier(99999.0))
}
