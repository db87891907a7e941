package sketch

import "math"

// Bin is a single equal-width histogram bucket.
type Bin struct {
	Start float64
	End   float64
	Count int
}

// Histogram holds equal-width bins built from a reservoir sample, min and
// max observed over the full (non-sampled) stream.
type Histogram struct {
	Bins     []Bin
	Min      float64
	Max      float64
	BinWidth float64
}

// BinCount clamps the bin count to ceil(log2(n)+1), bounded to [5, 50].
func BinCount(n uint64) int {
	if n == 0 {
		return 5
	}
	c := int(math.Ceil(math.Log2(float64(n)) + 1))
	if c < 5 {
		return 5
	}
	if c > 50 {
		return 50
	}
	return c
}

// BuildHistogram bins the (unsorted) reservoir sample over [min, max].
// Values outside the range, which can happen when the reservoir does not
// retain the true extremes, are clamped into the last bin.
func BuildHistogram(sample []float64, min, max float64, n uint64) Histogram {
	binCount := BinCount(n)
	width := (max - min) / float64(binCount)
	h := Histogram{Min: min, Max: max, BinWidth: width, Bins: make([]Bin, binCount)}
	for i := range h.Bins {
		h.Bins[i].Start = min + float64(i)*width
		h.Bins[i].End = min + float64(i+1)*width
	}
	if width == 0 {
		// all sampled values are identical; everything falls in bin 0
		h.Bins[0].Count = len(sample)
		return h
	}
	for _, v := range sample {
		idx := int((v - min) / width)
		if idx < 0 {
			idx = 0
		}
		if idx >= binCount {
			idx = binCount - 1
		}
		h.Bins[idx].Count++
	}
	return h
}
