package sketch

import "sort"

// ReservoirSize is the fixed capacity S of the reservoir sample used for
// quantile and histogram estimation.
const ReservoirSize = 1000

// Reservoir is a fixed-capacity uniform sample of a numeric stream, filled
// with a deterministic linear-congruential replacement rule so that results
// are reproducible given the same ingest order (spec'd as a design choice,
// not an oversight: see the package doc).
type Reservoir struct {
	values []float64
	seen   uint64
}

// NewReservoir returns an empty reservoir of the standard size.
func NewReservoir() *Reservoir {
	return &Reservoir{values: make([]float64, 0, ReservoirSize)}
}

// Push offers x to the reservoir.
func (r *Reservoir) Push(x float64) {
	r.seen++
	if uint64(len(r.values)) < ReservoirSize {
		r.values = append(r.values, x)
		return
	}
	k := r.seen
	j := (k*1103515245 + 12345) % k
	if j < ReservoirSize {
		r.values[j] = x
	}
}

// Len returns the number of values currently retained (<= ReservoirSize).
func (r *Reservoir) Len() int { return len(r.values) }

// Seen returns the total number of values offered to the reservoir.
func (r *Reservoir) Seen() uint64 { return r.seen }

// Sorted returns a sorted copy of the retained sample, used by both
// Quantiles and Histogram at finalize time.
func (r *Reservoir) Sorted() []float64 {
	out := make([]float64, len(r.values))
	copy(out, r.values)
	sort.Float64s(out)
	return out
}

// Quantiles computes the requested quantiles from a pre-sorted sample by
// linear interpolation between the two nearest ranks.
func Quantiles(sorted []float64, ps ...float64) []float64 {
	out := make([]float64, len(ps))
	n := len(sorted)
	if n == 0 {
		return out
	}
	if n == 1 {
		for i := range ps {
			out[i] = sorted[0]
		}
		return out
	}
	for i, p := range ps {
		out[i] = interpolatedQuantile(sorted, p)
	}
	return out
}

func interpolatedQuantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	pos := p * float64(n-1)
	lo := int(pos)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
