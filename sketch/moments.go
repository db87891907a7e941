package sketch

import "math"

// Moments computes first-through-fourth central moments of a stream of
// finite float64 values in a single pass using Welford/Pébay's online
// formulas. NaN and +/-Inf inputs are ignored by the caller before Push is
// reached (see column.Profile.Update); Moments itself assumes finite input.
type Moments struct {
	n  uint64
	m1 float64
	m2 float64
	m3 float64
	m4 float64
	min float64
	max float64
	sum float64
}

// NewMoments returns an empty Moments accumulator.
func NewMoments() *Moments {
	return &Moments{min: math.Inf(1), max: math.Inf(-1)}
}

// Push folds x into the running moments.
func (m *Moments) Push(x float64) {
	m.n++
	fN := float64(m.n)
	delta := x - m.m1
	deltaN := delta / fN
	deltaN2 := deltaN * deltaN
	term1 := delta * deltaN * (fN - 1)
	m.m1 += deltaN
	m.m4 += term1*deltaN2*(fN*fN-3*fN+3) + 6*deltaN2*m.m2 - 4*deltaN*m.m3
	m.m3 += term1*deltaN*(fN-2) - 3*deltaN*m.m2
	m.m2 += term1
	m.sum += x
	if x < m.min {
		m.min = x
	}
	if x > m.max {
		m.max = x
	}
}

// N returns the number of observations seen so far.
func (m *Moments) N() uint64 { return m.n }

// Sum returns the running sum of observations.
func (m *Moments) Sum() float64 { return m.sum }

// Min returns the minimum observed value, or +Inf if nothing was pushed.
func (m *Moments) Min() float64 { return m.min }

// Max returns the maximum observed value, or -Inf if nothing was pushed.
func (m *Moments) Max() float64 { return m.max }

// Mean returns the running arithmetic mean.
func (m *Moments) Mean() float64 { return m.m1 }

// Variance returns the sample variance, 0 for n <= 1 per spec.
func (m *Moments) Variance() float64 {
	if m.n > 1 {
		return m.m2 / (float64(m.n) - 1.0)
	}
	return 0.0
}

// StdDev returns the sample standard deviation.
func (m *Moments) StdDev() float64 {
	return math.Sqrt(m.Variance())
}

// Skewness returns the sample skewness, 0 when m2 is 0.
func (m *Moments) Skewness() float64 {
	if m.m2 > 0.0 {
		return math.Sqrt(float64(m.n)) * m.m3 / math.Pow(m.m2, 1.5)
	}
	return 0.0
}

// Kurtosis returns the excess sample kurtosis, 0 when m2 is 0.
func (m *Moments) Kurtosis() float64 {
	if m.m2 > 0.0 {
		return float64(m.n)*m.m4/(m.m2*m.m2) - 3.0
	}
	return 0.0
}
