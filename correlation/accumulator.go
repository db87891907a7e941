// Package correlation implements online Pearson correlation over an
// arbitrary number of numeric columns using numerically stable co-moments,
// generalizing the teacher's two-variable CovarStats (bmkessler-streamstats)
// to an N x N matrix as required by spec C6.
package correlation

import "math"

// Accumulator tracks running means, M2 sums, valid-counts per column, and
// the co-moment / pair-count matrices across all ordered pairs, per
// spec.md §3's "Correlation state".
type Accumulator struct {
	names []string
	n     int

	mean  []float64
	m2    []float64
	count []uint64

	// comoment and pairCount are both n x n, row-major; only entries with
	// i != j are meaningful, the diagonal is implicitly 1.0 at Finalize.
	comoment  []float64
	pairCount []uint64
}

// NewAccumulator creates an accumulator over the given numeric column
// names, in the order correlations should be reported.
func NewAccumulator(names []string) *Accumulator {
	n := len(names)
	return &Accumulator{
		names:     append([]string(nil), names...),
		n:         n,
		mean:      make([]float64, n),
		m2:        make([]float64, n),
		count:     make([]uint64, n),
		comoment:  make([]float64, n*n),
		pairCount: make([]uint64, n*n),
	}
}

// N returns the number of tracked numeric columns.
func (a *Accumulator) N() int { return a.n }

// Names returns the tracked column names in report order.
func (a *Accumulator) Names() []string { return a.names }

func (a *Accumulator) idx(i, j int) int { return i*a.n + j }

// UpdateRow folds one row's values into the accumulator. values[i] is valid
// iff valid[i] is true (missing/non-numeric cells are not valid); values
// must be parallel to the names passed to NewAccumulator.
func (a *Accumulator) UpdateRow(values []float64, valid []bool) {
	// δ_x_old for every valid column must be captured before any column's
	// own mean is updated this row, per the corrected update rule.
	deltaOld := make([]float64, a.n)
	for i := 0; i < a.n; i++ {
		if valid[i] {
			deltaOld[i] = values[i] - a.mean[i]
		}
	}
	for i := 0; i < a.n; i++ {
		if !valid[i] {
			continue
		}
		a.count[i]++
		fn := float64(a.count[i])
		a.mean[i] += deltaOld[i] / fn
		a.m2[i] += deltaOld[i] * (values[i] - a.mean[i])
	}
	for i := 0; i < a.n; i++ {
		if !valid[i] {
			continue
		}
		for j := 0; j < a.n; j++ {
			if i == j || !valid[j] {
				continue
			}
			idx := a.idx(i, j)
			a.pairCount[idx]++
			// y's deviation uses j's mean AFTER this row's own update.
			a.comoment[idx] += deltaOld[i] * (values[j] - a.mean[j])
		}
	}
}

// Matrix is the finalized N x N Pearson correlation matrix, row-major, in
// the same column order as Names().
type Matrix struct {
	Names []string
	R     [][]float64
}

// Finalize computes the correlation matrix. Diagonal entries are 1.0;
// off-diagonal r_ij is C_ij / sqrt(M2_i * M2_j) when there are at least two
// paired observations and both variances are positive, clamped to [-1, 1],
// else 0.
func (a *Accumulator) Finalize() Matrix {
	r := make([][]float64, a.n)
	for i := range r {
		r[i] = make([]float64, a.n)
	}
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			if i == j {
				r[i][j] = 1.0
				continue
			}
			idx := a.idx(i, j)
			denom := a.m2[i] * a.m2[j]
			if a.pairCount[idx] > 1 && denom > 0 {
				v := a.comoment[idx] / math.Sqrt(denom)
				if v > 1.0 {
					v = 1.0
				} else if v < -1.0 {
					v = -1.0
				}
				r[i][j] = v
			} else {
				r[i][j] = 0.0
			}
		}
	}
	return Matrix{Names: a.names, R: r}
}
