package sketch

// QuickQuantile is an O(1) time and space running median/quartile/outlier
// estimate based on the P2 algorithm, adapted from the teacher's
// P2Quantile/BoxPlot pair into a single median-tracking structure. It is
// not used for the report's finalized quantiles (those come from the
// reservoir sample per spec, for reproducibility) but backs two things the
// finalized reservoir path cannot: a mid-stream preview available before
// finalize, and the outlier-whisker rule used to classify anomaly rows
// during Update (spec.md's "outlier, reserved for downstream outlier
// rules").
//
// "The P2 algorithm for dynamic calculation of quantiles and histograms
// without storing observations." Raj Jain and Imrich Chlamtac,
// Communications of the ACM, Volume 28 Issue 10, October 1985.
type QuickQuantile struct {
	n   [5]uint64
	np  [5]float64
	dnp [5]float64
	q   [5]float64
}

// NewQuickQuantile initializes a tracker for the median (p=0.5), whose
// upper/lower markers land on the first and third quartiles.
func NewQuickQuantile() *QuickQuantile {
	const p = 0.5
	return &QuickQuantile{
		n:   [5]uint64{1, 2, 3, 4, 0},
		np:  [5]float64{1, 1 + 2*p, 1 + 4*p, 3 + 2*p, 5},
		dnp: [5]float64{0, p / 2, p, (1 + p) / 2, 1},
	}
}

// Push updates the tracker with a new value.
func (p *QuickQuantile) Push(x float64) {
	if p.n[4] < 5 {
		i := p.n[4]
		p.q[i] = x
		for i > 0 && p.q[i-1] > p.q[i] {
			p.q[i-1], p.q[i] = p.q[i], p.q[i-1]
			i--
		}
		p.n[4]++
		return
	}
	var k uint64
	switch {
	case x < p.q[0]:
		p.q[0] = x
		k = 0
	case x < p.q[1]:
		k = 0
	case x < p.q[2]:
		k = 1
	case x < p.q[3]:
		k = 2
	case x < p.q[4]:
		k = 3
	default:
		p.q[4] = x
		k = 3
	}
	for i := k + 1; i < 5; i++ {
		p.n[i]++
	}
	for i := 0; i < 5; i++ {
		p.np[i] += p.dnp[i]
	}
	for i := 1; i < 4; i++ {
		d := p.np[i] - float64(p.n[i])
		if (d >= 1.0 && p.n[i]+1 < p.n[i+1]) || (d <= -1.0 && p.n[i-1]+1 < p.n[i]) {
			if d >= 1.0 {
				d = 1.0
			} else {
				d = -1.0
			}
			fNm := float64(p.n[i-1])
			fN := float64(p.n[i])
			fNp := float64(p.n[i+1])
			qp := p.q[i] + d*((fN-fNm+d)*(p.q[i+1]-p.q[i])/(fNp-fN)+(fNp-fN-d)*(p.q[i]-p.q[i-1])/(fN-fNm))/(fNp-fNm)
			if p.q[i-1] < qp && qp < p.q[i+1] {
				p.q[i] = qp
			} else {
				ip := i + int(d)
				p.q[i] += d * (p.q[ip] - p.q[i]) / (float64(p.n[ip]) - fN)
			}
			if d > 0 {
				p.n[i]++
			} else {
				p.n[i]--
			}
		}
	}
}

// N returns the number of observations seen so far.
func (p *QuickQuantile) N() uint64 { return p.n[4] }

// Median returns the running median estimate.
func (p *QuickQuantile) Median() float64 {
	if p.n[4] < 5 && p.n[4] > 0 {
		if p.n[4]%2 == 0 {
			return (p.q[p.n[4]/2-1] + p.q[p.n[4]/2]) / 2
		}
		return p.q[p.n[4]/2]
	}
	return p.q[2]
}

// Min returns the exact minimum observed so far.
func (p *QuickQuantile) Min() float64 { return p.q[0] }

// Max returns the exact maximum observed so far.
func (p *QuickQuantile) Max() float64 {
	if p.n[4] < 5 && p.n[4] > 0 {
		return p.q[p.n[4]-1]
	}
	return p.q[4]
}

// UpperQuartile returns the running Q3 estimate.
func (p *QuickQuantile) UpperQuartile() float64 {
	if p.n[4] < 5 && p.n[4] > 0 {
		return (p.Median() + p.Max()) / 2
	}
	return p.q[3]
}

// LowerQuartile returns the running Q1 estimate.
func (p *QuickQuantile) LowerQuartile() float64 {
	if p.n[4] < 5 && p.n[4] > 0 {
		return (p.Min() + p.Median()) / 2
	}
	return p.q[1]
}

// InterQuartileRange returns Q3 - Q1.
func (p *QuickQuantile) InterQuartileRange() float64 {
	return p.UpperQuartile() - p.LowerQuartile()
}

// UpperWhisker returns Q3 + 1.5*IQR, the classic Tukey outlier boundary.
func (p *QuickQuantile) UpperWhisker() float64 {
	return p.UpperQuartile() + 1.5*p.InterQuartileRange()
}

// LowerWhisker returns Q1 - 1.5*IQR.
func (p *QuickQuantile) LowerWhisker() float64 {
	return p.LowerQuartile() - 1.5*p.InterQuartileRange()
}

// IsOutlier reports whether x falls outside the Tukey whiskers. Needs at
// least 5 observations to be meaningful; returns false before that.
func (p *QuickQuantile) IsOutlier(x float64) bool {
	if p.n[4] < 5 {
		return false
	}
	return x < p.LowerWhisker() || x > p.UpperWhisker()
}
