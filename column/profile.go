package column

import (
	"strings"

	"github.com/farmanp/datacert/quality"
	"github.com/farmanp/datacert/sketch"
)

const (
	maxDisplaySamples = 5
	maxPIISamples     = 100
)

// Profile is the mutable per-header accumulator, spec.md §4.3 (C3). All
// counters start zero and optional stats stay nil/absent until the first
// relevant observation, per the "all optional stats absent" requirement of
// New.
type Profile struct {
	name string

	count       uint64
	missing     uint64
	missingRows []int

	integerCount uint64
	numericCount uint64
	booleanCount uint64
	dateCount    uint64
	stringCount  uint64

	minLength int
	maxLength int
	hasLength bool

	displaySamples []string
	displaySeen    map[string]struct{}
	piiSamples     []quality.Sample

	cardinality *sketch.Cardinality
	categorical *sketch.Categorical

	numericMoments   *sketch.Moments
	numericReservoir *sketch.Reservoir
	quick            *sketch.QuickQuantile

	outlierRows []int
}

// New returns an empty profile for the named column.
func New(name string) *Profile {
	return &Profile{
		name:        name,
		cardinality: sketch.NewCardinality(sketch.DefaultCardinalityP),
		categorical: sketch.NewCategorical(),
		displaySeen: make(map[string]struct{}),
	}
}

// Update folds one cell value into the profile. rowIndex is 1-based,
// reflecting source order per spec.md §4.4's ordering guarantee.
func (p *Profile) Update(cell string, rowIndex int) {
	p.count++
	trimmed := strings.TrimSpace(cell)
	if isMissing(trimmed) {
		p.missing++
		p.missingRows = appendCapped(p.missingRows, rowIndex)
		return
	}

	p.cardinality.Insert([]byte(trimmed))
	p.categorical.Push(trimmed)

	length := len(trimmed)
	if !p.hasLength || length < p.minLength {
		p.minLength = length
	}
	if !p.hasLength || length > p.maxLength {
		p.maxLength = length
	}
	p.hasLength = true

	if len(p.displaySamples) < maxDisplaySamples {
		if _, ok := p.displaySeen[trimmed]; !ok {
			p.displaySeen[trimmed] = struct{}{}
			p.displaySamples = append(p.displaySamples, trimmed)
		}
	}
	if len(p.piiSamples) < maxPIISamples {
		p.piiSamples = append(p.piiSamples, quality.Sample{Value: trimmed, Row: rowIndex})
	}

	kind, f, isNumeric := classifyCell(trimmed)
	switch kind {
	case kindInteger:
		p.integerCount++
		p.pushNumeric(f)
	case kindFloat:
		p.numericCount++
		p.pushNumeric(f)
	case kindBoolean:
		p.booleanCount++
	case kindDate:
		p.dateCount++
	default:
		p.stringCount++
	}
	_ = isNumeric
	if (kind == kindInteger || kind == kindFloat) && p.quick != nil && p.quick.IsOutlier(f) {
		p.outlierRows = appendCapped(p.outlierRows, rowIndex)
	}
}

func (p *Profile) pushNumeric(f float64) {
	if p.numericMoments == nil {
		p.numericMoments = sketch.NewMoments()
		p.numericReservoir = sketch.NewReservoir()
		p.quick = sketch.NewQuickQuantile()
	}
	p.numericMoments.Push(f)
	p.numericReservoir.Push(f)
	p.quick.Push(f)
}

// Finalize closes every sketch, resolves the inferred type, and delegates
// completeness/uniqueness/PII scoring to package quality, per spec.md
// §4.3's finalize contract.
func (p *Profile) Finalize() Stats {
	distinct := p.cardinality.Estimate()
	validCount := p.count - p.missing

	inferredType, notes := p.resolveType(validCount)

	stats := Stats{
		Name:             p.name,
		Count:            p.count,
		Missing:          p.missing,
		DistinctEstimate: distinct,
		InferredType:     inferredType,
		MinLength:        p.minLength,
		MaxLength:        p.maxLength,
		HasLength:        p.hasLength,
		SampleValues:     p.displaySamples,
		Notes:            notes,
		Anomalies: AnomalyRows{
			Missing: p.missingRows,
			Outlier: p.outlierRows,
		},
	}

	if p.numericMoments != nil {
		sorted := p.numericReservoir.Sorted()
		qs := sketch.Quantiles(sorted, 0.25, 0.5, 0.75, 0.9, 0.95, 0.99)
		hist := sketch.BuildHistogram(sorted, p.numericMoments.Min(), p.numericMoments.Max(), p.numericReservoir.Seen())
		stats.Numeric = &NumericStats{
			Min:      p.numericMoments.Min(),
			Max:      p.numericMoments.Max(),
			Mean:     p.numericMoments.Mean(),
			Variance: p.numericMoments.Variance(),
			StdDev:   p.numericMoments.StdDev(),
			Skewness: p.numericMoments.Skewness(),
			Kurtosis: p.numericMoments.Kurtosis(),
			Sum:      p.numericMoments.Sum(),
			P25:      qs[0],
			P50:      qs[1],
			P75:      qs[2],
			P90:      qs[3],
			P95:      qs[4],
			P99:      qs[5],
		}
		stats.Histogram = &hist
	}

	if p.categorical.UniqueCount() > 0 {
		top := p.categorical.Top()
		total := p.categorical.Total()
		values := make([]TopValue, len(top))
		for i, v := range top {
			pct := 0.0
			if total > 0 {
				pct = float64(v.Count) / float64(total) * 100
			}
			values[i] = TopValue{Value: v.Value, Count: v.Count, Percentage: pct}
		}
		stats.Categorical = &CategoricalStats{TopValues: values, UniqueCount: p.categorical.UniqueCount()}
	}

	isString := inferredType == TypeString
	completeness, compIssues := quality.Completeness(p.count, p.missing)
	uniqueness, uniqIssues := quality.Uniqueness(distinct, validCount, isString)
	piiIssues, piiRows := quality.DetectPII(p.name, p.piiSamples)
	stats.Anomalies.PII = piiRows

	identifierLike := quality.IsIdentifierLike(isString, uniqueness)
	var allIssues []quality.Issue
	allIssues = append(allIssues, compIssues...)
	allIssues = append(allIssues, uniqIssues...)
	allIssues = append(allIssues, piiIssues...)
	stats.Completeness = completeness
	stats.Uniqueness = uniqueness
	stats.Issues = allIssues
	stats.QualityScore = quality.Score(completeness, uniqueness, identifierLike, allIssues)

	return stats
}

// resolveType applies the majority rule of spec.md §4.3: a single category
// covering every valid cell wins outright; otherwise the column falls back
// to String, annotated when most cells were in fact numeric.
func (p *Profile) resolveType(validCount uint64) (InferredType, []string) {
	if validCount == 0 {
		return TypeNull, nil
	}
	counts := map[InferredType]uint64{
		TypeInteger: p.integerCount,
		TypeNumeric: p.numericCount,
		TypeBoolean: p.booleanCount,
		TypeDate:    p.dateCount,
		TypeString:  p.stringCount,
	}
	for t, c := range counts {
		if c == validCount {
			return t, nil
		}
	}
	numericTotal := p.integerCount + p.numericCount
	if float64(numericTotal)/float64(validCount) > 0.5 {
		return TypeString, []string{"Potentially numeric with exceptions"}
	}
	return TypeString, nil
}

// QuickPreview exposes the mid-stream P2-backed median/quartile estimate
// without requiring a Finalize, for callers that want a progress preview
// while a session is still open (spec.md §3's reserved outlier-preview
// hook for numeric columns).
func (p *Profile) QuickPreview() (median, q1, q3 float64, ok bool) {
	if p.quick == nil || p.quick.N() == 0 {
		return 0, 0, 0, false
	}
	return p.quick.Median(), p.quick.LowerQuartile(), p.quick.UpperQuartile(), true
}
