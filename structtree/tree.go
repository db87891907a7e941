// Package structtree implements the structure analyzer of spec C8: a
// second, lightweight pass over a hierarchical source that records one
// PathInfo per distinct dotted path and assembles them into a parent/child
// TreeNode forest, recommending tree vs tabular reporting. Grounded on the
// same dotted-path convention as package parser's JSON flattener
// (original_source/src/wasm/src/parser/json.rs walks the same shape for
// its own structure summary).
package structtree

import (
	"sort"
	"strings"
)

// DefaultSampleCeiling bounds how many records the analyzer walks before
// stopping, per spec.md §4.8.
const DefaultSampleCeiling = 1000

// maxExampleValues caps the example values retained per path.
const maxExampleValues = 3

// PathInfo accumulates per-path facts while walking sampled records.
type PathInfo struct {
	Path     string
	Count    int
	Depth    int
	Types    map[string]struct{}
	Examples []string
}

// Analyzer walks a sample ceiling of records, grouping facts by dotted
// path, and ignores per-record parse failures (the caller simply never
// calls ObserveRecord for a record it could not parse).
type Analyzer struct {
	ceiling  int
	observed int
	paths    map[string]*PathInfo
	order    []string
}

// NewAnalyzer returns an analyzer with the spec default sample ceiling.
func NewAnalyzer() *Analyzer {
	return &Analyzer{ceiling: DefaultSampleCeiling, paths: make(map[string]*PathInfo)}
}

// Done reports whether the sample ceiling has been reached.
func (a *Analyzer) Done() bool { return a.observed >= a.ceiling }

// ObserveRecord folds one record's flattened path -> (type, value) pairs
// into the analyzer. depthOf(path) is the number of dotted segments.
func (a *Analyzer) ObserveRecord(fields map[string]PathValue) {
	if a.Done() {
		return
	}
	a.observed++
	for path, pv := range fields {
		info, ok := a.paths[path]
		if !ok {
			info = &PathInfo{Path: path, Depth: depthOf(path), Types: make(map[string]struct{})}
			a.paths[path] = info
			a.order = append(a.order, path)
		}
		info.Count++
		info.Types[pv.Type] = struct{}{}
		if len(info.Examples) < maxExampleValues {
			info.Examples = append(info.Examples, pv.Value)
		}
	}
}

// PathValue is one field's runtime type tag and stringified value, as
// supplied by the caller's record walker.
type PathValue struct {
	Type  string
	Value string
}

func depthOf(path string) int {
	if path == "" {
		return 0
	}
	return strings.Count(path, ".") + 1
}

// TreeNode is one node of the assembled path tree.
type TreeNode struct {
	Path       string
	Name       string
	Population float64
	DataType   string
	Children   []*TreeNode
}

// Analysis is the finalized result of walking a sampled source.
type Analysis struct {
	Root            []*TreeNode
	RowsSampled     int
	MaxDepth        int
	TotalPaths      int
	RecommendedMode string
}

// Analyze finalizes the walked paths into a tree, grouping children under
// their parent path (parent = path trimmed after its final '.'), and
// recommends tree vs tabular mode per spec.md §4.8. A parent path that was
// never observed as a field of its own (the usual case for flattened
// records, which carry only leaf paths) gets an "object" node whose
// population is the highest among its descendants; such nodes are not
// counted in TotalPaths.
func (a *Analyzer) Analyze() Analysis {
	nodes := make(map[string]*TreeNode, len(a.paths))
	maxDepth := 0
	for _, path := range a.order {
		info := a.paths[path]
		if info.Depth > maxDepth {
			maxDepth = info.Depth
		}
		pop := 0.0
		if a.observed > 0 {
			pop = float64(info.Count) / float64(a.observed) * 100
		}
		nodes[path] = &TreeNode{
			Path:       path,
			Name:       lastSegment(path),
			Population: pop,
			DataType:   dataTypeOf(info.Types),
		}
	}

	var roots []*TreeNode
	synthetic := make(map[string]bool)
	var attach func(path string, node *TreeNode)
	attach = func(path string, node *TreeNode) {
		parent := parentOf(path)
		if parent == "" {
			roots = append(roots, node)
			return
		}
		pnode, ok := nodes[parent]
		if !ok {
			pnode = &TreeNode{Path: parent, Name: lastSegment(parent), DataType: "object"}
			nodes[parent] = pnode
			synthetic[parent] = true
			attach(parent, pnode)
		}
		pnode.Children = append(pnode.Children, node)
		for p := parent; synthetic[p] && nodes[p].Population < node.Population; p = parentOf(p) {
			nodes[p].Population = node.Population
		}
	}
	for _, path := range a.order {
		attach(path, nodes[path])
	}

	mode := "tabular"
	if maxDepth > 5 || len(a.paths) > 1000 {
		mode = "tree"
	}

	return Analysis{
		Root:            roots,
		RowsSampled:     a.observed,
		MaxDepth:        maxDepth,
		TotalPaths:      len(a.paths),
		RecommendedMode: mode,
	}
}

func dataTypeOf(types map[string]struct{}) string {
	if len(types) > 1 {
		return "mixed"
	}
	for t := range types {
		return t
	}
	return ""
}

func parentOf(path string) string {
	idx := strings.LastIndexByte(path, '.')
	if idx < 0 {
		return ""
	}
	return path[:idx]
}

func lastSegment(path string) string {
	idx := strings.LastIndexByte(path, '.')
	if idx < 0 {
		return path
	}
	return path[idx+1:]
}

// SortPathsForDisplay returns the discovered dotted paths in a stable,
// human-friendly order (depth then lexical), mainly useful for tests and
// debugging; Analyze itself preserves discovery order for children.
func (a *Analyzer) SortPathsForDisplay() []string {
	out := append([]string(nil), a.order...)
	sort.Slice(out, func(i, j int) bool {
		di, dj := depthOf(out[i]), depthOf(out[j])
		if di != dj {
			return di < dj
		}
		return out[i] < out[j]
	})
	return out
}
