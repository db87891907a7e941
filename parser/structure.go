package parser

import "github.com/tidwall/gjson"

// StructureState is one node of the content-classification state machine
// from spec.md §4.5, tracked independently of container format.
type StructureState string

const (
	StructureUnknown                StructureState = "unknown"
	StructureArrayOfObjects         StructureState = "array-of-objects"
	StructureArrayOfArrays          StructureState = "array-of-arrays"
	StructureArrayOfPrimitives      StructureState = "array-of-primitives"
	StructureNewlineDelimitedObjects StructureState = "newline-delimited-objects"
	StructureMixed                  StructureState = "mixed"
	StructureSingleObject           StructureState = "single-object"
)

// StructureDetector classifies a hierarchical source's shape. The first
// observed item fixes the state; any later item of a different category
// transitions to (and freezes at) Mixed.
type StructureDetector struct {
	state StructureState
	seen  bool
}

// NewStructureDetector returns a detector in the Unknown state.
func NewStructureDetector() *StructureDetector {
	return &StructureDetector{state: StructureUnknown}
}

// ObserveItem folds one parsed top-level item's shape into the detector.
func (d *StructureDetector) ObserveItem(v gjson.Result) {
	category := categoryOf(v)
	if !d.seen {
		d.state = category
		d.seen = true
		return
	}
	if category != d.state {
		d.state = StructureMixed
	}
}

// ObserveSingleObject records a source that is one bare object rather than
// a container of items (e.g. a lone JSON document, not an array).
func (d *StructureDetector) ObserveSingleObject() {
	if !d.seen {
		d.state = StructureSingleObject
		d.seen = true
		return
	}
	if d.state != StructureSingleObject {
		d.state = StructureMixed
	}
}

// State returns the current classification.
func (d *StructureDetector) State() StructureState { return d.state }

// categoryOf classifies purely on the top-level item's own type, matching
// original_source/src/wasm/src/json.rs's update_structure: an item that is
// itself an array is array-of-arrays regardless of what its elements are
// (e.g. [[1,2],[3,4]] classifies as array-of-arrays even though its
// elements are themselves primitive-only arrays).
func categoryOf(v gjson.Result) StructureState {
	switch {
	case v.IsObject():
		return StructureArrayOfObjects
	case v.IsArray():
		return StructureArrayOfArrays
	default:
		return StructureArrayOfPrimitives
	}
}
