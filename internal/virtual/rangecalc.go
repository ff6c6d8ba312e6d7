package virtual

// Range is an inclusive span of item indices.
type Range struct {
	Start int
	End   int
}

// EmptyRange is the sentinel returned when the collection is empty.
var EmptyRange = Range{Start: -1, End: -1}

// IsEmpty reports whether the range is the empty sentinel.
func (r Range) IsEmpty() bool {
	return r.Start < 0 || r.End < r.Start
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.IsEmpty() {
		return 0
	}
	return r.End - r.Start + 1
}

// Contains reports whether index falls inside the range.
func (r Range) Contains(index int) bool {
	return !r.IsEmpty() && index >= r.Start && index <= r.End
}

// ComputeRange derives the inclusive index range a renderer must
// materialize for the given viewport, widened by overscan items on each
// side and clamped to the collection bounds. The viewport is assumed
// already clamped; a negative Top is tolerated and treated as zero.
//
// Boundary semantics are inclusive: an item whose span merely touches
// the first or last visible row is part of the range. Slight
// over-rendering beats visible gaps during fast scroll.
func ComputeRange(vp Viewport, idx *OffsetIndex, overscan int) Range {
	count := idx.Count()
	if count == 0 {
		return EmptyRange
	}
	if overscan < 0 {
		overscan = 0
	}
	top := vp.Top
	if top < 0 {
		top = 0
	}
	rows := vp.Rows
	if rows < 1 {
		rows = 1
	}

	start := idx.IndexAt(top) - overscan
	if start < 0 {
		start = 0
	}
	// Last visible row, not the row past it: an item starting exactly
	// one row below the viewport is overscan's business, not part of
	// the visible window.
	end := idx.IndexAt(top+rows-1) + overscan
	if end > count-1 {
		end = count - 1
	}
	return Range{Start: start, End: end}
}
