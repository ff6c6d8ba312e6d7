package virtual

import "sort"

// OffsetIndex maintains cumulative row offsets over a HeightCache:
// prefix[i] is the virtual row at which item i starts, and
// prefix[itemCount] is the total scrollable extent.
//
// The prefix array is repaired incrementally from a single lowest-dirty
// marker rather than rescanned per query. Steady-state scrolling (no new
// measurements) costs O(log n) per lookup; a measurement at index d
// costs O(n-d) once, amortized across the session. This matters at the
// tens of thousands of items the engine targets, where a rescan per
// scroll tick would dominate the frame budget.
type OffsetIndex struct {
	cache *HeightCache
	count int

	// prefix has count+1 entries; entries at index <= dirty are valid.
	prefix []int

	// dirty is the lowest item index whose prefix contribution may be
	// stale. dirty == count means the whole array is valid.
	dirty int
}

// NewOffsetIndex creates an index over cache with zero items.
func NewOffsetIndex(cache *HeightCache) *OffsetIndex {
	return &OffsetIndex{
		cache:  cache,
		prefix: []int{0},
	}
}

// Count returns the current item count.
func (o *OffsetIndex) Count() int {
	return o.count
}

// Resize changes the item count. Prefix entries for surviving items
// stay valid; the dirty marker moves back only as far as the boundary.
func (o *OffsetIndex) Resize(itemCount int) {
	if itemCount < 0 {
		itemCount = 0
	}
	if itemCount == o.count {
		return
	}
	if itemCount < o.count {
		o.prefix = o.prefix[:itemCount+1]
	} else {
		for len(o.prefix) < itemCount+1 {
			o.prefix = append(o.prefix, 0)
		}
		o.MarkDirty(o.count)
	}
	o.count = itemCount
	if o.dirty > itemCount {
		o.dirty = itemCount
	}
}

// MarkDirty records that heights from index onward may have changed.
func (o *OffsetIndex) MarkDirty(index int) {
	if index < 0 {
		index = 0
	}
	if index < o.dirty {
		o.dirty = index
	}
}

// Dirty reports whether any prefix entries need repair.
func (o *OffsetIndex) Dirty() bool {
	return o.dirty < o.count
}

// repair recomputes prefix entries for items [dirty, upTo).
func (o *OffsetIndex) repair(upTo int) {
	if upTo > o.count {
		upTo = o.count
	}
	for i := o.dirty; i < upTo; i++ {
		o.prefix[i+1] = o.prefix[i] + o.cache.RowsAt(i)
	}
	if upTo > o.dirty {
		o.dirty = upTo
	}
}

// OffsetOf returns the virtual row at which item index starts. Indices
// are clamped to [0, count]; OffsetOf(count) is the total extent.
func (o *OffsetIndex) OffsetOf(index int) int {
	if index < 0 {
		index = 0
	}
	if index > o.count {
		index = o.count
	}
	o.repair(index)
	return o.prefix[index]
}

// TotalRows returns the total scrollable extent, zero for an empty
// collection.
func (o *OffsetIndex) TotalRows() int {
	o.repair(o.count)
	return o.prefix[o.count]
}

// IndexAt returns the index of the item whose span contains the given
// virtual row: the smallest i with prefix[i+1] > offset. Offsets below
// zero resolve to the first item, offsets at or past the total extent
// to the last. Returns -1 for an empty collection.
func (o *OffsetIndex) IndexAt(offset int) int {
	if o.count == 0 {
		return -1
	}
	if offset < 0 {
		return 0
	}
	o.repair(o.count)
	i := sort.Search(o.count, func(i int) bool {
		return o.prefix[i+1] > offset
	})
	if i >= o.count {
		return o.count - 1
	}
	return i
}
