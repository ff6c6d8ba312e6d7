package virtual

// HeightCache stores the measured height of each item by index and
// falls back to a single estimated height for items that have not been
// measured yet. Measurements arrive one item at a time, in whatever
// order the renderer happens to mount items, so the cache must tolerate
// arbitrary partial knowledge.
//
// Entries may optionally carry an identity key. When the dataset is
// wholesale-replaced with keys supplied, Reconcile drops cached heights
// whose identity no longer matches their index, so a reordered dataset
// does not inherit heights from unrelated items.
type HeightCache struct {
	estimate int
	measured map[int]int
	keys     map[int]string
}

// NewHeightCache creates a cache with the given estimated height.
// Estimates below one row are raised to the default.
func NewHeightCache(estimate int) *HeightCache {
	if estimate < 1 {
		estimate = DefaultEstimatedRows
	}
	return &HeightCache{
		estimate: estimate,
		measured: make(map[int]int),
		keys:     make(map[int]string),
	}
}

// Estimate returns the fallback height for unmeasured items.
func (h *HeightCache) Estimate() int {
	return h.estimate
}

// SetEstimate changes the fallback height. Values below one row are
// rejected and the previous estimate is kept.
func (h *HeightCache) SetEstimate(rows int) bool {
	if rows < 1 {
		return false
	}
	h.estimate = rows
	return true
}

// Record stores a measured height for index. Non-positive heights and
// negative indices are rejected; the previous value (or the estimate)
// stays in effect.
func (h *HeightCache) Record(index, rows int) bool {
	if index < 0 || rows < 1 {
		return false
	}
	h.measured[index] = rows
	return true
}

// RowsAt returns the measured height for index, or the estimate if the
// item has not been measured.
func (h *HeightCache) RowsAt(index int) int {
	if rows, ok := h.measured[index]; ok {
		return rows
	}
	return h.estimate
}

// Measured reports the measured height for index, if any.
func (h *HeightCache) Measured(index int) (int, bool) {
	rows, ok := h.measured[index]
	return rows, ok
}

// MeasuredCount returns how many items have a real measurement.
func (h *HeightCache) MeasuredCount() int {
	return len(h.measured)
}

// InvalidateFrom drops all cached knowledge for index and everything
// after it. Used when a width change or dataset replacement makes
// downstream measurements suspect.
func (h *HeightCache) InvalidateFrom(index int) {
	if index < 0 {
		index = 0
	}
	for i := range h.measured {
		if i >= index {
			delete(h.measured, i)
		}
	}
	for i := range h.keys {
		if i >= index {
			delete(h.keys, i)
		}
	}
}

// Resize drops entries at or beyond the new item count. Entries within
// bound are kept: datasets are typically item-identity-stable across a
// count change, and Reconcile handles the case where they are not.
func (h *HeightCache) Resize(itemCount int) {
	if itemCount < 0 {
		itemCount = 0
	}
	for i := range h.measured {
		if i >= itemCount {
			delete(h.measured, i)
		}
	}
	for i := range h.keys {
		if i >= itemCount {
			delete(h.keys, i)
		}
	}
}

// Reconcile records the identity key of every index and drops cached
// heights whose identity changed since the keys were last seen. Entries
// beyond len(keys) are dropped outright. It returns the lowest index
// whose height knowledge changed, or -1 if nothing was invalidated, so
// the caller can repair offsets from that point.
func (h *HeightCache) Reconcile(keys []string) int {
	lowest := -1
	note := func(i int) {
		if lowest == -1 || i < lowest {
			lowest = i
		}
	}
	for i := range h.measured {
		if i >= len(keys) {
			delete(h.measured, i)
			note(i)
		}
	}
	for i, key := range keys {
		prev, known := h.keys[i]
		if known && prev != key {
			if _, ok := h.measured[i]; ok {
				delete(h.measured, i)
				note(i)
			}
		}
		h.keys[i] = key
	}
	for i := range h.keys {
		if i >= len(keys) {
			delete(h.keys, i)
		}
	}
	return lowest
}
