package virtual

import (
	"github.com/zhubert/winnow/internal/logger"
)

// Snapshot is what the Controller publishes after a recompute: the
// range of items the renderer must materialize, the virtual row offset
// of every item in that range, the total scrollable extent, and the
// effective (clamped) viewport position and extent.
type Snapshot struct {
	Range     Range
	Offsets   map[int]int
	TotalRows int
	Top       int
	Rows      int
}

// Controller is the orchestrating unit of the engine. It owns the
// height cache and offset index, serializes scroll, resize, dataset and
// measurement events through one intake point, and republishes a
// Snapshot on Recompute.
//
// The controller has two logical states. It is dirty when a measurement
// or dataset change has happened since the last published snapshot, and
// clean otherwise. Scroll and resize events never dirty the cache; they
// only mark a recompute as pending. Callers are expected to coalesce:
// apply any number of events, then run a single Recompute on the next
// render tick rather than one per event.
//
// A Controller must be confined to a single goroutine.
type Controller struct {
	cfg     Config
	cache   *HeightCache
	offsets *OffsetIndex

	vp    Viewport
	count int

	dirty   bool
	pending bool

	last        Snapshot
	hasSnapshot bool
}

// NewController creates an engine with zero items and the given config.
func NewController(cfg Config) *Controller {
	cfg = cfg.Sanitize()
	cache := NewHeightCache(cfg.EstimatedRows)
	return &Controller{
		cfg:     cfg,
		cache:   cache,
		offsets: NewOffsetIndex(cache),
		vp:      Viewport{Rows: 1},
	}
}

// Count returns the current item count.
func (c *Controller) Count() int {
	return c.count
}

// Config returns the current engine configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Viewport returns the viewport as last requested, before clamping.
func (c *Controller) Viewport() Viewport {
	return c.vp
}

// Pending reports whether an event has arrived since the last
// Recompute, i.e. whether the published snapshot is stale.
func (c *Controller) Pending() bool {
	return c.pending || !c.hasSnapshot
}

// Dirty reports whether a measurement or dataset change has happened
// since the last published snapshot. Scrolling alone never dirties.
func (c *Controller) Dirty() bool {
	return c.dirty
}

// LastSnapshot returns the most recently published snapshot.
func (c *Controller) LastSnapshot() (Snapshot, bool) {
	return c.last, c.hasSnapshot
}

// SetItemCount replaces the collection size. Cached heights for indices
// within the new bound are kept; everything beyond it is dropped.
func (c *Controller) SetItemCount(n int) {
	if n < 0 {
		logger.Log("virtual: SetItemCount(%d) clamped to 0", n)
		n = 0
	}
	if n == c.count {
		return
	}
	c.cache.Resize(n)
	c.offsets.Resize(n)
	c.count = n
	c.markDirty()
}

// SetItemKeys replaces the collection with one identity key per index.
// Cached heights survive only where the identity at that index is
// unchanged, which keeps a reordered dataset from inheriting heights
// that belong to different items.
func (c *Controller) SetItemKeys(keys []string) {
	n := len(keys)
	c.cache.Resize(n)
	c.offsets.Resize(n)
	c.count = n
	if lowest := c.cache.Reconcile(keys); lowest >= 0 {
		c.offsets.MarkDirty(lowest)
	}
	c.markDirty()
}

// SetEstimatedHeight changes the fallback height for unmeasured items.
// Values below one row are ignored.
func (c *Controller) SetEstimatedHeight(rows int) {
	if !c.cache.SetEstimate(rows) {
		logger.Log("virtual: SetEstimatedHeight(%d) ignored", rows)
		return
	}
	c.cfg.EstimatedRows = rows
	// Every unmeasured item changed height.
	c.offsets.MarkDirty(0)
	c.markDirty()
}

// SetOverscan changes how many items are materialized beyond the
// visible edges. Negative values clamp to zero.
func (c *Controller) SetOverscan(n int) {
	if n < 0 {
		n = 0
	}
	if n == c.cfg.Overscan {
		return
	}
	c.cfg.Overscan = n
	c.pending = true
}

// ReportMeasurement records the real rendered height of an item. Out of
// range indices and non-positive heights are dropped as no-ops; the
// render loop must never stall over one bad measurement. Re-reporting
// an unchanged height is free and does not dirty the offsets.
func (c *Controller) ReportMeasurement(index, rows int) {
	if index < 0 || index >= c.count {
		logger.Log("virtual: measurement for index %d outside [0,%d) dropped", index, c.count)
		return
	}
	if rows < 1 {
		logger.Log("virtual: measurement %d rows at index %d dropped", rows, index)
		return
	}
	if prev, ok := c.cache.Measured(index); ok && prev == rows {
		return
	}
	c.cache.Record(index, rows)
	c.offsets.MarkDirty(index)
	c.markDirty()
}

// InvalidateMeasurements drops all cached heights from index onward,
// typically because a width change re-wrapped everything downstream.
func (c *Controller) InvalidateMeasurements(index int) {
	if index < 0 {
		index = 0
	}
	c.cache.InvalidateFrom(index)
	c.offsets.MarkDirty(index)
	c.markDirty()
}

// Scroll moves the viewport to an absolute row offset. Out-of-range
// values are tolerated and clamped against the total extent at the next
// Recompute.
func (c *Controller) Scroll(top int) {
	if top < 0 {
		top = 0
	}
	if top == c.vp.Top {
		return
	}
	c.vp.Top = top
	c.pending = true
}

// ScrollBy moves the viewport by a relative number of rows.
func (c *Controller) ScrollBy(delta int) {
	c.Scroll(c.vp.Top + delta)
}

// ScrollToItem positions the viewport so the given item starts at the
// top of the window.
func (c *Controller) ScrollToItem(index int) {
	if index < 0 || index >= c.count {
		return
	}
	c.Scroll(c.offsets.OffsetOf(index))
}

// ScrollToBottom positions the viewport at the end of the collection.
func (c *Controller) ScrollToBottom() {
	total := c.offsets.TotalRows()
	c.Scroll(total - c.vp.Rows)
	c.pending = true
}

// Resize changes the container extent. Extents below one row are
// ignored and the previous valid extent is kept.
func (c *Controller) Resize(rows int) {
	if rows < 1 {
		logger.Log("virtual: Resize(%d) ignored", rows)
		return
	}
	if rows == c.vp.Rows {
		return
	}
	c.vp.Rows = rows
	c.pending = true
}

// AtBottom reports whether the last published snapshot had the viewport
// at the end of the scrollable extent. A Resize between two recomputes
// does not change the answer; only the next snapshot does.
func (c *Controller) AtBottom() bool {
	if !c.hasSnapshot {
		return true
	}
	return c.last.Top >= c.last.TotalRows-c.last.Rows
}

// Recompute repairs the offset index from its lowest dirty point,
// derives the visible range for the current viewport, and publishes a
// fresh snapshot. Calling it twice without intervening events yields an
// identical snapshot.
func (c *Controller) Recompute() Snapshot {
	total := c.offsets.TotalRows()
	vp := c.vp.Clamp(total)

	r := ComputeRange(vp, c.offsets, c.cfg.Overscan)
	offsets := make(map[int]int, r.Len())
	for i := r.Start; !r.IsEmpty() && i <= r.End; i++ {
		offsets[i] = c.offsets.OffsetOf(i)
	}

	c.last = Snapshot{
		Range:     r,
		Offsets:   offsets,
		TotalRows: total,
		Top:       vp.Top,
		Rows:      vp.Rows,
	}
	c.hasSnapshot = true
	c.dirty = false
	c.pending = false
	return c.last
}

func (c *Controller) markDirty() {
	c.dirty = true
	c.pending = true
}
