// Package virtual implements list windowing for very large ordered
// collections: given per-item heights that are only discovered as items
// are actually rendered, it computes the minimal contiguous index range
// a renderer must materialize for the current scroll position.
//
// # Overview
//
// Four pieces, leaves first:
//
//	HeightCache   per-item measured heights, estimate fallback
//	OffsetIndex   prefix sums over heights, offset<->index queries
//	ComputeRange  viewport + offsets -> visible index range
//	Controller    owns the above, turns events into snapshots
//
// The renderer reports measured heights as items mount; the cache
// absorbs them, the offset index repairs its prefix sums from the lowest
// dirty index, and the next Recompute publishes a Snapshot with the
// visible range, the row offset of every item in that range, and the
// total scrollable extent.
//
//	┌─ renderer ──────────────────────────────┐
//	│ ReportMeasurement / Scroll / Resize     │
//	│                  │                      │
//	│                  ▼                      │
//	│            Controller ── Recompute ──▶ Snapshot{Range, Offsets, TotalRows, Top, Rows}
//	│           /          \                  │
//	│   HeightCache     OffsetIndex           │
//	└─────────────────────────────────────────┘
//
// # Units
//
// All heights and offsets are whole terminal rows. Every item occupies
// at least one row; zero or negative measurements are rejected.
//
// # Concurrency
//
// The engine is deliberately lock-free and single-owner: a Controller
// must only be used from one goroutine (in practice the Bubble Tea
// update loop). All operations are synchronous and non-blocking, so
// they are safe to call from inside a render or measurement callback.
//
// # Failure model
//
// No operation panics or returns an error across the public boundary.
// Out-of-range indices and invalid heights are dropped, out-of-range
// scroll offsets are clamped, and an empty collection yields the empty
// range sentinel with a total extent of zero. A misbehaving caller sees
// estimated heights, never a stalled render loop.
package virtual
