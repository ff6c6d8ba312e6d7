// Package ui renders the windowed transcript view.
//
// The layout is a fixed header and footer around a list area that shows
// a window into a transcript far larger than the screen:
//
//	┌──────────────────────────────────────────┐
//	│ header (1 row)                           │
//	├──────────────────────────────────────────┤
//	│                                          │
//	│ list area: only the items inside the     │
//	│ visible range (plus overscan) are ever   │
//	│ rendered; the first and last may be      │
//	│ clipped mid-item                         │
//	│                                          │
//	├──────────────────────────────────────────┤
//	│ footer (1 row): position + key hints     │
//	└──────────────────────────────────────────┘
//
// WindowedList owns the virtual.Controller. Input events only mark the
// engine stale; the app drives one Sync per frame tick, so a burst of
// wheel events between two frames costs a single recompute.
package ui
