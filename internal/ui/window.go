package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/zhubert/winnow/internal/feed"
	"github.com/zhubert/winnow/internal/logger"
	"github.com/zhubert/winnow/internal/virtual"
)

// maxSyncPasses bounds the measure/recompute loop inside one frame.
// Measuring the visible items can shift their offsets, which can pull a
// new item into view that also needs measuring; a few passes settle any
// realistic window.
const maxSyncPasses = 4

// maxViewCacheEntries caps the rendered-item cache. The cache is reset
// rather than evicted; refilling one window of items is cheap.
const maxViewCacheEntries = 512

// WindowedList is the list area of the screen: a window into a
// transcript that is usually far taller than the terminal. It owns the
// windowing engine, renders only the items the engine's snapshot names,
// and feeds their real rendered heights back as measurements.
type WindowedList struct {
	ctrl       *virtual.Controller
	transcript *feed.Transcript

	width  int
	height int

	followTail bool

	// anchor is the item pinned to the top edge while a jump settles.
	// Measuring items above the target shifts its offset, so the jump
	// is re-applied each settle pass until offsets stop moving.
	anchor int

	// viewCache holds rendered items keyed by identity key and index,
	// valid for the current width only
	viewCache map[string]string
}

// NewWindowedList creates a list with an empty transcript.
func NewWindowedList(cfg virtual.Config, followTail bool) *WindowedList {
	return &WindowedList{
		ctrl:       virtual.NewController(cfg),
		transcript: &feed.Transcript{},
		followTail: followTail,
		anchor:     -1,
		viewCache:  make(map[string]string),
	}
}

// Controller exposes the windowing engine for status readouts.
func (w *WindowedList) Controller() *virtual.Controller {
	return w.ctrl
}

// Transcript returns the current transcript.
func (w *WindowedList) Transcript() *feed.Transcript {
	return w.transcript
}

// SetTranscript replaces the dataset.
func (w *WindowedList) SetTranscript(t *feed.Transcript) {
	w.transcript = t
	w.ctrl.SetItemKeys(t.Keys())
	if w.followTail {
		w.ctrl.ScrollToBottom()
	}
}

// SetSize updates the list area dimensions. A width change re-wraps
// every item, so all cached measurements and views are dropped.
func (w *WindowedList) SetSize(width, height int) {
	if width != w.width {
		w.width = width
		w.viewCache = make(map[string]string)
		w.ctrl.InvalidateMeasurements(0)
	}
	if height > 0 {
		w.height = height
		w.ctrl.Resize(height)
	}
}

// Following reports whether the window is pinned to the newest item.
func (w *WindowedList) Following() bool {
	return w.followTail
}

// SetFollowing pins or releases the tail. Pinning jumps to the end.
func (w *WindowedList) SetFollowing(follow bool) {
	if follow {
		w.ScrollToBottom()
		return
	}
	w.followTail = false
}

// ScrollBy moves the window by delta rows. Scrolling up releases the
// tail pin; the window stays where the user put it.
func (w *WindowedList) ScrollBy(delta int) {
	if delta < 0 {
		w.followTail = false
	}
	w.anchor = -1
	w.ctrl.ScrollBy(delta)
}

// PageUp scrolls up by one window extent.
func (w *WindowedList) PageUp() {
	w.ScrollBy(-w.height)
}

// PageDown scrolls down by one window extent.
func (w *WindowedList) PageDown() {
	w.ScrollBy(w.height)
}

// ScrollToTop jumps to the first item.
func (w *WindowedList) ScrollToTop() {
	w.followTail = false
	w.anchor = -1
	w.ctrl.Scroll(0)
}

// ScrollToBottom jumps to the end and re-pins the tail.
func (w *WindowedList) ScrollToBottom() {
	w.followTail = true
	w.anchor = -1
	w.ctrl.ScrollToBottom()
}

// ScrollToItem positions the given item at the top of the window.
func (w *WindowedList) ScrollToItem(index int) {
	if index < 0 || index >= w.transcript.Len() {
		return
	}
	w.followTail = false
	w.anchor = index
	w.ctrl.ScrollToItem(index)
}

// Append adds an item to the end of the transcript.
func (w *WindowedList) Append(item feed.Item) {
	w.transcript.Append(item)
	w.ctrl.SetItemKeys(w.transcript.Keys())
	if w.followTail {
		w.ctrl.ScrollToBottom()
	}
}

// ReverseTranscript flips the dataset order in place. Identity keys
// travel with their items, so measured heights survive the reorder.
func (w *WindowedList) ReverseTranscript() {
	w.transcript.Reverse()
	w.ctrl.SetItemKeys(w.transcript.Keys())
}

// SetEstimatedRows changes the fallback height for unmeasured items.
func (w *WindowedList) SetEstimatedRows(rows int) {
	w.ctrl.SetEstimatedHeight(rows)
}

// SetOverscan changes how many items render beyond the visible edges.
func (w *WindowedList) SetOverscan(n int) {
	w.ctrl.SetOverscan(n)
}

// Sync runs at most one settle cycle: recompute the snapshot, measure
// the items it names, and repeat while measurements keep shifting the
// window. Input events between two Syncs only mark the engine stale, so
// a burst of scrolling costs a single recompute.
func (w *WindowedList) Sync() virtual.Snapshot {
	snap, ok := w.ctrl.LastSnapshot()
	if ok && !w.ctrl.Pending() {
		return snap
	}

	for pass := 0; pass < maxSyncPasses; pass++ {
		switch {
		case w.followTail:
			w.ctrl.ScrollToBottom()
		case w.anchor >= 0:
			w.ctrl.ScrollToItem(w.anchor)
		}
		snap = w.ctrl.Recompute()
		w.measureRange(snap.Range)
		if !w.ctrl.Dirty() {
			w.anchor = -1
			return snap
		}
	}

	// Still dirty after the pass budget: publish what we have, the
	// next frame picks it up.
	logger.Log("ui: window did not settle in %d passes", maxSyncPasses)
	if w.anchor >= 0 {
		w.ctrl.ScrollToItem(w.anchor)
	}
	return w.ctrl.Recompute()
}

// measureRange renders every item in the range and reports its height.
func (w *WindowedList) measureRange(r virtual.Range) {
	if r.IsEmpty() {
		return
	}
	for i := r.Start; i <= r.End; i++ {
		rendered, ok := w.renderedItem(i)
		if !ok {
			continue
		}
		w.ctrl.ReportMeasurement(i, lipgloss.Height(rendered))
	}
}

// renderedItem returns the cached render of item i at the current width.
func (w *WindowedList) renderedItem(i int) (string, bool) {
	item, ok := w.transcript.At(i)
	if !ok {
		return "", false
	}
	cacheKey := fmt.Sprintf("%s:%d", item.Key, i)
	if view, ok := w.viewCache[cacheKey]; ok {
		return view, true
	}
	if len(w.viewCache) >= maxViewCacheEntries {
		w.viewCache = make(map[string]string)
	}
	view := RenderItem(item, i, w.width)
	w.viewCache[cacheKey] = view
	return view, true
}

// FirstVisible returns the index of the item under the window's top
// edge, or -1 when the transcript is empty.
func (w *WindowedList) FirstVisible() int {
	snap, ok := w.ctrl.LastSnapshot()
	if !ok || snap.Range.IsEmpty() {
		return -1
	}
	for i := snap.Range.Start; i <= snap.Range.End; i++ {
		rendered, ok := w.renderedItem(i)
		if !ok {
			continue
		}
		if snap.Offsets[i]+lipgloss.Height(rendered) > snap.Top {
			return i
		}
	}
	return snap.Range.End
}

// CopyFirstVisible returns the unstyled body of the item under the top
// edge, for the clipboard.
func (w *WindowedList) CopyFirstVisible() (string, bool) {
	i := w.FirstVisible()
	if i < 0 {
		return "", false
	}
	item, ok := w.transcript.At(i)
	if !ok {
		return "", false
	}
	return PlainText(item.Body), true
}

// View composes the list area from the last published snapshot. Items
// are drawn at their virtual offset relative to the window top, so the
// first and last items clip mid-item rather than snapping to edges.
func (w *WindowedList) View() string {
	if w.width <= 0 || w.height <= 0 {
		return ""
	}

	scr := uv.NewScreenBuffer(w.width, w.height)

	snap, ok := w.ctrl.LastSnapshot()
	if !ok || snap.Range.IsEmpty() {
		empty := lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).Render("Nothing to show")
		uv.NewStyledString(empty).Draw(scr, uv.Rect(1, 0, w.width-1, 1))
		return scr.Render()
	}

	for i := snap.Range.Start; i <= snap.Range.End; i++ {
		rendered, ok := w.renderedItem(i)
		if !ok {
			continue
		}
		base := snap.Offsets[i] - snap.Top
		for li, line := range strings.Split(rendered, "\n") {
			y := base + li
			if y < 0 {
				continue
			}
			if y >= w.height {
				break
			}
			uv.NewStyledString(line).Draw(scr, uv.Rect(0, y, w.width, 1))
		}
	}

	return scr.Render()
}
