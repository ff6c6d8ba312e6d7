package virtual

import (
	"math/rand"
	"testing"
)

// buildIndex creates an offset index with count items, all estimated.
func buildIndex(t *testing.T, count, estimate int) *OffsetIndex {
	t.Helper()
	o := NewOffsetIndex(NewHeightCache(estimate))
	o.Resize(count)
	return o
}

func TestComputeRange_EmptyCollection(t *testing.T) {
	o := buildIndex(t, 0, 2)
	r := ComputeRange(Viewport{Top: 0, Rows: 40}, o, 5)

	if !r.IsEmpty() {
		t.Errorf("range = %+v, want empty sentinel", r)
	}
	if got := r.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

// Ten thousand estimated items, window at the top: ten visible plus
// overscan below.
func TestComputeRange_TopOfLargeCollection(t *testing.T) {
	o := buildIndex(t, 10000, 60)
	r := ComputeRange(Viewport{Top: 0, Rows: 600}, o, 5)

	want := Range{Start: 0, End: 14}
	if r != want {
		t.Errorf("range = %+v, want %+v", r, want)
	}
}

// Scrolled past the scrollable extent: the window clamps so the last
// item is included and the start keeps the window full.
func TestComputeRange_ClampedAtEnd(t *testing.T) {
	o := buildIndex(t, 10000, 60)
	total := o.TotalRows()

	// The caller clamps Top; emulate a scroll request far past the end.
	vp := Viewport{Top: total + 123456, Rows: 600}.Clamp(total)

	if vp.Top != total-600 {
		t.Fatalf("clamped Top = %d, want %d", vp.Top, total-600)
	}

	r := ComputeRange(vp, o, 5)
	if r.End != 9999 {
		t.Errorf("End = %d, want 9999", r.End)
	}
	// 10 visible items, 5 overscan above, clamped below.
	if want := 9985; r.Start != want {
		t.Errorf("Start = %d, want %d", r.Start, want)
	}
}

// Three measured items smaller than the window: everything is visible.
func TestComputeRange_ContentSmallerThanWindow(t *testing.T) {
	h := NewHeightCache(2)
	h.Record(0, 40)
	h.Record(1, 200)
	h.Record(2, 40)
	o := NewOffsetIndex(h)
	o.Resize(3)
	o.MarkDirty(0)

	r := ComputeRange(Viewport{Top: 0, Rows: 500}, o, 0)

	want := Range{Start: 0, End: 2}
	if r != want {
		t.Errorf("range = %+v, want %+v", r, want)
	}
	if got := o.TotalRows(); got != 280 {
		t.Errorf("TotalRows() = %d, want 280", got)
	}
}

func TestComputeRange_InclusiveBoundary(t *testing.T) {
	o := buildIndex(t, 100, 10)

	// Window rows [5, 25): items 0, 1 and 2 all intersect; item 2 only
	// touches via its first rows.
	r := ComputeRange(Viewport{Top: 5, Rows: 20}, o, 0)

	want := Range{Start: 0, End: 2}
	if r != want {
		t.Errorf("range = %+v, want %+v", r, want)
	}
}

func TestComputeRange_NegativeInputsTolerated(t *testing.T) {
	o := buildIndex(t, 50, 3)

	r := ComputeRange(Viewport{Top: -100, Rows: 9}, o, -2)

	want := Range{Start: 0, End: 2}
	if r != want {
		t.Errorf("range = %+v, want %+v", r, want)
	}
}

// Widening overscan never shrinks the range, and range bounds always
// stay inside the collection.
func TestComputeRange_OverscanWidensMonotonically(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 50; trial++ {
		count := 1 + rng.Intn(2000)
		o := buildIndex(t, count, 1+rng.Intn(4))
		vp := Viewport{Top: rng.Intn(o.TotalRows() + 10), Rows: 1 + rng.Intn(80)}

		prev := Range{Start: -1, End: -1}
		for overscan := 0; overscan <= 12; overscan += 3 {
			r := ComputeRange(vp, o, overscan)

			if r.Start < 0 || r.End < r.Start || r.End > count-1 {
				t.Fatalf("trial %d overscan %d: range %+v out of bounds for count %d", trial, overscan, r, count)
			}
			if prev.Start >= 0 && (r.Start > prev.Start || r.End < prev.End) {
				t.Fatalf("trial %d: overscan %d shrank range %+v -> %+v", trial, overscan, prev, r)
			}
			prev = r
		}
	}
}

func TestRange_Contains(t *testing.T) {
	tests := []struct {
		name  string
		r     Range
		index int
		want  bool
	}{
		{"inside", Range{2, 5}, 3, true},
		{"at start", Range{2, 5}, 2, true},
		{"at end", Range{2, 5}, 5, true},
		{"below", Range{2, 5}, 1, false},
		{"above", Range{2, 5}, 6, false},
		{"empty sentinel", EmptyRange, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.index); got != tt.want {
				t.Errorf("%+v.Contains(%d) = %v, want %v", tt.r, tt.index, got, tt.want)
			}
		})
	}
}
