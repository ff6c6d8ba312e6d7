package virtual

import (
	"math/rand"
	"testing"
)

func TestOffsetIndex_Empty(t *testing.T) {
	o := NewOffsetIndex(NewHeightCache(2))

	if got := o.TotalRows(); got != 0 {
		t.Errorf("TotalRows() = %d, want 0", got)
	}
	if got := o.IndexAt(0); got != -1 {
		t.Errorf("IndexAt(0) = %d, want -1 for empty collection", got)
	}
	if got := o.OffsetOf(0); got != 0 {
		t.Errorf("OffsetOf(0) = %d, want 0", got)
	}
}

func TestOffsetIndex_AllEstimated(t *testing.T) {
	o := NewOffsetIndex(NewHeightCache(3))
	o.Resize(100)

	if got := o.TotalRows(); got != 300 {
		t.Errorf("TotalRows() = %d, want 300", got)
	}
	if got := o.OffsetOf(10); got != 30 {
		t.Errorf("OffsetOf(10) = %d, want 30", got)
	}
	if got := o.IndexAt(30); got != 10 {
		t.Errorf("IndexAt(30) = %d, want 10", got)
	}
	if got := o.IndexAt(29); got != 9 {
		t.Errorf("IndexAt(29) = %d, want 9", got)
	}
}

func TestOffsetIndex_IndexAtEdges(t *testing.T) {
	h := NewHeightCache(1)
	h.Record(0, 40)
	h.Record(1, 200)
	h.Record(2, 40)
	o := NewOffsetIndex(h)
	o.Resize(3)
	o.MarkDirty(0)

	tests := []struct {
		name   string
		offset int
		want   int
	}{
		{"negative clamps to first", -5, 0},
		{"row zero", 0, 0},
		{"last row of first item", 39, 0},
		{"first row of second item", 40, 1},
		{"inside second item", 150, 1},
		{"first row of third item", 240, 2},
		{"last row", 279, 2},
		{"at total extent clamps to last", 280, 2},
		{"far past the end clamps to last", 100000, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := o.IndexAt(tt.offset); got != tt.want {
				t.Errorf("IndexAt(%d) = %d, want %d", tt.offset, got, tt.want)
			}
		})
	}
}

func TestOffsetIndex_IncrementalRepair(t *testing.T) {
	h := NewHeightCache(2)
	o := NewOffsetIndex(h)
	o.Resize(1000)

	if got := o.TotalRows(); got != 2000 {
		t.Fatalf("TotalRows() = %d, want 2000", got)
	}
	if o.Dirty() {
		t.Fatal("index dirty after full repair, want clean")
	}

	// A measurement at index 500 must only dirty the suffix.
	h.Record(500, 12)
	o.MarkDirty(500)

	if got := o.OffsetOf(500); got != 1000 {
		t.Errorf("OffsetOf(500) = %d, want 1000 (prefix below dirty point unchanged)", got)
	}
	if got := o.TotalRows(); got != 2010 {
		t.Errorf("TotalRows() = %d, want 2010", got)
	}
	if got := o.OffsetOf(501); got != 1012 {
		t.Errorf("OffsetOf(501) = %d, want 1012", got)
	}
}

// TotalRows must always equal the direct sum of per-item heights,
// measured or estimated, whatever order measurements arrived in.
func TestOffsetIndex_MatchesDirectSummation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 20; trial++ {
		count := 1 + rng.Intn(500)
		h := NewHeightCache(1 + rng.Intn(5))
		o := NewOffsetIndex(h)
		o.Resize(count)

		for i := 0; i < count/3; i++ {
			idx := rng.Intn(count)
			h.Record(idx, 1+rng.Intn(20))
			o.MarkDirty(idx)
		}

		direct := 0
		for i := 0; i < count; i++ {
			if got := o.OffsetOf(i); got != direct {
				t.Fatalf("trial %d: OffsetOf(%d) = %d, want %d", trial, i, got, direct)
			}
			direct += h.RowsAt(i)
		}
		if got := o.TotalRows(); got != direct {
			t.Fatalf("trial %d: TotalRows() = %d, want %d", trial, got, direct)
		}

		// Offsets are non-decreasing, so IndexAt must round-trip for
		// every item's first row.
		for i := 0; i < count; i++ {
			if got := o.IndexAt(o.OffsetOf(i)); got != i {
				t.Fatalf("trial %d: IndexAt(OffsetOf(%d)) = %d, want %d", trial, i, got, i)
			}
		}
	}
}

func TestOffsetIndex_ResizeKeepsValidPrefix(t *testing.T) {
	h := NewHeightCache(2)
	o := NewOffsetIndex(h)
	o.Resize(10)
	if got := o.TotalRows(); got != 20 {
		t.Fatalf("TotalRows() = %d, want 20", got)
	}

	o.Resize(4)
	if got := o.TotalRows(); got != 8 {
		t.Errorf("TotalRows() after shrink = %d, want 8", got)
	}

	o.Resize(8)
	if got := o.TotalRows(); got != 16 {
		t.Errorf("TotalRows() after regrow = %d, want 16", got)
	}

	o.Resize(0)
	if got := o.TotalRows(); got != 0 {
		t.Errorf("TotalRows() after Resize(0) = %d, want 0", got)
	}
	if got := o.IndexAt(5); got != -1 {
		t.Errorf("IndexAt(5) = %d, want -1 after Resize(0)", got)
	}
}
