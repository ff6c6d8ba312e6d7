package cmd

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/zhubert/winnow/internal/feed"
	"github.com/zhubert/winnow/internal/ui"
	"github.com/zhubert/winnow/internal/virtual"
)

func newStressList(items int, seed int64) *ui.WindowedList {
	list := ui.NewWindowedList(virtual.Config{EstimatedRows: 2, Overscan: 4}, false)
	list.SetSize(80, 24)
	list.SetTranscript(feed.Generate(items, seed))
	return list
}

func TestStressFrameLoop_ShortRun(t *testing.T) {
	list := newStressList(500, 7)
	rng := rand.New(rand.NewSource(7))

	if err := stressFrameLoop(list, rng, 300); err != nil {
		t.Fatalf("stressFrameLoop: %v", err)
	}
}

func TestStressFrameLoop_TinyTranscript(t *testing.T) {
	list := newStressList(3, 2)
	rng := rand.New(rand.NewSource(2))

	if err := stressFrameLoop(list, rng, 100); err != nil {
		t.Fatalf("stressFrameLoop: %v", err)
	}
}

func TestVerifySnapshot_AcceptsSettledEngine(t *testing.T) {
	list := newStressList(200, 3)
	snap := list.Sync()

	if err := verifySnapshot(snap, list); err != nil {
		t.Errorf("verifySnapshot on a settled engine: %v", err)
	}
}

func TestVerifySnapshot_Violations(t *testing.T) {
	list := newStressList(200, 3)
	good := list.Sync()

	tests := []struct {
		name   string
		mutate func(virtual.Snapshot) virtual.Snapshot
		want   string
	}{
		{
			name: "range out of bounds",
			mutate: func(s virtual.Snapshot) virtual.Snapshot {
				s.Range.End = 500
				return s
			},
			want: "out of bounds",
		},
		{
			name: "total below item count",
			mutate: func(s virtual.Snapshot) virtual.Snapshot {
				s.TotalRows = 10
				return s
			},
			want: "below item count",
		},
		{
			name: "missing offset",
			mutate: func(s virtual.Snapshot) virtual.Snapshot {
				offsets := make(map[int]int, len(s.Offsets))
				for k, v := range s.Offsets {
					offsets[k] = v
				}
				delete(offsets, s.Range.Start+1)
				s.Offsets = offsets
				return s
			},
			want: "offset missing",
		},
		{
			name: "first item below top",
			mutate: func(s virtual.Snapshot) virtual.Snapshot {
				offsets := make(map[int]int, len(s.Offsets))
				for k, v := range s.Offsets {
					offsets[k] = v
				}
				offsets[s.Range.Start] = s.Top + 5
				s.Top = 0
				// Keep later offsets increasing past the forged one
				s.Range.End = s.Range.Start
				s.Offsets = offsets
				return s
			},
			want: "below top",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := verifySnapshot(tt.mutate(good), list)
			if err == nil {
				t.Fatal("verifySnapshot accepted a forged snapshot")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q, want substring %q", err, tt.want)
			}
		})
	}
}

func TestApplyRandomEvent_NeverPanics(t *testing.T) {
	list := newStressList(50, 9)
	rng := rand.New(rand.NewSource(9))

	for i := 0; i < 500; i++ {
		applyRandomEvent(list, rng)
	}
	list.Sync()
}
