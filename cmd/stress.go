package cmd

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zhubert/winnow/internal/feed"
	"github.com/zhubert/winnow/internal/logger"
	"github.com/zhubert/winnow/internal/ui"
	"github.com/zhubert/winnow/internal/virtual"
)

var (
	stressItems  int
	stressSeed   int64
	stressFrames int
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Drive the windowing engine headlessly and check its invariants",
	Long: `Stress runs the window through a random event sequence without a
terminal: scrolls, jumps, resizes, appends, reversals and estimate
changes, one engine sync per simulated frame. Every published snapshot
is checked against the engine's invariants; the first violation aborts
the run. Output goes to a per-run log file under /tmp.`,
	RunE: runStress,
}

func init() {
	stressCmd.Flags().IntVar(&stressItems, "items", 10000, "Transcript size")
	stressCmd.Flags().Int64Var(&stressSeed, "seed", 1, "Seed for the transcript and the event sequence")
	stressCmd.Flags().IntVar(&stressFrames, "frames", 5000, "Number of simulated frames")
	rootCmd.AddCommand(stressCmd)
}

func runStress(cmd *cobra.Command, args []string) error {
	runID := uuid.NewString()[:8]
	if err := logger.Init(logger.StressLogPath(runID)); err != nil {
		return err
	}
	defer logger.Close()

	log := logger.ComponentLogger("Stress")
	log.Info("run starting", "items", stressItems, "seed", stressSeed, "frames", stressFrames)

	list := ui.NewWindowedList(virtual.Config{EstimatedRows: 2, Overscan: 4}, false)
	list.SetSize(80, 24)
	list.SetTranscript(feed.Generate(stressItems, stressSeed))

	rng := rand.New(rand.NewSource(stressSeed))
	if err := stressFrameLoop(list, rng, stressFrames); err != nil {
		log.Error("invariant violated", "error", err)
		return err
	}

	log.Info("run complete")
	fmt.Printf("stress: %d frames over %d items, no violations (log: %s)\n",
		stressFrames, stressItems, logger.StressLogPath(runID))
	return nil
}

// stressFrameLoop applies one random event per frame, syncs, and
// verifies the published snapshot.
func stressFrameLoop(list *ui.WindowedList, rng *rand.Rand, frames int) error {
	log := logger.ComponentLogger("Stress")

	for frame := 0; frame < frames; frame++ {
		applyRandomEvent(list, rng)

		snap := list.Sync()
		if err := verifySnapshot(snap, list); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}

		// A sync without intervening events must not move anything
		if frame%100 == 0 {
			again := list.Sync()
			if again.Range != snap.Range || again.Top != snap.Top || again.TotalRows != snap.TotalRows {
				return fmt.Errorf("frame %d: second sync without events changed the snapshot: %+v vs %+v", frame, snap, again)
			}
		}

		if frame%1000 == 0 {
			log.Debug("progress", "frame", frame, "top", snap.Top, "total", snap.TotalRows, "range", fmt.Sprintf("[%d,%d]", snap.Range.Start, snap.Range.End))
		}
	}
	return nil
}

// applyRandomEvent picks one of the engine's intake events at random
func applyRandomEvent(list *ui.WindowedList, rng *rand.Rand) {
	count := list.Transcript().Len()

	switch rng.Intn(12) {
	case 0, 1, 2, 3:
		// Scrolling dominates real usage
		list.ScrollBy(rng.Intn(1001) - 500)
	case 4:
		list.PageDown()
	case 5:
		list.PageUp()
	case 6:
		if count > 0 {
			list.ScrollToItem(rng.Intn(count))
		}
	case 7:
		list.ScrollToBottom()
	case 8:
		list.SetSize(40+rng.Intn(121), 5+rng.Intn(56))
	case 9:
		list.Append(feed.NewItem(feed.RoleTool, "stress event"))
	case 10:
		list.SetEstimatedRows(1 + rng.Intn(5))
	case 11:
		list.SetOverscan(rng.Intn(9))
	}
}

// verifySnapshot checks a published snapshot against the invariants
// the renderer depends on.
func verifySnapshot(snap virtual.Snapshot, list *ui.WindowedList) error {
	count := list.Transcript().Len()

	if count == 0 {
		if !snap.Range.IsEmpty() {
			return fmt.Errorf("non-empty range %+v for an empty transcript", snap.Range)
		}
		return nil
	}

	r := snap.Range
	if r.IsEmpty() {
		return fmt.Errorf("empty range for %d items", count)
	}
	if r.Start < 0 || r.End >= count || r.Start > r.End {
		return fmt.Errorf("range [%d,%d] out of bounds for %d items", r.Start, r.End, count)
	}

	// Every item at least one row tall
	if snap.TotalRows < count {
		return fmt.Errorf("total %d rows below item count %d", snap.TotalRows, count)
	}

	// Effective top clamped inside the extent
	if snap.Top < 0 || snap.Top >= snap.TotalRows {
		return fmt.Errorf("top %d outside extent %d", snap.Top, snap.TotalRows)
	}

	// Offsets cover the range and increase by at least one row per item
	prev := -1
	for i := r.Start; i <= r.End; i++ {
		off, ok := snap.Offsets[i]
		if !ok {
			return fmt.Errorf("offset missing for item %d in range [%d,%d]", i, r.Start, r.End)
		}
		if off < 0 || off >= snap.TotalRows {
			return fmt.Errorf("offset %d for item %d outside extent %d", off, i, snap.TotalRows)
		}
		if prev >= 0 && off <= prev {
			return fmt.Errorf("offset %d for item %d not past predecessor at %d", off, i, prev)
		}
		prev = off
	}

	// The range must reach the top edge
	if start := snap.Offsets[r.Start]; start > snap.Top {
		return fmt.Errorf("first item starts at row %d, below top %d", start, snap.Top)
	}

	return nil
}
