package virtual

// Engine defaults
const (
	// DefaultEstimatedRows is the fallback height for unmeasured items
	DefaultEstimatedRows = 2

	// DefaultOverscan is the number of extra items materialized on each
	// side of the strictly visible range
	DefaultOverscan = 4
)

// Config holds the tunable knobs of the engine. Behavior is a pure
// function of Config plus the event stream, which keeps the engine
// trivially unit-testable.
type Config struct {
	// EstimatedRows is the assumed height of an item that has not been
	// measured yet. Must be at least 1.
	EstimatedRows int

	// Overscan is how many items beyond the visible edge are included
	// in the range on each side. Must be at least 0.
	Overscan int
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		EstimatedRows: DefaultEstimatedRows,
		Overscan:      DefaultOverscan,
	}
}

// Sanitize clamps the config into its valid domain.
func (c Config) Sanitize() Config {
	if c.EstimatedRows < 1 {
		c.EstimatedRows = DefaultEstimatedRows
	}
	if c.Overscan < 0 {
		c.Overscan = 0
	}
	return c
}

// Viewport describes the visible scroll window: the first visible row
// of the virtual space and the container extent in rows.
type Viewport struct {
	// Top is the scroll offset: the first virtual row that is visible.
	Top int

	// Rows is the height of the container.
	Rows int
}

// Clamp returns the viewport with Top forced into
// [0, max(0, totalRows-Rows)] and Rows forced to at least 1.
func (v Viewport) Clamp(totalRows int) Viewport {
	if v.Rows < 1 {
		v.Rows = 1
	}
	maxTop := totalRows - v.Rows
	if maxTop < 0 {
		maxTop = 0
	}
	if v.Top > maxTop {
		v.Top = maxTop
	}
	if v.Top < 0 {
		v.Top = 0
	}
	return v
}
