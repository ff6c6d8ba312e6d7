package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with the scroll position
// readout and keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	topRow       int
	totalRows    int
	firstVisible int
	itemCount    int
	following    bool
	jumpMode     bool
	settingsMode bool
	flash        string
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "j/k", Desc: "scroll"},
			{Key: "pgup/dn", Desc: "page"},
			{Key: "g/G", Desc: "top/bottom"},
			{Key: "i", Desc: "jump"},
			{Key: "R", Desc: "reverse"},
			{Key: "y", Desc: "copy"},
			{Key: "s", Desc: "settings"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetPosition updates the scroll position readout
func (f *Footer) SetPosition(topRow, totalRows, firstVisible, itemCount int, following bool) {
	f.topRow = topRow
	f.totalRows = totalRows
	f.firstVisible = firstVisible
	f.itemCount = itemCount
	f.following = following
}

// SetContext switches the bindings shown for the active overlay
func (f *Footer) SetContext(jumpMode, settingsMode bool) {
	f.jumpMode = jumpMode
	f.settingsMode = settingsMode
}

// SetFlash sets a transient status message shown before the bindings
func (f *Footer) SetFlash(text string) {
	f.flash = text
}

// View renders the footer
func (f *Footer) View() string {
	bindings := f.bindings
	if f.jumpMode {
		bindings = []KeyBinding{
			{Key: "enter", Desc: "go"},
			{Key: "esc", Desc: "cancel"},
		}
	} else if f.settingsMode {
		bindings = []KeyBinding{
			{Key: "tab", Desc: "next field"},
			{Key: "enter", Desc: "apply"},
			{Key: "esc", Desc: "close"},
		}
	}

	var parts []string
	for _, b := range bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}
	sep := "  " + lipgloss.NewStyle().Foreground(ColorBorder).Render("|") + "  "
	hints := strings.Join(parts, sep)
	if f.flash != "" {
		hints = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true).Render(f.flash) + sep + hints
	}

	position := f.positionReadout()

	// Right-align the position readout after the hints
	gap := f.width - lipgloss.Width(hints) - lipgloss.Width(position) - 2
	if gap < 1 {
		return FooterStyle.Width(f.width).Render(truncateToWidth(PlainText(hints), max(0, f.width-2)))
	}
	content := hints + strings.Repeat(" ", gap) + position
	return FooterStyle.Width(f.width).Render(content)
}

// positionReadout formats "row 5,312/600,000 · item 88/10,000"
func (f *Footer) positionReadout() string {
	if f.itemCount == 0 {
		return FooterDescStyle.Render("empty")
	}
	s := fmt.Sprintf("row %s/%s · item %s/%s",
		FormatCount(f.topRow), FormatCount(f.totalRows),
		FormatCount(f.firstVisible+1), FormatCount(f.itemCount))
	if f.following {
		s += " · tail"
	}
	return FooterPositionStyle.Render(s)
}

// FormatCount renders an integer with thousands separators
func FormatCount(n int) string {
	if n < 0 {
		return fmt.Sprintf("%d", n)
	}
	s := fmt.Sprintf("%d", n)
	var sb strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteRune(',')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
